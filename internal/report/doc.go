// Package report renders analytics results from internal/spc as plain
// text. It consumes only the core's exported numeric results and writes
// to an io.Writer supplied by the caller; the core itself performs no
// I/O.
package report
