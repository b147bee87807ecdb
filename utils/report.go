package utils

import (
	"fmt"
	"io"
)

//Kind - label printed in front of a status line
type Kind string

//status kinds
const (
	Info      Kind = "INFO"
	Error     Kind = "ERROR"
	Copied    Kind = "COPIED"
	Unchanged Kind = "UNCHANGED"
)

//Reporter - writes one status line per event
type Reporter struct {
	w io.Writer
}

//NewReporter -
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

//Printf - writes "[KIND] message"
func (r *Reporter) Printf(kind Kind, format string, a ...interface{}) {
	fmt.Fprintf(r.w, "[%v] %v\n", kind, fmt.Sprintf(format, a...))
}

//Infof -
func (r *Reporter) Infof(format string, a ...interface{}) {
	r.Printf(Info, format, a...)
}

//Errorf -
func (r *Reporter) Errorf(format string, a ...interface{}) {
	r.Printf(Error, format, a...)
}

//Println - plain line without a label
func (r *Reporter) Println(a ...interface{}) {
	fmt.Fprintln(r.w, a...)
}
