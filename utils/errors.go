package utils

import "fmt"

//ConfigError - bad or missing arguments
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

//FileError - an I/O failure on a single file during the walk
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v %v: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

//HashReadError - the file could not be read for hashing
type HashReadError struct{ FileError }

//CopyError - the file could not be copied
type CopyError struct{ FileError }

//LookupError - the store query failed
type LookupError struct{ FileError }

//FlushError - the final batch insert failed
type FlushError struct {
	Count int
	Err   error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("flush %v records: %v", e.Count, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

//NewHashReadError -
func NewHashReadError(path string, err error) error {
	return &HashReadError{FileError{Op: "hash", Path: path, Err: err}}
}

//NewCopyError -
func NewCopyError(path string, err error) error {
	return &CopyError{FileError{Op: "copy", Path: path, Err: err}}
}

//NewLookupError -
func NewLookupError(path string, err error) error {
	return &LookupError{FileError{Op: "lookup", Path: path, Err: err}}
}
