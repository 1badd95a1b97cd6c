package board

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a load failed
type ErrorKind int

const (
	NoFileSelected ErrorKind = iota + 1
	FileReadError
	MalformedJSON
	InvalidShape
	EmptyJobList
)

// Sentinels matched through errors.Is against a *LoadError
var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrFileRead       = errors.New("file read failed")
	ErrMalformedJSON  = errors.New("malformed json")
	ErrInvalidShape   = errors.New("expected an array of jobs")
	ErrEmptyJobList   = errors.New("no jobs in file")

	ErrUnknownOption = errors.New("unknown filter option")
	ErrNoSuchJob     = errors.New("no such job")
)

const processFailedMessage = "Failed to process the JSON file. Ensure it contains valid job data."

func (k ErrorKind) String() string {
	switch k {
	case NoFileSelected:
		return "NoFileSelected"
	case FileReadError:
		return "FileReadError"
	case MalformedJSON:
		return "MalformedJson"
	case InvalidShape:
		return "InvalidShape"
	case EmptyJobList:
		return "EmptyJobList"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NoFileSelected:
		return ErrNoFileSelected
	case FileReadError:
		return ErrFileRead
	case MalformedJSON:
		return ErrMalformedJSON
	case InvalidShape:
		return ErrInvalidShape
	case EmptyJobList:
		return ErrEmptyJobList
	}
	return nil
}

// LoadError is returned by Ingest and shown inline in place of the job list
type LoadError struct {
	Kind ErrorKind
	Err  error
}

func newLoadError(kind ErrorKind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidShape) and friends match on the kind
func (e *LoadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Message returns the text shown to the user
func (e *LoadError) Message() string {
	switch e.Kind {
	case NoFileSelected:
		return "No file selected. Please upload a valid JSON file."
	case FileReadError:
		return "Error reading the file. Please try again."
	case EmptyJobList:
		return "The uploaded JSON file contains no jobs."
	default:
		return processFailedMessage
	}
}
