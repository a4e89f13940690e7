// Package errors defines the error taxonomy shared by the ingestion pipeline,
// the query engine and the presenters.
//
// Every error renders as a single human readable line that names the failing
// operation and its cause, and unwraps to that cause. Callers classify errors
// with the Is* predicates instead of comparing strings:
//
//	┌───────────────────────┬──────────────────────────────────────────────┐
//	│ Error                 │ Raised when                                  │
//	├───────────────────────┼──────────────────────────────────────────────┤
//	│ NetworkError          │ fetch failed: DNS, connect, timeout, status  │
//	│ FormatError           │ payload does not have the expected shape     │
//	│ StoreError            │ store file missing, unreadable or invalid    │
//	│ InvalidInputError     │ caller supplied a malformed filter or option │
//	│ DuplicateKeyError     │ insert into the store with an existing key   │
//	│ UpdateInProgressError │ an update is already running                 │
//	└───────────────────────┴──────────────────────────────────────────────┘
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func NewNetworkError(op, url string, err error) *NetworkError {
	return &NetworkError{Op: op, URL: url, Err: err}
}

func NewHTTPStatusError(url string, statusCode int, status string) *NetworkError {
	return &NetworkError{
		Op:         "fetch",
		URL:        url,
		StatusCode: statusCode,
		Err:        fmt.Errorf("unexpected response status %s", status),
	}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type FormatError struct {
	Format string
	// Row is the 1-based row number in the source document, 0 when the
	// error concerns the document as a whole.
	Row    int
	Reason string
	Err    error
}

func NewFormatError(format, reason string) *FormatError {
	return &FormatError{Format: format, Reason: reason}
}

func NewRowFormatError(format string, row int, reason string) *FormatError {
	return &FormatError{Format: format, Row: row, Reason: reason}
}

func NewWrappedFormatError(format, reason string, err error) *FormatError {
	return &FormatError{Format: format, Reason: reason, Err: err}
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("parse %s", e.Format)
	if e.Row > 0 {
		msg = fmt.Sprintf("%s: row %d", msg, e.Row)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

type StoreError struct {
	Op   string
	Path string
	Err  error
}

func NewStoreError(op, path string, err error) *StoreError {
	return &StoreError{Op: op, Path: path, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func NewInvalidInputError(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

type DuplicateKeyError struct {
	Key string
}

func NewDuplicateKeyError(key string) *DuplicateKeyError {
	return &DuplicateKeyError{Key: key}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q already present in store", e.Key)
}

type UpdateInProgressError struct{}

func NewUpdateInProgressError() *UpdateInProgressError {
	return &UpdateInProgressError{}
}

func (e *UpdateInProgressError) Error() string {
	return "an update is already in progress"
}

func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

func IsStoreError(err error) bool {
	var e *StoreError
	return errors.As(err, &e)
}

// IsStoreNotFoundError reports whether err is a StoreError caused by a missing file.
func IsStoreNotFoundError(err error) bool {
	var e *StoreError
	return errors.As(err, &e) && errors.Is(e.Err, fs.ErrNotExist)
}

func IsInvalidInputError(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

func IsDuplicateKeyError(err error) bool {
	var e *DuplicateKeyError
	return errors.As(err, &e)
}

func IsUpdateInProgressError(err error) bool {
	var e *UpdateInProgressError
	return errors.As(err, &e)
}
