package inventory

import "fmt"

// Kind — error taxonomy surfaced to the HTTP layer.
type Kind int

const (
	KindValidation Kind = iota // bad input or dangling parent reference → 400
	KindNotFound               // no row matched the addressed id → 404
	KindConflict               // unique constraint violated → 409
	KindDB                     // unclassified store failure → 500
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying store error, logged but never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func validationErr(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func conflictErr(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func dbErr(err error) *Error {
	return &Error{Kind: KindDB, Msg: "database error", Err: err}
}

var errNotFound = &Error{Kind: KindNotFound, Msg: "not found"}
