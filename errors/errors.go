package errors

import (
	"fmt"
)

// Error is the error type surfaced by the stores. The code follows HTTP
// status semantics so the web layer can map errors without inspecting
// messages.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no code is given. It is set to 500,
// Internal Server Error.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause *codedError
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// An ErrorEnricher decorates an error, typically with a code or a cause.
type ErrorEnricher func(error) error

// WithCode sets the code of the error, wrapping it first if needed.
func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if cErr, ok := err.(*codedError); ok {
			cErr.code = code
			return cErr
		}

		return &codedError{
			msg:  err.Error(),
			code: code,
		}
	}
}

// WithCause attaches cause to the error. The cause is wrapped so that it
// also carries a code.
func WithCause(cause error) ErrorEnricher {
	cCause, ok := cause.(*codedError)
	if !ok {
		cCause = &codedError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if cErr, ok := err.(*codedError); ok {
			cErr.cause = cCause
			return cErr
		}

		return &codedError{
			msg:   err.Error(),
			code:  cCause.code,
			cause: cCause,
		}
	}
}

// New creates an error from a message and applies the enrichers in order.
func New(msg string, fs ...ErrorEnricher) error {
	var err error = &codedError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}
