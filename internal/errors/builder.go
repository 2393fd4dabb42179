package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the error type carried through the service layers. It
// keeps the user-facing hint and any reportable details separate from the
// internal cause so handlers can decide what to expose.
type InternalError struct {
	cause             error
	hint              string
	reportableDetails map[string]any
}

func (e *InternalError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.hint
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Hint returns the user-facing hint, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns details safe to include in API responses.
func (e *InternalError) ReportableDetails() map[string]any {
	return e.reportableDetails
}

// ErrorBuilder provides a fluent API to construct an InternalError. The
// chain is finalized by Mark, which classifies the error with one of the
// marker errors from this package.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder from a plain message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{cause: errors.New(message)},
	}
}

// NewErrorf starts a builder from a formatted message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return NewError(fmt.Sprintf(format, args...))
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{
		err: &InternalError{cause: err},
	}
}

// WithHint attaches a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted user-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches details that may be surfaced to API
// clients.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.err.reportableDetails = details
	return b
}

// Mark classifies the error and finalizes the chain.
func (b *ErrorBuilder) Mark(mark error) error {
	b.err.cause = errors.Mark(b.err.cause, mark)
	return b.err
}

// HintOf extracts the hint from an error chain, falling back to the error
// message when no InternalError is present.
func HintOf(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) && ie.hint != "" {
		return ie.hint
	}
	return err.Error()
}

// DetailsOf extracts reportable details from an error chain.
func DetailsOf(err error) map[string]any {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.reportableDetails
	}
	return nil
}
