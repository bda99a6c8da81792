package storedproc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Kind tags a database failure with the way the routing layer should treat it.
type Kind int

const (
	// KindInternal is any other database or unexpected failure. It is the
	// zero value, so an unclassified Error maps to 500, never to a 400.
	KindInternal Kind = iota
	// KindValidation is a business-rule violation signaled by a stored
	// procedure (SIGNAL SQLSTATE '45000'). Client-fixable.
	KindValidation
	// KindNotFound is a by-ID lookup that returned zero rows.
	KindNotFound
	// KindIntegrity is a constraint violation (foreign key, duplicate key).
	KindIntegrity
)

// String returns the metric/log label for the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity"
	default:
		return "internal"
	}
}

// Error is a classified database failure. Message is safe to return to the
// client; for validation errors it is the procedure's signal text verbatim,
// since the frontend matches on that wording.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying driver error
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds the zero-rows outcome for a by-ID lookup. The message keeps
// the original API's Spanish wording.
func NotFound(resource string, id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s con ID %d no encontrado.", resource, id),
	}
}

// MySQL signal/constraint error numbers this layer understands.
const (
	errSignalException  = 1644 // unhandled user-defined SIGNAL, SQLSTATE 45000
	errDupEntry         = 1062
	errNoReferencedRow  = 1216
	errRowIsReferenced  = 1217
	errRowIsReferenced2 = 1451
	errNoReferencedRow2 = 1452
)

// Generic fragments that mark a signal as a business-rule rejection even when
// the full sentence is not in a descriptor's known list. The procedures phrase
// every rejection with one of these.
var genericSignalFragments = []string{
	"no puede estar vac",
	"no existe",
}

// Classify maps a raw database error to a tagged *Error. knownSignals is the
// resource's list of literal SIGNAL messages; matching is by substring, which
// makes the procedures' wording part of the contract. An already classified
// error passes through unchanged.
func Classify(err error, knownSignals []string) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var dbErr *mysql.MySQLError
	if errors.As(err, &dbErr) {
		switch dbErr.Number {
		case errSignalException:
			if matchesSignal(dbErr.Message, knownSignals) {
				return &Error{Kind: KindValidation, Message: dbErr.Message, Err: err}
			}
			// Unknown signal wording: surfaced as internal so a silent
			// reclassification shows up in the error rate, not as a 400.
			return &Error{Kind: KindInternal, Message: dbErr.Message, Err: err}
		case errDupEntry, errNoReferencedRow, errRowIsReferenced,
			errRowIsReferenced2, errNoReferencedRow2:
			return &Error{Kind: KindIntegrity, Message: dbErr.Message, Err: err}
		}
	}

	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}

func matchesSignal(message string, knownSignals []string) bool {
	for _, phrase := range knownSignals {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	for _, fragment := range genericSignalFragments {
		if strings.Contains(message, fragment) {
			return true
		}
	}
	return false
}
