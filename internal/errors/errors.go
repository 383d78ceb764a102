// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. Session operations return these values instead of
// bare transport errors so callers always get the backend's own error payload when
// one was sent.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// Remote indicates the backend rejected the request or could not be reached.
	Remote Kind = "remote"
	// NoUserLoggedIn indicates an operation needed a signed-in identity and there was none.
	NoUserLoggedIn Kind = "no_user_logged_in"
)

// E wraps an error with kind, human-friendly message and the payload reported
// to the caller. Payload is the backend's JSON error body when one was
// received, otherwise {"message": Message}.
type E struct {
	Kind    Kind
	Message string
	Status  int
	Payload map[string]any
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is matches another *E by Kind, so errors.Is(err, errors.New(NoUserLoggedIn, "")) works.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E {
	return &E{Kind: kind, Message: msg, Payload: MessagePayload(msg), Err: err}
}

func New(kind Kind, msg string) *E {
	return &E{Kind: kind, Message: msg, Payload: MessagePayload(msg)}
}

// FromPayload builds a Remote error around a payload received from the backend.
// The message is taken from payload["message"] when it is a non-empty string.
func FromPayload(status int, payload map[string]any, fallback string, err error) *E {
	msg := fallback
	if m, ok := payload["message"].(string); ok && m != "" {
		msg = m
	}
	return &E{Kind: Remote, Message: msg, Status: status, Payload: payload, Err: err}
}

// MessagePayload is the generic {"message": msg} payload.
func MessagePayload(msg string) map[string]any {
	return map[string]any{"message": msg}
}
