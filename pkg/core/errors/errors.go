package errors

import (
	"errors"
	"fmt"
)

// Kind identifies one class of failure reported by the OpenSubtitles XML-RPC API
// or by the client itself.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNoSession
	KindDownloadLimitReached
	KindTooManyRequests
	KindServiceUnavailable
	KindServerMaintenance
	KindRequestFailed
	KindInvalidArgument
	KindNotImplemented
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindUnauthorized:         "unauthorized",
	KindNoSession:            "no session",
	KindDownloadLimitReached: "download limit reached",
	KindTooManyRequests:      "too many requests",
	KindServiceUnavailable:   "service unavailable",
	KindServerMaintenance:    "server under maintenance",
	KindRequestFailed:        "request failed",
	KindInvalidArgument:      "invalid argument",
	KindNotImplemented:       "not implemented",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the error value returned for every Kind. Status carries the raw
// "<code> <text>" string for KindRequestFailed, Detail carries the message
// for KindInvalidArgument and the method name for KindNotImplemented.
type Error struct {
	Kind   Kind
	Status string
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRequestFailed && e.Status != "":
		return "opensubtitles: request failed: status: " + e.Status
	case e.Detail != "":
		return "opensubtitles: " + e.Kind.String() + ": " + e.Detail
	default:
		return "opensubtitles: " + e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same Kind, so the sentinels
// below match any error of their kind regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels, one per kind.
var (
	ErrUnauthorized         = &Error{Kind: KindUnauthorized}
	ErrNoSession            = &Error{Kind: KindNoSession}
	ErrDownloadLimitReached = &Error{Kind: KindDownloadLimitReached}
	ErrTooManyRequests      = &Error{Kind: KindTooManyRequests}
	ErrServiceUnavailable   = &Error{Kind: KindServiceUnavailable}
	ErrServerMaintenance    = &Error{Kind: KindServerMaintenance}
	ErrRequestFailed        = &Error{Kind: KindRequestFailed}
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrNotImplemented       = &Error{Kind: KindNotImplemented}
)

// RequestFailed returns a KindRequestFailed error carrying the full status string.
func RequestFailed(status string) *Error {
	return &Error{Kind: KindRequestFailed, Status: status}
}

// InvalidArgument returns a KindInvalidArgument error with the given detail.
func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// NotImplemented returns a KindNotImplemented error naming the method.
func NotImplemented(method string) *Error {
	return &Error{Kind: KindNotImplemented, Detail: method}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Application/Flow specific errors
var (
	ErrMalformedResponse = errors.New("opensubtitles: malformed response envelope")
	ErrNotLoggedIn       = errors.New("client: not logged in")
	ErrUploadDuplicate   = errors.New("upload: subtitle is already present in the database (duplicate)")
)
