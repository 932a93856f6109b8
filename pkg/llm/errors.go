package llm

import (
	"net/http"
	"strings"
)

type ErrorKind int

const (
	KindPermanent ErrorKind = iota
	KindRateLimited
	KindServerError
)

// ProviderError tags a provider failure with its kind so retry decisions
// are structural instead of string matching on the error message.
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Transient() bool { return e.Kind != KindPermanent }

func classifyStatus(status int) (ErrorKind, bool) {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited, true
	case status >= 500:
		return KindServerError, true
	case status > 0:
		return KindPermanent, true
	}
	return KindPermanent, false
}

// classifyMessage covers errors that arrive without an HTTP status.
func classifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "limit"):
		return KindRateLimited
	case strings.Contains(lower, "internal server error"):
		return KindServerError
	default:
		return KindPermanent
	}
}
