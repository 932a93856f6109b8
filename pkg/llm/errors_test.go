package llm

import (
	"net/http"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
		ok     bool
	}{
		{name: "too many requests", status: http.StatusTooManyRequests, want: KindRateLimited, ok: true},
		{name: "internal server error", status: http.StatusInternalServerError, want: KindServerError, ok: true},
		{name: "bad gateway", status: http.StatusBadGateway, want: KindServerError, ok: true},
		{name: "unauthorized", status: http.StatusUnauthorized, want: KindPermanent, ok: true},
		{name: "no status", status: 0, want: KindPermanent, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := classifyStatus(tt.status)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want ErrorKind
	}{
		{name: "rate limit", msg: "Rate limit reached for model", want: KindRateLimited},
		{name: "generic limit", msg: "token limit exceeded", want: KindRateLimited},
		{name: "server error", msg: "Internal Server Error", want: KindServerError},
		{name: "auth failure", msg: "invalid api key", want: KindPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyMessage(tt.msg))
		})
	}
}
