package llm

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeSummarizer struct {
	responses []fakeResponse
	calls     int
	prompts   []string
}

type fakeResponse struct {
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	resp := f.responses[f.calls]
	f.calls++
	return resp.text, resp.err
}

func (f *fakeSummarizer) Name() string { return "fake" }

func newTestCaller(inner Summarizer) (*RetryCaller, *[]time.Duration) {
	var sleeps []time.Duration
	caller := &RetryCaller{
		inner: inner,
		sleep: func(d time.Duration) { sleeps = append(sleeps, d) },
	}
	return caller, &sleeps
}

func TestGenerateSuccessFirstAttempt(t *testing.T) {
	inner := &fakeSummarizer{responses: []fakeResponse{
		{text: "Stocks rose today."},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("- Markets rally: https://example.com/rally")

	assert.Equal(t, "Stocks rose today.", got)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 0, len(*sleeps))
	assert.Equal(t, true, strings.Contains(inner.prompts[0], "Markets rally"))
	assert.Equal(t, true, strings.Contains(inner.prompts[0], "<300 words"))
}

func TestGeneratePermanentErrorSingleAttempt(t *testing.T) {
	inner := &fakeSummarizer{responses: []fakeResponse{
		{err: &ProviderError{Kind: KindPermanent, Err: fmt.Errorf("invalid api key")}},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("digest")

	assert.Equal(t, "Error generating summary: invalid api key", got)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 0, len(*sleeps))
}

func TestGenerateRateLimitThenSuccess(t *testing.T) {
	rateLimited := &ProviderError{Kind: KindRateLimited, Err: fmt.Errorf("rate limit reached")}
	inner := &fakeSummarizer{responses: []fakeResponse{
		{err: rateLimited},
		{err: rateLimited},
		{text: "Stocks rose today."},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("digest")

	assert.Equal(t, "Stocks rose today.", got)
	assert.Equal(t, 3, inner.calls)
	assert.Equal(t, []time.Duration{15 * time.Second, 30 * time.Second}, *sleeps)
}

func TestGenerateRateLimitExhausted(t *testing.T) {
	rateLimited := &ProviderError{Kind: KindRateLimited, Err: fmt.Errorf("rate limit reached")}
	inner := &fakeSummarizer{responses: []fakeResponse{
		{err: rateLimited},
		{err: rateLimited},
		{err: rateLimited},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("digest")

	assert.Equal(t, FailureSentinel, got)
	assert.Equal(t, 3, inner.calls)
	// No backoff after the final attempt; single waits never exceed 45s.
	assert.Equal(t, []time.Duration{15 * time.Second, 30 * time.Second}, *sleeps)
}

func TestGenerateServerErrorBackoff(t *testing.T) {
	serverErr := &ProviderError{Kind: KindServerError, Err: fmt.Errorf("internal server error")}
	inner := &fakeSummarizer{responses: []fakeResponse{
		{err: serverErr},
		{text: "Stocks rose today."},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("digest")

	assert.Equal(t, "Stocks rose today.", got)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, []time.Duration{10 * time.Second}, *sleeps)
}

func TestGenerateUntaggedErrorTreatedPermanent(t *testing.T) {
	inner := &fakeSummarizer{responses: []fakeResponse{
		{err: fmt.Errorf("connection refused")},
	}}
	caller, sleeps := newTestCaller(inner)

	got := caller.Generate("digest")

	assert.Equal(t, "Error generating summary: connection refused", got)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 0, len(*sleeps))
}
