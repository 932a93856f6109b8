package llm

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const maxAttempts = 3

const wrapPrompt = "Write a concise (<300 words) US market wrap based on the news:\n%s"

// FailureSentinel is returned when every attempt failed transiently.
const FailureSentinel = "Rate limit exceeded or LLM error after retries."

// RetryCaller wraps a Summarizer with bounded retries on transient provider
// errors. Rate limits back off 15s per attempt number, server errors 10s.
type RetryCaller struct {
	inner Summarizer
	sleep func(time.Duration)
}

func NewRetryCaller(inner Summarizer) *RetryCaller {
	return &RetryCaller{inner: inner, sleep: time.Sleep}
}

// Generate compiles the digest into the wrap prompt and calls the provider,
// at most maxAttempts times. It never returns an error: permanent failures
// and exhausted retries come back as descriptive text so the caller can
// still deliver something.
func (r *RetryCaller) Generate(digest string) string {
	prompt := fmt.Sprintf(wrapPrompt, digest)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := r.inner.Summarize(prompt)
		if err == nil {
			return text
		}

		var perr *ProviderError
		if !errors.As(err, &perr) || !perr.Transient() {
			slog.Error("LLM call failed", "provider", r.inner.Name(), "error", err)
			return fmt.Sprintf("Error generating summary: %v", err)
		}

		if attempt == maxAttempts {
			break
		}

		wait := backoff(perr.Kind, attempt)
		slog.Info("transient LLM error, backing off", "provider", r.inner.Name(), "attempt", attempt, "wait", wait.String())
		r.sleep(wait)
	}

	return FailureSentinel
}

func backoff(kind ErrorKind, attempt int) time.Duration {
	if kind == KindServerError {
		return time.Duration(10*attempt) * time.Second
	}
	return time.Duration(15*attempt) * time.Second
}
