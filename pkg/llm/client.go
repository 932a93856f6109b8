package llm

// Summarizer is one language-model provider. Summarize performs a single
// outbound call; transient failures come back as *ProviderError so the
// retry caller can classify them without inspecting message text.
type Summarizer interface {
	Summarize(prompt string) (string, error)
	Name() string
}
