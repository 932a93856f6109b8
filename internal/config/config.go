package config

import "os"

const (
	SourceTavily  = "tavily"
	SourceFinnhub = "finnhub"

	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"

	defaultTraceLogFile = "wrap_execution.log"
)

type Config struct {
	GroqAPIKey       string
	TavilyAPIKey     string
	TelegramBotToken string
	TelegramChatID   string

	// Optional alternate collaborators.
	FinnhubAPIKey   string
	AnthropicAPIKey string
	NewsSource      string
	LLMProvider     string

	TraceLogFile string
}

func FromEnv() Config {
	cfg := Config{
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		TavilyAPIKey:     os.Getenv("TAVILY_API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		FinnhubAPIKey:    os.Getenv("FINNHUB_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		NewsSource:       os.Getenv("NEWS_SOURCE"),
		LLMProvider:      os.Getenv("LLM_PROVIDER"),
		TraceLogFile:     os.Getenv("TRACE_LOG_FILE"),
	}

	if cfg.NewsSource == "" {
		cfg.NewsSource = SourceTavily
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = ProviderGroq
	}
	if cfg.TraceLogFile == "" {
		cfg.TraceLogFile = defaultTraceLogFile
	}

	return cfg
}

// MissingRequired returns the names of required variables that are unset.
// The alternate source/provider keys are only required when selected.
func (c Config) MissingRequired() []string {
	required := []struct {
		name  string
		value string
	}{
		{"GROQ_API_KEY", c.GroqAPIKey},
		{"TAVILY_API_KEY", c.TavilyAPIKey},
		{"TELEGRAM_BOT_TOKEN", c.TelegramBotToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatID},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if c.NewsSource == SourceFinnhub && c.FinnhubAPIKey == "" {
		missing = append(missing, "FINNHUB_API_KEY")
	}
	if c.LLMProvider == ProviderAnthropic && c.AnthropicAPIKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}

	return missing
}
