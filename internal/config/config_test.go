package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMissingRequired(t *testing.T) {
	cfg := Config{
		GroqAPIKey:     "g",
		TelegramChatID: "c",
		NewsSource:     SourceTavily,
		LLMProvider:    ProviderGroq,
	}

	missing := cfg.MissingRequired()

	assert.Equal(t, []string{"TAVILY_API_KEY", "TELEGRAM_BOT_TOKEN"}, missing)
}

func TestMissingRequiredAllPresent(t *testing.T) {
	cfg := Config{
		GroqAPIKey:       "g",
		TavilyAPIKey:     "t",
		TelegramBotToken: "b",
		TelegramChatID:   "c",
		NewsSource:       SourceTavily,
		LLMProvider:      ProviderGroq,
	}

	assert.Equal(t, 0, len(cfg.MissingRequired()))
}

func TestMissingRequiredAlternateProviders(t *testing.T) {
	cfg := Config{
		GroqAPIKey:       "g",
		TavilyAPIKey:     "t",
		TelegramBotToken: "b",
		TelegramChatID:   "c",
		NewsSource:       SourceFinnhub,
		LLMProvider:      ProviderAnthropic,
	}

	missing := cfg.MissingRequired()

	assert.Equal(t, []string{"FINNHUB_API_KEY", "ANTHROPIC_API_KEY"}, missing)
}
