package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"marketwrap/internal/config"
	"marketwrap/internal/model"
	"marketwrap/internal/pipeline"
	"marketwrap/internal/tracelog"
	"marketwrap/pkg/llm"
	"marketwrap/pkg/news"
	"marketwrap/pkg/telegram"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.FromEnv()
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		slog.Error("missing required environment variables", "missing", missing)
		fmt.Printf("Missing required environment variables: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	trace, err := tracelog.Open(cfg.TraceLogFile)
	if err != nil {
		slog.Warn("error opening trace log, continuing without it", "error", err)
	}
	defer trace.Close()

	source := newsClient(cfg)
	gen := llm.NewRetryCaller(summarizer(cfg))
	msg := telegram.New(cfg.TelegramBotToken, cfg.TelegramChatID)

	slog.Info("starting market wrap run", "news_source", source.Name(), "llm_provider", cfg.LLMProvider)
	trace.Step("run started, source=%s provider=%s", source.Name(), cfg.LLMProvider)

	result, err := pipeline.NewOrchestrator(source, gen, msg, trace).Run()
	if err != nil {
		slog.Error("primary pipeline failed, attempting fallback", "error", err)

		result, err = pipeline.NewFallback(source, gen, msg, trace).Run()
		if err != nil {
			slog.Error("fallback failed", "error", err)
			trace.Step("run failed on both paths")
			fmt.Printf("Complete system failure: %v\n", err)
			os.Exit(1)
		}
	}

	report(result)
}

func report(result *model.RunResult) {
	slog.Info("market wrap delivered", "path", string(result.Path), "confirmation", result.Confirmation)
	fmt.Println(result.Message)
	fmt.Println(result.Confirmation)
}

func newsClient(cfg config.Config) news.Client {
	if cfg.NewsSource == config.SourceFinnhub {
		return news.NewFinnhubClient(cfg.FinnhubAPIKey)
	}
	return news.NewTavilyClient(cfg.TavilyAPIKey)
}

func summarizer(cfg config.Config) llm.Summarizer {
	if cfg.LLMProvider == config.ProviderAnthropic {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	return llm.NewGroqClient(cfg.GroqAPIKey)
}
