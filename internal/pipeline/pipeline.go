// Package pipeline runs the market-wrap workflow: a four-stage primary
// path (research, summarize, format, deliver) and an independent two-call
// fallback path used only when the primary path fails.
package pipeline

import (
	"fmt"
	"strings"

	"marketwrap/internal/model"
	"marketwrap/internal/tracelog"
	"marketwrap/pkg/news"
)

const (
	marketQuery   = "today US stock market summary, S&P 500, Nasdaq, Dow Jones, major movers"
	researchLimit = 5
)

// Messenger delivers one message; markdown selects Telegram Markdown mode.
type Messenger interface {
	Send(text string, markdown bool) (string, error)
}

// Generator produces a market wrap from a digest. It never fails: provider
// errors come back as descriptive text (see llm.RetryCaller).
type Generator interface {
	Generate(digest string) string
}

// Stage consumes the previous stage's text output and produces the next.
type Stage struct {
	Name string
	Run  func(input string) (string, error)
}

type Orchestrator struct {
	stages []Stage
	trace  *tracelog.Writer
}

// NewOrchestrator wires the fixed stage sequence. The stage list never
// varies, so it is built once here rather than dispatched dynamically.
func NewOrchestrator(source news.Client, gen Generator, msg Messenger, trace *tracelog.Writer) *Orchestrator {
	stages := []Stage{
		{
			Name: "research",
			Run: func(_ string) (string, error) {
				articles, err := source.Search(marketQuery, researchLimit)
				if err != nil {
					return "", err
				}
				return news.BuildDigest(articles), nil
			},
		},
		{
			Name: "summarize",
			Run: func(digest string) (string, error) {
				return gen.Generate(digest), nil
			},
		},
		{
			Name: "format",
			Run: func(wrap string) (string, error) {
				return strings.TrimSpace(wrap), nil
			},
		},
		{
			Name: "deliver",
			Run: func(message string) (string, error) {
				return msg.Send(message, true)
			},
		},
	}

	return &Orchestrator{stages: stages, trace: trace}
}

// Run executes the stages strictly in order, handing each stage's output to
// the next. Any stage error aborts the remaining stages.
func (o *Orchestrator) Run() (*model.RunResult, error) {
	var current, message string

	for i, stage := range o.stages {
		o.trace.Step("stage %s started", stage.Name)

		out, err := stage.Run(current)
		if err != nil {
			o.trace.Step("stage %s failed: %v", stage.Name, err)
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		o.trace.Step("stage %s completed", stage.Name)

		if i == len(o.stages)-1 {
			message = current
		}
		current = out
	}

	return &model.RunResult{
		Path:         model.PathPrimary,
		Message:      message,
		Confirmation: current,
	}, nil
}
