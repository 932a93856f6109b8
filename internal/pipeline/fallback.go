package pipeline

import (
	"fmt"
	"time"

	"marketwrap/internal/model"
	"marketwrap/internal/tracelog"
	"marketwrap/pkg/news"
)

const fallbackLimit = 3

// Fallback is the degraded delivery path: one news fetch, one summary, one
// plain-text send. It never touches the primary orchestrator, so a fault in
// the primary path cannot repeat here.
type Fallback struct {
	source news.Client
	gen    Generator
	msg    Messenger
	trace  *tracelog.Writer
	now    func() time.Time
}

func NewFallback(source news.Client, gen Generator, msg Messenger, trace *tracelog.Writer) *Fallback {
	return &Fallback{
		source: source,
		gen:    gen,
		msg:    msg,
		trace:  trace,
		now:    time.Now,
	}
}

func (f *Fallback) Run() (*model.RunResult, error) {
	f.trace.Step("fallback started")

	articles, err := f.source.Search(marketQuery, fallbackLimit)
	if err != nil {
		f.trace.Step("fallback news fetch failed: %v", err)
		return nil, fmt.Errorf("fallback news fetch: %w", err)
	}
	digest := news.BuildDigest(articles)

	summary := f.gen.Generate(digest)

	message := composeFallbackMessage(summary, f.now())

	confirmation, err := f.msg.Send(message, false)
	if err != nil {
		f.trace.Step("fallback delivery failed: %v", err)
		return nil, fmt.Errorf("fallback delivery: %w", err)
	}

	f.trace.Step("fallback delivered")

	return &model.RunResult{
		Path:         model.PathFallback,
		Message:      message,
		Confirmation: confirmation,
	}, nil
}

func composeFallbackMessage(summary string, now time.Time) string {
	stamped, label := easternTime(now)
	return fmt.Sprintf(
		"📊 **US Market Wrap - Fallback (%s)** 📊\n\n%s\n\n🕐 Generated: %s %s",
		stamped.Format("2006-01-02"),
		summary,
		stamped.Format("2006-01-02 15:04:05"),
		label,
	)
}

// easternTime renders the timestamp in US eastern time so the label always
// matches the value. Falls back to UTC when the zone database is missing.
func easternTime(now time.Time) (time.Time, string) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return now.UTC(), "UTC"
	}
	return now.In(loc), "ET"
}
