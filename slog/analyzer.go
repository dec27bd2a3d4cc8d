package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/askskill"
)

// Ensure LoggingAnalyzer implements askskill.SiteAnalyzer.
var _ askskill.SiteAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a SiteAnalyzer with structured logging.
type LoggingAnalyzer struct {
	next   askskill.SiteAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next askskill.SiteAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// ClassifyDocs logs the classification outcome with its score and signals.
func (a *LoggingAnalyzer) ClassifyDocs(ctx context.Context, url string) (res *askskill.SiteAnalysisResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if res != nil {
			attrs = append(attrs, "hasDocs", res.HasDocs, "score", res.Confidence, "signals", res.Signals)
		}
		a.logger.Info("classify_docs", attrs...)
	}(time.Now())
	return a.next.ClassifyDocs(ctx, url)
}

// LocateAskAI logs the discovery source and confidence of the located
// affordance.
func (a *LoggingAnalyzer) LocateAskAI(ctx context.Context, url string) (loc *askskill.AffordanceLocation, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if loc != nil {
			attrs = append(attrs, "source", loc.Source, "label", loc.Label, "confidence", loc.Confidence)
		}
		a.logger.Info("locate_ask_ai", attrs...)
	}(time.Now())
	return a.next.LocateAskAI(ctx, url)
}

// AskAndExtract logs transcript sizes and the incomplete flag.
func (a *LoggingAnalyzer) AskAndExtract(ctx context.Context, url string, loc *askskill.AffordanceLocation, query string) (tr *askskill.Transcript, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		}
		if tr != nil {
			attrs = append(attrs, "rawBytes", len(tr.Raw), "cleanedBytes", len(tr.Cleaned),
				"altered", tr.Altered, "incomplete", tr.Incomplete)
		}
		a.logger.Info("ask_and_extract", attrs...)
	}(time.Now())
	return a.next.AskAndExtract(ctx, url, loc, query)
}
