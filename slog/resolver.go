// Package slog provides logging decorators for the domain service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/askskill"
)

// Ensure LoggingResolver implements askskill.Resolver.
var _ askskill.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with structured logging, surfacing the
// silent catalog degradation that Resolve itself never reports as an error.
type LoggingResolver struct {
	next   askskill.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next askskill.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve logs the query, result count, and fallback status.
func (r *LoggingResolver) Resolve(ctx context.Context, query string) (res *askskill.Resolution, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		}
		if res != nil {
			attrs = append(attrs, "results", len(res.Results), "fallback", res.Fallback)
			if res.Note != "" {
				attrs = append(attrs, "note", res.Note)
			}
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, query)
}
