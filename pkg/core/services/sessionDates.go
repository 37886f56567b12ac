package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

// SessionDates expands an rrule into the next count session date tokens,
// in the marker form the volunteer availability check understands
// (e.g. "2024-03-16Sat").
func SessionDates(logger *zap.Logger, pattern string, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("session count must be positive, got %d", count)
	}

	rule, err := rrule.StrToRRule(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid session pattern: %w", err)
	}

	logger.Debug("Expanding session pattern",
		zap.String("pattern", pattern),
		zap.Int("count", count))

	now := time.Now().UTC()
	dates := rule.Between(now, now.AddDate(2, 0, 0), true)
	if len(dates) < count {
		return nil, fmt.Errorf("pattern yields only %d upcoming sessions, need %d", len(dates), count)
	}

	tokens := make([]string, count)
	for i := 0; i < count; i++ {
		tokens[i] = DateToken(dates[i])
	}

	logger.Info("Session dates expanded",
		zap.Int("count", count),
		zap.String("first", tokens[0]),
		zap.String("last", tokens[count-1]))

	return tokens, nil
}

// DateToken renders a calendar date as the registry's opaque date token
// with its trailing day abbreviation.
func DateToken(t time.Time) string {
	return t.Format(model.DateFormat) + t.Format("Mon")
}
