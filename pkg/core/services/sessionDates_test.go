package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionDates_WeeklySaturdays(t *testing.T) {
	logger := zap.NewNop()

	dates, err := SessionDates(logger, "FREQ=WEEKLY;BYDAY=SA", 4)
	require.NoError(t, err)
	require.Len(t, dates, 4)

	for _, token := range dates {
		assert.True(t, strings.HasSuffix(token, "Sat"), "token %s should end with its weekday marker", token)

		parsed, err := time.Parse("2006-01-02", strings.TrimSuffix(token, "Sat"))
		require.NoError(t, err)
		assert.Equal(t, time.Saturday, parsed.Weekday())
	}
}

func TestSessionDates_SuffixMatchesWeekday(t *testing.T) {
	logger := zap.NewNop()

	dates, err := SessionDates(logger, "FREQ=DAILY", 7)
	require.NoError(t, err)
	require.Len(t, dates, 7)

	for _, token := range dates {
		day := token[len(token)-3:]
		parsed, err := time.Parse("2006-01-02", token[:len(token)-3])
		require.NoError(t, err)
		assert.Equal(t, parsed.Format("Mon"), day)
	}
}

func TestSessionDates_Errors(t *testing.T) {
	logger := zap.NewNop()

	_, err := SessionDates(logger, "FREQ=WEEKLY;BYDAY=SA", 0)
	assert.Error(t, err)

	_, err = SessionDates(logger, "not an rrule", 3)
	assert.Error(t, err)
}

func TestDateToken(t *testing.T) {
	saturday := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-16Sat", DateToken(saturday))

	monday := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-18Mon", DateToken(monday))
}
