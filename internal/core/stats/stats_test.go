package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWorkSession(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	statistics := New(now)

	statistics.RecordWorkSession(25*time.Minute, "Deep work", now)

	assert.Equal(t, 1500, statistics.TotalWorkSeconds)
	assert.Equal(t, 1, statistics.TotalSessions)
	require.Len(t, statistics.TodayHistory, 1)
	record := statistics.TodayHistory[0]
	assert.Equal(t, RecordWork, record.Type)
	assert.Equal(t, "Deep work", record.Name)
	assert.Equal(t, 1500, record.DurationSeconds)
}

func TestRecordBreakSession(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	statistics := New(now)

	statistics.RecordBreakSession(5*time.Minute, now)

	assert.Equal(t, 300, statistics.TotalBreakSeconds)
	assert.Zero(t, statistics.TotalSessions, "breaks do not count toward completed sessions")
	require.Len(t, statistics.TodayHistory, 1)
	assert.Equal(t, RecordBreak, statistics.TodayHistory[0].Type)
	assert.Empty(t, statistics.TodayHistory[0].Name)
}

func TestTotalsMonotonicWithinDay(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	statistics := New(now)

	previous := 0
	for i := 0; i < 5; i++ {
		statistics.RecordWorkSession(10*time.Minute, "", now.Add(time.Duration(i)*time.Hour))
		require.Greater(t, statistics.TotalWorkSeconds, previous)
		previous = statistics.TotalWorkSeconds
	}
}

func TestRolloverClearsOnlyDailyHistory(t *testing.T) {
	day1 := time.Date(2026, 8, 25, 22, 0, 0, 0, time.UTC)
	statistics := New(day1)
	statistics.RecordWorkSession(25*time.Minute, "", day1)
	statistics.RecordBreakSession(5*time.Minute, day1)

	day2 := day1.Add(24 * time.Hour)
	changed := statistics.Rollover(day2)

	assert.True(t, changed)
	assert.Empty(t, statistics.TodayHistory)
	assert.Equal(t, "2026-08-26", statistics.LastResetDate)
	assert.Equal(t, 1500, statistics.TotalWorkSeconds, "cumulative totals survive")
	assert.Equal(t, 300, statistics.TotalBreakSeconds)
}

func TestRolloverSameDayIsNoOp(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	statistics := New(now)
	statistics.RecordWorkSession(25*time.Minute, "", now)

	changed := statistics.Rollover(now.Add(3 * time.Hour))

	assert.False(t, changed)
	assert.Len(t, statistics.TodayHistory, 1)
}
