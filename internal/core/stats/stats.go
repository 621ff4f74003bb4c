package stats

import "time"

// Record types stored in the daily history.
const (
	RecordWork  = "work"
	RecordBreak = "break"
)

const dateLayout = "2006-01-02"

// SessionRecord is one completed session in today's history.
type SessionRecord struct {
	Type            string    `json:"type"`
	Name            string    `json:"name,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration"`
}

// Statistics accumulates completed session counters across app restarts.
// Totals are cumulative; TodayHistory is cleared on the first load of a new day.
type Statistics struct {
	TotalWorkSeconds  int             `json:"total_work_seconds"`
	TotalBreakSeconds int             `json:"total_break_seconds"`
	TotalSessions     int             `json:"total_sessions"`
	TodayHistory      []SessionRecord `json:"today_history"`
	LastResetDate     string          `json:"last_reset_date"`
}

// New returns zeroed statistics stamped with today's date.
func New(now time.Time) Statistics {
	return Statistics{LastResetDate: now.Format(dateLayout)}
}

// RecordWorkSession adds a completed work session.
func (statistics *Statistics) RecordWorkSession(duration time.Duration, name string, at time.Time) {
	seconds := int(duration / time.Second)
	statistics.TotalWorkSeconds += seconds
	statistics.TotalSessions++
	statistics.TodayHistory = append(statistics.TodayHistory, SessionRecord{
		Type:            RecordWork,
		Name:            name,
		Timestamp:       at,
		DurationSeconds: seconds,
	})
}

// RecordBreakSession adds a completed short or long break.
func (statistics *Statistics) RecordBreakSession(duration time.Duration, at time.Time) {
	seconds := int(duration / time.Second)
	statistics.TotalBreakSeconds += seconds
	statistics.TodayHistory = append(statistics.TodayHistory, SessionRecord{
		Type:            RecordBreak,
		Timestamp:       at,
		DurationSeconds: seconds,
	})
}

// Rollover clears the daily history when the stored reset date is not today.
// Cumulative totals survive the rollover. Reports whether anything changed.
func (statistics *Statistics) Rollover(now time.Time) bool {
	today := now.Format(dateLayout)
	if statistics.LastResetDate == today {
		return false
	}
	statistics.TodayHistory = nil
	statistics.LastResetDate = today
	return true
}
