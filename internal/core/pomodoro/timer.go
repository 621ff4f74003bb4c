package pomodoro

import (
	"sync"
	"time"

	"github.com/ajkekeli/Pomodoro-App/internal/core/model"
	"github.com/ajkekeli/Pomodoro-App/internal/core/stats"
)

// StatsStore persists statistics after each completed session.
type StatsStore interface {
	Save(stats.Statistics) error
}

// Timer is the Pomodoro state machine. It owns the current session,
// the cycle counter and the accumulated statistics; the coordinator
// drives it by calling Tick once per second.
type Timer struct {
	mu              sync.Mutex
	config          model.Config
	session         SessionType
	status          Status
	remaining       time.Duration
	cycle           int
	completedWork   int
	completedBreaks int
	sessionName     string
	statistics      stats.Statistics
	store           StatsStore
	events          []chan Event
	closed          bool
}

// New creates a timer in the initial state: a full work session, idle, cycle 1.
func New(config model.Config, statistics stats.Statistics, store StatsStore) *Timer {
	return &Timer{
		config:     config,
		session:    SessionWork,
		status:     StatusIdle,
		remaining:  config.WorkDuration,
		cycle:      1,
		statistics: statistics,
		store:      store,
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Close shuts down all observer channels. The timer must not be used after.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start begins or resumes the countdown.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.status == StatusRunning {
		timer.mu.Unlock()
		return
	}
	timer.status = StatusRunning
	timer.emitStateChangeLocked()
	timer.mu.Unlock()
}

// Pause freezes the countdown, keeping the remaining time.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if timer.status != StatusRunning {
		timer.mu.Unlock()
		return
	}
	timer.status = StatusPaused
	timer.emitStateChangeLocked()
	timer.mu.Unlock()
}

// Stop halts the countdown and restores the full duration of the
// current session type.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	timer.status = StatusIdle
	timer.remaining = timer.sessionDurationLocked(timer.session)
	timer.emitStateChangeLocked()
	timer.mu.Unlock()
}

// Tick advances the countdown by one second. It is a no-op unless the
// timer is running. Reaching zero completes the session: statistics are
// recorded and persisted, the session type and cycle advance, and the
// remaining time resets for the next session.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if timer.status != StatusRunning {
		timer.mu.Unlock()
		return
	}

	timer.remaining -= time.Second
	if timer.remaining > 0 {
		timer.emitLocked(Event{
			Type:  EventTick,
			State: timer.stateLocked(),
			At:    time.Now(),
		})
		timer.mu.Unlock()
		return
	}

	timer.remaining = 0
	timer.completeSessionLocked()
	timer.mu.Unlock()
}

// Reset returns the timer to the initial work state without touching
// cumulative statistics unless clearStats is set.
func (timer *Timer) Reset(clearStats bool) {
	timer.mu.Lock()
	timer.session = SessionWork
	timer.status = StatusIdle
	timer.remaining = timer.config.WorkDuration
	timer.cycle = 1
	timer.completedWork = 0
	timer.completedBreaks = 0

	if clearStats {
		timer.statistics = stats.New(time.Now())
		timer.saveStatsLocked()
	}

	timer.emitStateChangeLocked()
	timer.mu.Unlock()
}

// UpdateConfig validates and applies new settings. Invalid settings are
// rejected and the previous config stays in effect. The new duration
// takes effect immediately when the current session has not started yet;
// a session already underway keeps its remaining time.
func (timer *Timer) UpdateConfig(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	timer.mu.Lock()
	timer.config = config
	if timer.cycle > config.CyclesBeforeLongBreak {
		timer.cycle = config.CyclesBeforeLongBreak
	}
	if timer.status == StatusIdle {
		timer.remaining = timer.sessionDurationLocked(timer.session)
	}
	timer.emitStateChangeLocked()
	timer.mu.Unlock()
	return nil
}

// SetSessionName labels the next completed work session in the history.
func (timer *Timer) SetSessionName(name string) {
	timer.mu.Lock()
	timer.sessionName = name
	timer.mu.Unlock()
}

// State returns a snapshot for rendering.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.stateLocked()
}

// Config returns the active configuration.
func (timer *Timer) Config() model.Config {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// Stats returns a copy of the accumulated statistics.
func (timer *Timer) Stats() stats.Statistics {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	statistics := timer.statistics
	statistics.TodayHistory = append([]stats.SessionRecord(nil), timer.statistics.TodayHistory...)
	return statistics
}

// FlushStats persists the current statistics, typically at shutdown.
func (timer *Timer) FlushStats() error {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.store == nil {
		return nil
	}
	return timer.store.Save(timer.statistics)
}

func (timer *Timer) completeSessionLocked() {
	now := time.Now()
	finished := timer.session

	switch finished {
	case SessionWork:
		timer.statistics.RecordWorkSession(timer.config.WorkDuration, timer.sessionName, now)
		timer.completedWork++
	case SessionShortBreak:
		timer.statistics.RecordBreakSession(timer.config.ShortBreakDuration, now)
		timer.completedBreaks++
	case SessionLongBreak:
		timer.statistics.RecordBreakSession(timer.config.LongBreakDuration, now)
		timer.completedBreaks++
	}

	timer.advanceSessionLocked()

	if (finished == SessionWork && timer.config.AutoStartBreaks) ||
		(finished != SessionWork && timer.config.AutoStartWork) {
		timer.status = StatusRunning
	} else {
		timer.status = StatusIdle
	}

	timer.saveStatsLocked()

	timer.emitLocked(Event{
		Type:      EventSessionComplete,
		State:     timer.stateLocked(),
		Completed: finished,
		At:        now,
	})
}

func (timer *Timer) advanceSessionLocked() {
	if timer.session == SessionWork {
		if timer.cycle >= timer.config.CyclesBeforeLongBreak {
			timer.session = SessionLongBreak
			timer.remaining = timer.config.LongBreakDuration
			timer.cycle = 1
		} else {
			timer.session = SessionShortBreak
			timer.remaining = timer.config.ShortBreakDuration
			timer.cycle++
		}
		return
	}
	timer.session = SessionWork
	timer.remaining = timer.config.WorkDuration
}

func (timer *Timer) saveStatsLocked() {
	if timer.store == nil {
		return
	}
	if err := timer.store.Save(timer.statistics); err != nil {
		timer.emitLocked(Event{
			Type:    EventStatsError,
			State:   timer.stateLocked(),
			Message: err.Error(),
			At:      time.Now(),
		})
	}
}

func (timer *Timer) sessionDurationLocked(session SessionType) time.Duration {
	switch session {
	case SessionShortBreak:
		return timer.config.ShortBreakDuration
	case SessionLongBreak:
		return timer.config.LongBreakDuration
	default:
		return timer.config.WorkDuration
	}
}

func (timer *Timer) stateLocked() State {
	return State{
		Session:                timer.session,
		Status:                 timer.status,
		Remaining:              timer.remaining,
		CurrentCycle:           timer.cycle,
		TotalCycles:            timer.config.CyclesBeforeLongBreak,
		CompletedWorkSessions:  timer.completedWork,
		CompletedBreakSessions: timer.completedBreaks,
		Progress:               timer.progressLocked(),
	}
}

func (timer *Timer) progressLocked() float64 {
	total := timer.sessionDurationLocked(timer.session)
	if total <= 0 {
		return 1
	}
	progress := float64(total-timer.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (timer *Timer) emitStateChangeLocked() {
	timer.emitLocked(Event{
		Type:  EventStateChange,
		State: timer.stateLocked(),
		At:    time.Now(),
	})
}

func (timer *Timer) emitLocked(event Event) {
	events := append([]chan Event(nil), timer.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
