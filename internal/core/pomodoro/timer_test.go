package pomodoro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajkekeli/Pomodoro-App/internal/core/model"
	"github.com/ajkekeli/Pomodoro-App/internal/core/stats"
)

type fakeStore struct {
	saves []stats.Statistics
	err   error
}

func (store *fakeStore) Save(statistics stats.Statistics) error {
	if store.err != nil {
		return store.err
	}
	store.saves = append(store.saves, statistics)
	return nil
}

// shortConfig keeps sessions a few ticks long so tests drive full
// transitions without thousands of iterations.
func shortConfig() model.Config {
	return model.Config{
		WorkDuration:          3 * time.Second,
		ShortBreakDuration:    2 * time.Second,
		LongBreakDuration:     4 * time.Second,
		CyclesBeforeLongBreak: 4,
	}
}

// completeSession starts the timer and ticks the current session down to zero.
func completeSession(t *testing.T, timer *Timer) {
	t.Helper()
	timer.Start()
	remaining := int(timer.State().Remaining / time.Second)
	require.Greater(t, remaining, 0)
	for i := 0; i < remaining; i++ {
		timer.Tick()
	}
}

func TestInitialState(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	state := timer.State()
	assert.Equal(t, SessionWork, state.Session)
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, 3*time.Second, state.Remaining)
	assert.Equal(t, 1, state.CurrentCycle)
	assert.Equal(t, 4, state.TotalCycles)
	assert.Zero(t, state.Progress)
}

func TestTickIsNoOpUnlessRunning(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	timer.Tick()
	assert.Equal(t, 3*time.Second, timer.State().Remaining)

	timer.Start()
	timer.Pause()
	timer.Tick()
	assert.Equal(t, 3*time.Second, timer.State().Remaining)
}

func TestWorkCompletionTransitionsToShortBreak(t *testing.T) {
	store := &fakeStore{}
	timer := New(shortConfig(), stats.New(time.Now()), store)

	completeSession(t, timer)

	state := timer.State()
	assert.Equal(t, SessionShortBreak, state.Session)
	assert.Equal(t, StatusIdle, state.Status, "no auto-start configured")
	assert.Equal(t, 2*time.Second, state.Remaining)
	assert.Equal(t, 2, state.CurrentCycle)
	assert.Equal(t, 1, state.CompletedWorkSessions)

	statistics := timer.Stats()
	assert.Equal(t, 3, statistics.TotalWorkSeconds)
	assert.Equal(t, 1, statistics.TotalSessions)
	require.Len(t, statistics.TodayHistory, 1)
	assert.Equal(t, stats.RecordWork, statistics.TodayHistory[0].Type)

	require.Len(t, store.saves, 1, "completion persists statistics")
}

func TestBreakCompletionReturnsToWork(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	completeSession(t, timer) // work -> short break
	completeSession(t, timer) // short break -> work

	state := timer.State()
	assert.Equal(t, SessionWork, state.Session)
	assert.Equal(t, 3*time.Second, state.Remaining)
	assert.Equal(t, 2, state.CurrentCycle, "cycle advances on work completions only")

	statistics := timer.Stats()
	assert.Equal(t, 2, statistics.TotalBreakSeconds)
	assert.Equal(t, 1, statistics.TotalSessions, "breaks do not count as sessions")
}

// The classic schedule: after four work sessions and three short breaks,
// the fourth work completion leads into a long break and the cycle
// counter is back at 1.
func TestLongBreakAfterConfiguredCycles(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	for cycle := 1; cycle <= 3; cycle++ {
		completeSession(t, timer) // work
		state := timer.State()
		require.Equal(t, SessionShortBreak, state.Session, "cycle %d", cycle)
		require.Equal(t, cycle+1, state.CurrentCycle)
		completeSession(t, timer) // short break
	}

	completeSession(t, timer) // fourth work session
	state := timer.State()
	assert.Equal(t, SessionLongBreak, state.Session)
	assert.Equal(t, 4*time.Second, state.Remaining)
	assert.Equal(t, 1, state.CurrentCycle)

	completeSession(t, timer) // long break
	state = timer.State()
	assert.Equal(t, SessionWork, state.Session)
	assert.Equal(t, 1, state.CurrentCycle)
	assert.Equal(t, 4, timer.Stats().TotalSessions)
}

// Full-length run with the default 25/5/15 schedule: four work sessions
// and three short breaks, then the long break.
func TestDefaultScheduleFullDay(t *testing.T) {
	timer := New(model.DefaultConfig(), stats.New(time.Now()), nil)

	for cycle := 1; cycle <= 3; cycle++ {
		completeSession(t, timer)
		require.Equal(t, SessionShortBreak, timer.State().Session)
		completeSession(t, timer)
	}
	completeSession(t, timer)

	state := timer.State()
	assert.Equal(t, SessionLongBreak, state.Session)
	assert.Equal(t, 15*time.Minute, state.Remaining)
	assert.Equal(t, 1, state.CurrentCycle)

	statistics := timer.Stats()
	assert.Equal(t, 4*25*60, statistics.TotalWorkSeconds)
	assert.Equal(t, 3*5*60, statistics.TotalBreakSeconds)
	assert.Equal(t, 4, statistics.TotalSessions)

	completeSession(t, timer)
	assert.Equal(t, SessionWork, timer.State().Session)
	assert.Equal(t, 1, timer.State().CurrentCycle)
	assert.Equal(t, 3*5*60+15*60, timer.Stats().TotalBreakSeconds)
}

func TestRemainingNeverNegative(t *testing.T) {
	config := shortConfig()
	config.AutoStartBreaks = true
	config.AutoStartWork = true
	timer := New(config, stats.New(time.Now()), nil)

	timer.Start()
	for i := 0; i < 500; i++ {
		timer.Tick()
		require.GreaterOrEqual(t, timer.State().Remaining, time.Duration(0))
	}
	assert.Equal(t, StatusRunning, timer.State().Status, "auto-start keeps the chain going")
}

func TestStopResetsCurrentSession(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	timer.Start()
	timer.Tick()
	require.Equal(t, 2*time.Second, timer.State().Remaining)

	timer.Stop()
	state := timer.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, 3*time.Second, state.Remaining)
}

func TestPauseKeepsRemaining(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	timer.Start()
	timer.Tick()
	timer.Pause()

	state := timer.State()
	assert.Equal(t, StatusPaused, state.Status)
	assert.Equal(t, 2*time.Second, state.Remaining)

	timer.Start()
	assert.Equal(t, StatusRunning, timer.State().Status)
	assert.Equal(t, 2*time.Second, timer.State().Remaining)
}

func TestResetKeepsStatistics(t *testing.T) {
	store := &fakeStore{}
	timer := New(shortConfig(), stats.New(time.Now()), store)

	completeSession(t, timer)
	require.Equal(t, 3, timer.Stats().TotalWorkSeconds)
	saved := len(store.saves)

	timer.Reset(false)

	state := timer.State()
	assert.Equal(t, SessionWork, state.Session)
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, 3*time.Second, state.Remaining)
	assert.Equal(t, 1, state.CurrentCycle)
	assert.Zero(t, state.CompletedWorkSessions)

	assert.Equal(t, 3, timer.Stats().TotalWorkSeconds, "statistics untouched")
	assert.Len(t, store.saves, saved, "no extra persistence without clearStats")
}

func TestResetWithClearStats(t *testing.T) {
	store := &fakeStore{}
	timer := New(shortConfig(), stats.New(time.Now()), store)

	completeSession(t, timer)
	timer.Reset(true)

	statistics := timer.Stats()
	assert.Zero(t, statistics.TotalWorkSeconds)
	assert.Zero(t, statistics.TotalSessions)
	assert.Empty(t, statistics.TodayHistory)

	require.NotEmpty(t, store.saves)
	assert.Zero(t, store.saves[len(store.saves)-1].TotalWorkSeconds, "cleared statistics persisted")
}

func TestUpdateConfigRejectsOutOfRange(t *testing.T) {
	timer := New(model.DefaultConfig(), stats.New(time.Now()), nil)

	bad := model.DefaultConfig()
	bad.WorkDuration = 90 * time.Minute

	err := timer.UpdateConfig(bad)
	var validation *model.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "work duration", validation.Field)

	assert.Equal(t, 25*time.Minute, timer.Config().WorkDuration, "prior config retained")
}

func TestUpdateConfigAppliesToCurrentSession(t *testing.T) {
	timer := New(model.DefaultConfig(), stats.New(time.Now()), nil)

	updated := model.DefaultConfig()
	updated.WorkDuration = 30 * time.Minute
	updated.CyclesBeforeLongBreak = 2

	require.NoError(t, timer.UpdateConfig(updated))
	state := timer.State()
	assert.Equal(t, 30*time.Minute, state.Remaining)
	assert.Equal(t, 2, state.TotalCycles)
}

// Shrinking cycles below the current position clamps the cycle so the
// counter stays within 1..CyclesBeforeLongBreak and the long break is
// due at the next work completion.
func TestUpdateConfigClampsCycleOnShrink(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	completeSession(t, timer) // work -> short break, cycle 2
	completeSession(t, timer) // short break -> work
	completeSession(t, timer) // work -> short break, cycle 3
	completeSession(t, timer) // short break -> work
	require.Equal(t, 3, timer.State().CurrentCycle)

	updated := model.DefaultConfig()
	updated.CyclesBeforeLongBreak = 2

	require.NoError(t, timer.UpdateConfig(updated))
	state := timer.State()
	assert.Equal(t, 2, state.CurrentCycle)
	assert.Equal(t, 2, state.TotalCycles)

	completeSession(t, timer)
	assert.Equal(t, SessionLongBreak, timer.State().Session)
	assert.Equal(t, 1, timer.State().CurrentCycle)
}

func TestUpdateConfigKeepsRemainingOfStartedSession(t *testing.T) {
	timer := New(model.DefaultConfig(), stats.New(time.Now()), nil)

	timer.Start()
	timer.Tick()
	timer.Pause()
	remaining := timer.State().Remaining

	updated := model.DefaultConfig()
	updated.WorkDuration = 30 * time.Minute

	require.NoError(t, timer.UpdateConfig(updated))
	assert.Equal(t, remaining, timer.State().Remaining, "session underway keeps its countdown")

	timer.Stop()
	assert.Equal(t, 30*time.Minute, timer.State().Remaining, "stop applies the new duration")
}

func TestSessionNameRecorded(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)

	timer.SetSessionName("Study Math")
	completeSession(t, timer)

	history := timer.Stats().TodayHistory
	require.Len(t, history, 1)
	assert.Equal(t, "Study Math", history[0].Name)
}

func TestStatsWriteFailureKeepsMemoryState(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	timer := New(shortConfig(), stats.New(time.Now()), store)
	events := timer.Subscribe(16)

	completeSession(t, timer)

	assert.Equal(t, 3, timer.Stats().TotalWorkSeconds, "in-memory statistics preserved")

	var sawError bool
	for drained := false; !drained; {
		select {
		case event := <-events:
			if event.Type == EventStatsError {
				sawError = true
				assert.Contains(t, event.Message, "disk full")
			}
		default:
			drained = true
		}
	}
	assert.True(t, sawError, "write failure reported to observers")
}

func TestObserverReceivesCompletionEvent(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)
	events := timer.Subscribe(16)

	completeSession(t, timer)

	var completion *Event
	for drained := false; !drained; {
		select {
		case event := <-events:
			if event.Type == EventSessionComplete {
				copied := event
				completion = &copied
			}
		default:
			drained = true
		}
	}
	require.NotNil(t, completion)
	assert.Equal(t, SessionWork, completion.Completed)
	assert.Equal(t, SessionShortBreak, completion.State.Session)
}

func TestCloseShutsObservers(t *testing.T) {
	timer := New(shortConfig(), stats.New(time.Now()), nil)
	events := timer.Subscribe(1)

	timer.Close()
	_, open := <-events
	assert.False(t, open)

	timer.Close() // second close is a no-op
}
