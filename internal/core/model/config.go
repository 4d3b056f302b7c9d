package model

import "time"

// Break is a re-arming reminder rule keyed to accumulated work time.
type Break struct {
	Prompt string
	After  time.Duration

	// LastDone is the accumulated work time at which this break was last
	// accepted. It only ever advances, and only to the work-time value at
	// the moment of acceptance.
	LastDone time.Duration
}

// NewBreak creates a break rule that has never fired.
func NewBreak(prompt string, after time.Duration) Break {
	return Break{Prompt: prompt, After: after}
}

// Check reports whether the rule fires at the given accumulated work time.
func (rule Break) Check(workTime time.Duration) bool {
	return workTime > rule.After+rule.LastDone
}

// Config contains the scheduling thresholds and break rules. It is loaded
// once at startup and never mutated afterwards.
type Config struct {
	// MaxIdleTimeWhileWorking is the idle sample above which the user is
	// considered to have stopped working.
	MaxIdleTimeWhileWorking time.Duration

	// Workday is the accumulated work time that triggers the end-of-day
	// prompt.
	Workday time.Duration

	// DayResetsAfter is the idle duration after which accumulated state is
	// stale and a new day begins.
	DayResetsAfter time.Duration

	// JustStarted is the grace period after resuming work during which
	// break prompts are suppressed, and the minimum gap between repeated
	// end-of-day prompts.
	JustStarted time.Duration

	// GoodChunkOfWork bounds the continuous stretch beyond which break
	// eligibility resumes.
	GoodChunkOfWork time.Duration

	// MinimumTimeBetweenBreaks debounces consecutive break prompts.
	// Expected to be less than JustStarted; not enforced.
	MinimumTimeBetweenBreaks time.Duration

	// WhenToEmphasizeBreak is how long a prompt may go unacknowledged
	// before its presentation escalates.
	WhenToEmphasizeBreak time.Duration

	// WhenToLockScreen is kept in the config file for compatibility; the
	// scheduler does not consume it.
	WhenToLockScreen time.Duration

	Breaks []Break
}

// DefaultConfig returns the built-in schedule.
func DefaultConfig() Config {
	return Config{
		MaxIdleTimeWhileWorking:  10 * time.Minute,
		Workday:                  8 * time.Hour,
		DayResetsAfter:           7 * time.Hour,
		JustStarted:              6 * time.Minute,
		GoodChunkOfWork:          30 * time.Minute,
		MinimumTimeBetweenBreaks: 5 * time.Minute,
		WhenToEmphasizeBreak:     2 * time.Minute,
		WhenToLockScreen:         10 * time.Minute,
		Breaks: []Break{
			NewBreak("Time for a 7-minute exercise", 3*time.Hour),
			NewBreak("Switch to standing desk", 4*time.Hour+time.Minute),
		},
	}
}
