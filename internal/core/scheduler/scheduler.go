package scheduler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"deskbreak/internal/core/model"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider reports the duration since the last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// MeetingDetector reports whether the user is currently in a meeting.
// Implementations must not fail; detection problems read as "not in a
// meeting" so reminders keep functioning.
type MeetingDetector interface {
	InMeeting() bool
}

// Options contains runtime options for the Scheduler.
type Options struct {
	TickInterval time.Duration
	Now          func() time.Time
}

// Scheduler is the work/idle state machine. Each tick consumes one idle
// sample plus the meeting flag, accumulates screen time, evaluates break
// rules and the end-of-day rule, and surfaces at most one new prompt.
type Scheduler struct {
	mu      sync.Mutex
	config  model.Config
	options Options

	state State
	since time.Time

	// screenTime is the confirmed work time of completed segments; the
	// currently open segment is not included.
	screenTime time.Duration
	breaks     []model.Break

	prompt       string
	emphasizing  bool
	lastPrompt   time.Time
	statusReport string
	latestUpdate string

	idle     IdleProvider
	meetings MeetingDetector

	events  []chan Event
	stopCh  chan struct{}
	running bool
}

// Snapshot is a synchronized copy of the presentation-facing state.
type Snapshot struct {
	State        State
	Since        time.Time
	ScreenTime   time.Duration
	Prompt       string
	Emphasizing  bool
	StatusReport string
	LatestUpdate string
}

// New creates a Scheduler that considers the user working as of now.
func New(config model.Config, options Options) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = 10 * time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	now := options.Now()
	sched := &Scheduler{
		config:     config,
		options:    options,
		state:      StateWorking,
		since:      now,
		breaks:     append([]model.Break(nil), config.Breaks...),
		lastPrompt: now,
		stopCh:     make(chan struct{}),
	}
	return sched
}

// SetIdleProvider injects the idle-time source.
func (sched *Scheduler) SetIdleProvider(provider IdleProvider) {
	sched.mu.Lock()
	defer sched.mu.Unlock()
	sched.idle = provider
}

// SetMeetingDetector injects the meeting-status source.
func (sched *Scheduler) SetMeetingDetector(detector MeetingDetector) {
	sched.mu.Lock()
	defer sched.mu.Unlock()
	sched.meetings = detector
}

// Subscribe registers a new observer channel.
func (sched *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	sched.mu.Lock()
	sched.events = append(sched.events, ch)
	sched.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (sched *Scheduler) Start() {
	sched.mu.Lock()
	if sched.running {
		sched.mu.Unlock()
		return
	}
	sched.running = true
	sched.mu.Unlock()

	go sched.run()
}

// Stop terminates the ticking loop and closes observers.
func (sched *Scheduler) Stop() {
	sched.mu.Lock()
	if !sched.running {
		sched.mu.Unlock()
		return
	}
	close(sched.stopCh)
	sched.running = false
	events := sched.events
	sched.events = nil
	sched.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a consistent copy of the displayable state.
func (sched *Scheduler) Snapshot() Snapshot {
	sched.mu.Lock()
	defer sched.mu.Unlock()
	return Snapshot{
		State:        sched.state,
		Since:        sched.since,
		ScreenTime:   sched.screenTime,
		Prompt:       sched.prompt,
		Emphasizing:  sched.emphasizing,
		StatusReport: sched.statusReport,
		LatestUpdate: sched.latestUpdate,
	}
}

// Acknowledge resolves the pending prompt. It is the only mutator of
// scheduler state besides the tick.
func (sched *Scheduler) Acknowledge() {
	sched.mu.Lock()
	if sched.prompt == "" {
		sched.mu.Unlock()
		return
	}
	done := sched.prompt
	now := sched.options.Now()
	sched.prompt = ""
	sched.emphasizing = false
	sched.statusReport = fmt.Sprintf("Well done with the %s!", done)
	sched.emitLocked(Event{Type: EventAcknowledged, State: sched.state, Message: sched.statusReport, At: now})
	sched.emitLocked(Event{Type: EventReport, State: sched.state, Message: sched.statusReport, At: now})
	sched.mu.Unlock()
}

func (sched *Scheduler) run() {
	ticker := time.NewTicker(sched.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sched.stopCh:
			return
		case <-ticker.C:
			now := sched.options.Now()
			if err := sched.tick(now); err != nil {
				// A failed tick must not kill the loop; the next
				// period retries.
				sched.emit(Event{Type: EventError, Message: err.Error(), At: now})
			}
		}
	}
}

// tick runs one scheduling step. The whole step holds the lock, so ticks
// are atomic with respect to Acknowledge and Snapshot.
func (sched *Scheduler) tick(now time.Time) error {
	sched.mu.Lock()
	defer sched.mu.Unlock()

	if sched.idle == nil {
		return fmt.Errorf("query idle time: %w", ErrIdleUnsupported)
	}
	idleFor, err := sched.idle.IdleDuration()
	if err != nil {
		return fmt.Errorf("query idle time: %w", err)
	}
	if idleFor < 0 {
		idleFor = 0
	}

	switch sched.state {
	case StateWorking:
		sched.tickWorkingLocked(now, idleFor)
	case StateIdle:
		sched.tickIdleLocked(now, idleFor)
	}

	sched.escalateLocked(now)
	return nil
}

func (sched *Scheduler) tickWorkingLocked(now time.Time, idleFor time.Duration) {
	config := sched.config

	if idleFor > config.MaxIdleTimeWhileWorking && !sched.inMeetingLocked() {
		idleStart := now.Add(-idleFor)
		worked := idleStart.Sub(sched.since)
		if worked < 0 {
			worked = 0
		}
		sched.screenTime += worked
		sched.state = StateIdle
		sched.since = idleStart
		sched.reportLocked(now, fmt.Sprintf("After working %s you are now AFK!", model.FormatDuration(sched.screenTime)))
		return
	}

	thisWork := now.Sub(sched.since)
	if thisWork < 0 {
		thisWork = 0
	}
	totalWork := thisWork + sched.screenTime

	if totalWork > config.Workday && now.Sub(sched.lastPrompt) > config.JustStarted {
		// The end-of-day prompt repeats while the overrun lasts, gated
		// only by the JustStarted cooldown.
		sched.promptLocked(now, fmt.Sprintf("End of day after %s", model.FormatDuration(totalWork)))
		sched.lastPrompt = now
	} else if (thisWork < config.JustStarted || thisWork > config.GoodChunkOfWork) &&
		sched.prompt == "" && !sched.inMeetingLocked() {
		var accepted string
		for i := range sched.breaks {
			rule := &sched.breaks[i]
			if !rule.Check(totalWork) {
				continue
			}
			promptGap := now.Sub(sched.lastPrompt)
			switch {
			case sched.prompt != "":
				sched.reportLocked(now, fmt.Sprintf("Postponing %s, see above.", rule.Prompt))
			case sched.inMeetingLocked():
				sched.reportLocked(now, fmt.Sprintf("Postponing %s while you meet.", rule.Prompt))
			case promptGap < config.MinimumTimeBetweenBreaks:
				remaining := config.MinimumTimeBetweenBreaks - promptGap
				sched.reportLocked(now, fmt.Sprintf("Postponing %s for %s.", rule.Prompt, model.FormatDuration(remaining)))
			default:
				accepted = rule.Prompt
				rule.LastDone = totalWork
				sched.lastPrompt = now
			}
		}
		if accepted != "" {
			sched.promptLocked(now, accepted)
		}
	}

	sched.updateLocked(now, fmt.Sprintf("You've been working for %s", model.FormatDuration(totalWork)))
}

func (sched *Scheduler) tickIdleLocked(now time.Time, idleFor time.Duration) {
	config := sched.config

	idleStart := now.Add(-idleFor)
	idleLength := idleStart.Sub(sched.since)
	if idleLength < 0 {
		idleLength = 0
	}

	if idleLength > config.MaxIdleTimeWhileWorking {
		sched.state = StateWorking
		sched.since = idleStart
		sched.reportLocked(now, fmt.Sprintf("You resumed working after a %s break.", model.FormatDuration(idleLength)))
	} else if idleFor > config.DayResetsAfter && sched.screenTime > 0 {
		sched.reportLocked(now, "I think it is a new day. Resetting.")
		sched.screenTime = 0
		for i := range sched.breaks {
			sched.breaks[i].LastDone = 0
		}
	} else {
		sched.updateLocked(now, fmt.Sprintf("You've been idle for %s", model.FormatDuration(idleFor)))
	}
}

// escalateLocked handles an unacknowledged prompt: once the emphasis
// threshold passes, the prompt is re-surfaced and then re-announced every
// tick until acknowledged.
func (sched *Scheduler) escalateLocked(now time.Time) {
	if sched.prompt == "" {
		return
	}
	if now.Sub(sched.lastPrompt) > sched.config.WhenToEmphasizeBreak {
		sched.emphasizing = true
		sched.lastPrompt = now
		sched.emitLocked(Event{Type: EventEmphasize, State: sched.state, Prompt: sched.prompt, At: now})
	}
	if sched.emphasizing {
		sched.emitLocked(Event{Type: EventAnnounce, State: sched.state, Prompt: sched.prompt, At: now})
	}
}

func (sched *Scheduler) inMeetingLocked() bool {
	if sched.meetings == nil {
		return false
	}
	return sched.meetings.InMeeting()
}

func (sched *Scheduler) promptLocked(now time.Time, prompt string) {
	sched.prompt = prompt
	sched.emitLocked(Event{Type: EventPrompt, State: sched.state, Prompt: prompt, At: now})
}

func (sched *Scheduler) reportLocked(now time.Time, report string) {
	sched.statusReport = report
	sched.emitLocked(Event{Type: EventReport, State: sched.state, Message: report, At: now})
}

func (sched *Scheduler) updateLocked(now time.Time, update string) {
	sched.latestUpdate = update
	sched.emitLocked(Event{Type: EventUpdate, State: sched.state, Message: update, At: now})
}

func (sched *Scheduler) emit(event Event) {
	sched.mu.Lock()
	defer sched.mu.Unlock()
	sched.emitLocked(event)
}

func (sched *Scheduler) emitLocked(event Event) {
	events := append([]chan Event(nil), sched.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
