package timeline

import (
	"time"

	"github.com/charmbracelet/log"
)

// Timeline runs scripted actions one tick at a time. Foreground actions run
// strictly in order; background actions run every tick next to whichever
// foreground action is current. Queued background actions wait for their turn
// in the foreground order and then continue in the background.
type Timeline[S any] struct {
	state S
	tps   int

	queue      []*Action[S]
	background []*Action[S]
	pending    []*Action[S] // background actions added while processing

	initialized      bool
	processing       bool
	destroying       bool
	destroyRequested bool
	nextID           int

	logger *log.Logger
}

type Option[S any] func(*Timeline[S])

// WithLogger sets the logger used for diagnostics. The package default logger
// is used otherwise.
func WithLogger[S any](l *log.Logger) Option[S] {
	return func(t *Timeline[S]) {
		t.logger = l
	}
}

// New creates a timeline ticking at tps. Init must be called before actions
// are added.
func New[S any](tps int, opts ...Option[S]) *Timeline[S] {
	if tps <= 0 {
		tps = 60
	}
	t := &Timeline[S]{
		tps:    tps,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init binds the state handed to every callback and empties the timeline.
func (t *Timeline[S]) Init(state S) {
	if t.initialized {
		t.logger.Warn("timeline already initialized, call Destroy first")
		return
	}
	t.state = state
	t.queue = nil
	t.background = nil
	t.pending = nil
	t.destroyRequested = false
	t.initialized = true
}

// TPS returns the tick rate used to convert durations.
func (t *Timeline[S]) TPS() int {
	return t.tps
}

// Ticks converts a duration to a whole number of ticks, rounding up.
func (t *Timeline[S]) Ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int64(d) * int64(t.tps)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}

// AddAction appends a foreground action.
func (t *Timeline[S]) AddAction(cb Callback[S], args Args, name string) *Action[S] {
	a := t.newAction(cb, args, name, kindForeground)
	if a == nil {
		return nil
	}
	t.queue = append(t.queue, a)
	return a
}

// AddBackgroundAction registers an action that starts after delay and then
// runs every tick until it reports completion.
func (t *Timeline[S]) AddBackgroundAction(cb Callback[S], args Args, delay time.Duration, name string) *Action[S] {
	a := t.newAction(cb, args, name, kindBackground)
	if a == nil {
		return nil
	}
	a.wait = t.Ticks(delay)
	if t.processing {
		t.pending = append(t.pending, a)
	} else {
		t.background = append(t.background, a)
	}
	return a
}

// AddQueuedBackgroundAction appends an action to the foreground order. Once the
// timeline reaches it, it moves to the background (its delay counts from that
// point) and the foreground continues without waiting for it.
func (t *Timeline[S]) AddQueuedBackgroundAction(cb Callback[S], args Args, delay time.Duration, name string) *Action[S] {
	a := t.newAction(cb, args, name, kindQueuedBackground)
	if a == nil {
		return nil
	}
	a.wait = t.Ticks(delay)
	t.queue = append(t.queue, a)
	return a
}

// AddDelay blocks foreground advancement for d. Background actions keep running.
func (t *Timeline[S]) AddDelay(d time.Duration) *Action[S] {
	left := t.Ticks(d)
	return t.AddAction(delay[S], Args{&left}, "delay")
}

func delay[S any](_ S, a *Action[S], p Phase) bool {
	switch p {
	case PhaseRunning:
		left, ok := Arg[*int](a.Args, 0)
		if !ok {
			return true
		}
		*left--
		return *left <= 0
	case PhaseDestroy:
		a.Args = DestroyArgs(a.Args)
	}
	return false
}

func (t *Timeline[S]) newAction(cb Callback[S], args Args, name string, k kind) *Action[S] {
	if !t.initialized {
		t.logger.Warn("timeline not initialized, dropping action", "name", name)
		return nil
	}
	if t.destroying {
		t.logger.Debug("timeline is being destroyed, dropping action", "name", name)
		return nil
	}
	t.nextID++
	return &Action[S]{
		ID:       t.nextID,
		Name:     name,
		Args:     args,
		callback: cb,
		kind:     k,
		phase:    PhaseInit,
	}
}

// Process advances the timeline by one tick.
func (t *Timeline[S]) Process() {
	if !t.initialized || t.processing {
		return
	}
	t.processing = true

	if len(t.pending) > 0 {
		t.background = append(t.background, t.pending...)
		t.pending = t.pending[:0]
	}

	t.promoteQueued()
	if len(t.queue) > 0 {
		if t.step(t.queue[0]) {
			t.queue[0] = nil
			t.queue = t.queue[1:]
		}
	}

	kept := t.background[:0]
	for _, a := range t.background {
		if !t.step(a) {
			kept = append(kept, a)
		}
	}
	clear(t.background[len(kept):])
	t.background = kept

	t.processing = false
	if t.destroyRequested {
		t.Destroy()
	}
}

// promoteQueued moves every queued background action sitting at the head of
// the foreground queue into the background set.
func (t *Timeline[S]) promoteQueued() {
	for len(t.queue) > 0 && t.queue[0].kind == kindQueuedBackground {
		a := t.queue[0]
		t.queue[0] = nil
		t.queue = t.queue[1:]
		t.logger.Debug("timeline promoted queued action", "name", a.Name)
		t.background = append(t.background, a)
	}
}

// step runs one tick of a and reports whether it finished and was destroyed.
func (t *Timeline[S]) step(a *Action[S]) bool {
	if a.wait > 0 {
		a.wait--
		return false
	}
	if a.phase == PhaseInit {
		t.logger.Debug("timeline action started", "name", a.Name, "id", a.ID)
		a.callback(t.state, a, PhaseInit)
		a.phase = PhaseRunning
	}
	if !a.callback(t.state, a, PhaseRunning) {
		return false
	}
	t.finish(a)
	return true
}

func (t *Timeline[S]) finish(a *Action[S]) {
	a.phase = PhaseDestroy
	a.callback(t.state, a, PhaseDestroy)
	t.logger.Debug("timeline action finished", "name", a.Name, "id", a.ID)
}

// HandleEvent offers ev to the running actions that registered a handler,
// foreground first. It returns true once a handler consumed the event.
func (t *Timeline[S]) HandleEvent(ev Event) bool {
	if !t.initialized {
		return false
	}
	if a := t.Current(); a != nil && a.Started() && a.OnEvent != nil {
		if a.OnEvent(t.state, a, ev) {
			return true
		}
	}
	for _, a := range t.background {
		if a.phase != PhaseRunning || a.OnEvent == nil {
			continue
		}
		if a.OnEvent(t.state, a, ev) {
			return true
		}
	}
	return false
}

// Current returns the foreground action at the head of the queue, nil when the
// foreground is exhausted.
func (t *Timeline[S]) Current() *Action[S] {
	for _, a := range t.queue {
		if a.kind == kindForeground {
			return a
		}
	}
	return nil
}

// Len reports how many actions are waiting in the foreground order and how
// many run (or wait to run) in the background.
func (t *Timeline[S]) Len() (foreground, background int) {
	return len(t.queue), len(t.background) + len(t.pending)
}

// Idle reports whether nothing is left to run.
func (t *Timeline[S]) Idle() bool {
	fg, bg := t.Len()
	return fg == 0 && bg == 0
}

// Destroy dispatches PhaseDestroy to every registered action so they release
// their arguments, then empties the timeline. Called from inside a callback it
// takes effect when the current Process returns.
func (t *Timeline[S]) Destroy() {
	if !t.initialized || t.destroying {
		return
	}
	if t.processing {
		t.destroyRequested = true
		return
	}
	t.destroying = true
	for _, list := range [][]*Action[S]{t.queue, t.background, t.pending} {
		for _, a := range list {
			if a.phase != PhaseDestroy {
				t.finish(a)
			}
		}
	}
	t.queue = nil
	t.background = nil
	t.pending = nil
	t.destroying = false
	t.destroyRequested = false
	t.initialized = false
	var zero S
	t.state = zero
}
