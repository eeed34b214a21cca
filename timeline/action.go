package timeline

// Phase is the execution state an action is dispatched with.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseRunning
	PhaseDestroy
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseRunning:
		return "running"
	case PhaseDestroy:
		return "destroy"
	}
	return "unknown"
}

// Event is anything the owner forwards through HandleEvent (key presses in practice).
type Event any

// Callback drives one action. The return value only matters for PhaseRunning,
// where true means the action is finished.
type Callback[S any] func(s S, a *Action[S], p Phase) bool

// EventHandler receives events while its action is running. Returning true
// marks the event as consumed.
type EventHandler[S any] func(s S, a *Action[S], ev Event) bool

type kind int

const (
	kindForeground kind = iota
	kindBackground
	kindQueuedBackground
)

// Action is a single scripted behavior registered on a Timeline.
type Action[S any] struct {
	ID   int
	Name string
	// Args is owned by the action. Callbacks allocate their working state here
	// on first use and release it themselves on PhaseDestroy.
	Args Args
	// OnEvent is optional; only actions that set it receive events.
	OnEvent EventHandler[S]

	callback Callback[S]
	kind     kind
	phase    Phase
	wait     int // ticks left before a background action starts
}

// Phase reports the state the action will be (or was last) dispatched with:
// PhaseInit until it starts, PhaseRunning while active and PhaseDestroy once finished.
func (a *Action[S]) Phase() Phase {
	return a.phase
}

// Started reports whether INIT has already been dispatched.
func (a *Action[S]) Started() bool {
	return a.phase != PhaseInit
}

// Background reports whether the action runs concurrently with the foreground.
func (a *Action[S]) Background() bool {
	return a.kind != kindForeground
}
