package obj

// Action is one entry of the fixed input vocabulary.
type Action string

const (
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJump      Action = "jump"
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionAttack    Action = "attack"
	ActionInteract  Action = "interact"
	ActionPause     Action = "pause"
)

// Actions lists every action in a stable order.
var Actions = []Action{
	ActionMoveLeft, ActionMoveRight, ActionJump, ActionMoveUp,
	ActionMoveDown, ActionAttack, ActionInteract, ActionPause,
}

// Controls answers action queries; device polling happens elsewhere.
type Controls interface {
	IsPressed(a Action) bool
	IsJustPressed(a Action) bool
}

// Held is a Controls backed by a set of held actions. Just-pressed is derived
// from the previous Step.
type Held struct {
	now, prev map[Action]bool
}

func NewHeld() *Held {
	return &Held{now: map[Action]bool{}, prev: map[Action]bool{}}
}

// Step latches the current state as the previous one.
func (h *Held) Step() {
	for a := range h.prev {
		delete(h.prev, a)
	}
	for a, v := range h.now {
		h.prev[a] = v
	}
}

func (h *Held) Set(a Action, down bool) { h.now[a] = down }

func (h *Held) IsPressed(a Action) bool     { return h.now[a] }
func (h *Held) IsJustPressed(a Action) bool { return h.now[a] && !h.prev[a] }
