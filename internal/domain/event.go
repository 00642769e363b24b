package domain

// Event records a single action a variant performed.
// Devices and animals return one per capability call.
type Event struct {
	Source string `json:"source"`
	Action string `json:"action"`
	Text   string `json:"text"`
}

// Common actions.
const (
	ActionTurnOn    = "turn_on"
	ActionTurnOff   = "turn_off"
	ActionCharge    = "charge"
	ActionMakeSound = "make_sound"
	ActionWalk      = "walk"
)
