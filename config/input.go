package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSlide
	ActionRestart
	ActionToggleDebug
	ActionSaveLevel
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "moveLeft",
	ActionMoveRight:   "moveRight",
	ActionJump:        "jump",
	ActionSlide:       "slide",
	ActionRestart:     "restart",
	ActionToggleDebug: "toggleDebug",
	ActionSaveLevel:   "saveLevel",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName returns the action with the given name.
func ActionByName(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}

// InputBinding lists the keys bound to one action. Keys are ebiten key names
// ("ArrowLeft", "A", "Space") so this package stays free of the window
// library; the client resolves them once at startup.
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []string{"ArrowLeft", "A"}},
			ActionMoveRight:   {Keys: []string{"ArrowRight", "D"}},
			ActionJump:        {Keys: []string{"ArrowUp", "W", "Space"}},
			ActionSlide:       {Keys: []string{"ArrowDown", "S"}},
			ActionRestart:     {Keys: []string{"R"}},
			ActionToggleDebug: {Keys: []string{"F1"}},
			ActionSaveLevel:   {Keys: []string{"F5"}},
		},
	}
}
