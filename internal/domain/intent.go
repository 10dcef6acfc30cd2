package domain

import "errors"

type Category string

const (
	CategoryScreensaver Category = "screensaver"
	CategoryVolume      Category = "volume"
	CategoryBrightness  Category = "brightness"
	CategoryWifi        Category = "wifi"
)

type Action string

const (
	ActionTurnOn     Action = "turn on"
	ActionTurnOff    Action = "turn off"
	ActionSetTimeout Action = "set timeout"
	ActionIncrease   Action = "increase"
	ActionDecrease   Action = "decrease"
	ActionMute       Action = "mute"
	ActionUnmute     Action = "unmute"
	ActionSet        Action = "set"
	ActionConnect    Action = "connect"

	// Reachable through the command catalog only.
	ActionEnable         Action = "enable"
	ActionDisable        Action = "disable"
	ActionSetStyle       Action = "set style"
	ActionEnableMessage  Action = "enable message"
	ActionDisableMessage Action = "disable message"
	ActionSetLockDelay   Action = "set lock delay"
	ActionSetIdleDelay   Action = "set idle delay"

	ActionUnknown Action = "unknown"
)

// Intent is the structured result of interpreting a phrase. An empty Param
// means no parameter was extracted.
type Intent struct {
	Category Category
	Action   Action
	Param    string
	RawText  string
}

func (i Intent) HasParam() bool {
	return i.Param != ""
}

func (i Intent) Recognized() bool {
	return i.Action != ActionUnknown && i.Action != "" && i.Category != ""
}

var (
	ErrNotUnderstood    = errors.New("command not understood")
	ErrUnsupported      = errors.New("action not supported")
	ErrMissingParameter = errors.New("parameter required")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrCommandFailed    = errors.New("command failed")
)

var actionMessages = map[Action]string{
	ActionTurnOn:     "turned on",
	ActionTurnOff:    "turned off",
	ActionEnable:     "enabled",
	ActionDisable:    "disabled",
	ActionSetTimeout: "set timeout for",
	ActionIncrease:   "increased",
	ActionDecrease:   "decreased",
	ActionMute:       "muted",
	ActionUnmute:     "unmuted",
	ActionSet:        "set",
	ActionConnect:    "connected to",
}

// ActionMessage returns the past-tense phrase used in status lines, falling
// back to the action label itself.
func ActionMessage(a Action) string {
	if msg, ok := actionMessages[a]; ok {
		return msg
	}
	return string(a)
}
