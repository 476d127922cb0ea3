// Package karabiner models Karabiner-Elements complex modification documents.
//
// A document is what Karabiner-Elements picks up from
// ~/.config/karabiner/assets/complex_modifications: a titled list of rules,
// each rule holding the manipulators that map a from-event to to-events.
package karabiner

// TypeBasic is the manipulator type used for every key remapping.
const TypeBasic = "basic"

// Parameter names understood by basic manipulators.
const (
	ParamSimultaneousThreshold = "basic.simultaneous_threshold_milliseconds"
	ParamHeldDownThreshold     = "basic.to_if_held_down_threshold_milliseconds"
	ParamDelayedActionDelay    = "basic.to_delayed_action_delay_milliseconds"
)

// Condition types.
const (
	ConditionInputSourceIf     = "input_source_if"
	ConditionInputSourceUnless = "input_source_unless"
	ConditionKeyboardTypeIf    = "keyboard_type_if"
	ConditionVariableIf        = "variable_if"
)

// Metadata is the static attribution block at the top of a document.
type Metadata struct {
	Maintainers []string `yaml:"maintainers" toml:"maintainers" json:"maintainers,omitempty"`
	Author      string   `yaml:"author" toml:"author" json:"author,omitempty"`
	Homepage    string   `yaml:"homepage" toml:"homepage" json:"homepage,omitempty"`
	Repo        string   `yaml:"repo" toml:"repo" json:"repo,omitempty"`
}

// Document is a complete complex modifications file.
type Document struct {
	Title       string   `json:"title"`
	Maintainers []string `json:"maintainers,omitempty"`
	Author      string   `json:"author,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Repo        string   `json:"repo,omitempty"`
	Rules       []Rule   `json:"rules"`
}

// Rule is a named group of manipulators the user enables as one entry.
type Rule struct {
	Description  string        `json:"description"`
	Enabled      *bool         `json:"enabled,omitempty"` // nil leaves the choice to Karabiner
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator maps one from-event to the events sent in its place.
type Manipulator struct {
	Type            string         `json:"type"`
	From            FromEvent      `json:"from"`
	To              []ToEvent      `json:"to,omitempty"`
	ToIfAlone       []ToEvent      `json:"to_if_alone,omitempty"`
	ToIfHeldDown    []ToEvent      `json:"to_if_held_down,omitempty"`
	ToAfterKeyUp    []ToEvent      `json:"to_after_key_up,omitempty"`
	ToDelayedAction *DelayedAction `json:"to_delayed_action,omitempty"`
	Conditions      []Condition    `json:"conditions,omitempty"`
	Parameters      Parameters     `json:"parameters,omitempty"`
	Description     string         `json:"description,omitempty"`
}

// Parameters holds the millisecond timing overrides of a manipulator.
type Parameters map[string]int

// FromEvent describes the input a manipulator reacts to. Exactly one of
// KeyCode, AppleVendorTopCaseKeyCode or Simultaneous is set.
type FromEvent struct {
	KeyCode                   string               `json:"key_code,omitempty"`
	AppleVendorTopCaseKeyCode string               `json:"apple_vendor_top_case_key_code,omitempty"`
	Simultaneous              []KeyRef             `json:"simultaneous,omitempty"`
	SimultaneousOptions       *SimultaneousOptions `json:"simultaneous_options,omitempty"`
	Modifiers                 *FromModifiers       `json:"modifiers,omitempty"`
}

// KeyRef names a single key inside a simultaneous chord.
type KeyRef struct {
	KeyCode string `json:"key_code"`
}

// SimultaneousOptions tunes how a chord is recognised.
type SimultaneousOptions struct {
	KeyDownOrder string `json:"key_down_order,omitempty"` // insensitive, strict, strict_inverse
}

// FromModifiers lists the modifiers that must or may be held.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// ToEvent is a single output event.
type ToEvent struct {
	KeyCode                   string       `json:"key_code,omitempty"`
	AppleVendorTopCaseKeyCode string       `json:"apple_vendor_top_case_key_code,omitempty"`
	Modifiers                 []string     `json:"modifiers,omitempty"`
	SetVariable               *SetVariable `json:"set_variable,omitempty"`
	Halt                      bool         `json:"halt,omitempty"`
}

// SetVariable assigns a Karabiner variable, used for layers.
type SetVariable struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// DelayedAction holds the events of to_delayed_action.
type DelayedAction struct {
	ToIfInvoked  []ToEvent `json:"to_if_invoked,omitempty"`
	ToIfCanceled []ToEvent `json:"to_if_canceled,omitempty"`
}

// Condition restricts when a manipulator is active.
type Condition struct {
	Type          string        `json:"type"`
	InputSources  []InputSource `json:"input_sources,omitempty"`
	KeyboardTypes []string      `json:"keyboard_types,omitempty"`
	Name          string        `json:"name,omitempty"`
	Value         any           `json:"value,omitempty"`
}

// InputSource matches the active macOS input source.
type InputSource struct {
	Language      string `json:"language,omitempty"`
	InputSourceID string `json:"input_source_id,omitempty"`
}
