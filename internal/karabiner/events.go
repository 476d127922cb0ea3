package karabiner

// Key returns a to-event pressing code with the given modifiers held.
func Key(code string, modifiers ...string) ToEvent {
	return ToEvent{KeyCode: code, Modifiers: modifiers}
}

// Keys returns one plain to-event per key code, in order.
func Keys(codes ...string) []ToEvent {
	events := make([]ToEvent, len(codes))
	for i, code := range codes {
		events[i] = ToEvent{KeyCode: code}
	}
	return events
}

// SetVar returns a to-event assigning value to the named variable.
func SetVar(name string, value any) ToEvent {
	return ToEvent{SetVariable: &SetVariable{Name: name, Value: value}}
}

// FromKey matches code pressed on its own.
func FromKey(code string) FromEvent {
	return FromEvent{KeyCode: code}
}

// FromKeyAnyModifier matches code whatever modifiers are held.
func FromKeyAnyModifier(code string) FromEvent {
	return FromEvent{KeyCode: code, Modifiers: &FromModifiers{Optional: []string{"any"}}}
}

// FromKeyWith matches code only while the mandatory modifiers are held.
func FromKeyWith(code string, mandatory ...string) FromEvent {
	return FromEvent{KeyCode: code, Modifiers: &FromModifiers{Mandatory: mandatory}}
}

// FromChord matches the keys pressed together.
func FromChord(codes ...string) FromEvent {
	keys := make([]KeyRef, len(codes))
	for i, code := range codes {
		keys[i] = KeyRef{KeyCode: code}
	}
	return FromEvent{Simultaneous: keys}
}

// ChordKeys returns the key codes of a simultaneous from-event.
func (f FromEvent) ChordKeys() []string {
	codes := make([]string, len(f.Simultaneous))
	for i, k := range f.Simultaneous {
		codes[i] = k.KeyCode
	}
	return codes
}

// Language matches input sources by language regexp, e.g. "^ja$".
func Language(pattern string) InputSource {
	return InputSource{Language: pattern}
}

// InputSourceID matches an input source by its exact identifier.
func InputSourceID(id string) InputSource {
	return InputSource{InputSourceID: id}
}

// InputSourceIf activates a manipulator while one of sources is selected.
func InputSourceIf(sources ...InputSource) Condition {
	return Condition{Type: ConditionInputSourceIf, InputSources: sources}
}

// InputSourceUnless activates a manipulator unless one of sources is selected.
func InputSourceUnless(sources ...InputSource) Condition {
	return Condition{Type: ConditionInputSourceUnless, InputSources: sources}
}

// KeyboardTypeIf activates a manipulator for the given virtual keyboard types.
func KeyboardTypeIf(types ...string) Condition {
	return Condition{Type: ConditionKeyboardTypeIf, KeyboardTypes: types}
}

// VariableIf activates a manipulator while name equals value.
func VariableIf(name string, value any) Condition {
	return Condition{Type: ConditionVariableIf, Name: name, Value: value}
}
