package kana

import (
	"fmt"
	"strings"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
)

// Chord is what a generated rule encodes: the row label, the modifier and
// the romaji typed.
type Chord struct {
	Label    string
	Modifier Modifier
	Symbol   string
}

// DecodeRule reads a chord back from a rule produced by Build. The
// description and the manipulator must agree.
func DecodeRule(rule karabiner.Rule) (Chord, error) {
	var chord Chord

	rest, ok := strings.CutPrefix(rule.Description, descriptionPrefix)
	if !ok {
		return chord, fmt.Errorf("rule %q is not a chord rule", rule.Description)
	}
	combo, symbol, ok := strings.Cut(rest, " sends ")
	if !ok {
		return chord, fmt.Errorf("rule %q has no output", rule.Description)
	}
	chord.Symbol = symbol

	if label, alone := strings.CutSuffix(combo, " alone"); alone {
		chord.Label = label
	} else {
		i := strings.LastIndex(combo, "+")
		if i < 0 {
			return chord, fmt.Errorf("rule %q has no modifier", rule.Description)
		}
		mod, err := ParseModifier(combo[i+1:])
		if err != nil {
			return chord, fmt.Errorf("rule %q: %w", rule.Description, err)
		}
		chord.Label, chord.Modifier = combo[:i], mod
	}

	if len(rule.Manipulators) != 1 {
		return chord, fmt.Errorf("rule %q has %d manipulators, want 1", rule.Description, len(rule.Manipulators))
	}
	m := rule.Manipulators[0]

	var typed strings.Builder
	for _, ev := range m.To {
		typed.WriteString(ev.KeyCode)
	}
	if typed.String() != chord.Symbol {
		return chord, fmt.Errorf("rule %q types %q", rule.Description, typed.String())
	}

	keys := m.From.ChordKeys()
	want := 1
	if chord.Modifier != ModNone {
		want = 2
	}
	if len(keys) != want {
		return chord, fmt.Errorf("rule %q chords %v", rule.Description, keys)
	}
	if chord.Modifier != ModNone && keys[1] != chord.Modifier.KeyCode() {
		return chord, fmt.Errorf("rule %q chords %v", rule.Description, keys)
	}
	return chord, nil
}
