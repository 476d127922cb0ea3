package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandsDownRules(t *testing.T) {
	h := NewHandsDown(DefaultOptions())
	doc := build(t, h)

	require.Len(t, doc.Rules, 2)
	assert.Equal(t,
		"Hands Down Promethium (2025 pico mod) on JIS layout in non-Japanese input mode : Navigation layer",
		doc.Rules[0].Description)
	assert.Equal(t,
		"Hands Down Promethium (2025 pico mod) on JIS layout in non-Japanese input mode : Core mappings",
		doc.Rules[1].Description)
	assert.Len(t, doc.Rules[0].Manipulators, 33)
	assert.Len(t, doc.Rules[1].Manipulators, 59)
	assert.Equal(t, "59 sub-rules", h.Summary(doc))
	assert.Equal(t, "Hands Down Promethium (2025 pico mod) on Japanese MacBook (KE script version 0.3)", doc.Title)
}

func TestHandsDownNavigationLayer(t *testing.T) {
	nav := build(t, NewHandsDown(DefaultOptions())).Rules[0].Manipulators

	fn := nav[0]
	assert.Equal(t, "keyboard_fn", fn.From.AppleVendorTopCaseKeyCode)
	assert.Equal(t, []karabiner.ToEvent{karabiner.SetVar("navigation_layer", 1)}, fn.To)
	assert.Equal(t, []karabiner.ToEvent{karabiner.SetVar("navigation_layer", 0)}, fn.ToAfterKeyUp)
	assert.Equal(t, "keyboard_fn", fn.ToIfAlone[0].AppleVendorTopCaseKeyCode)

	want := karabiner.Manipulator{
		Type:        karabiner.TypeBasic,
		From:        karabiner.FromKeyAnyModifier("tab"),
		To:          []karabiner.ToEvent{karabiner.Key("4")},
		Conditions:  []karabiner.Condition{karabiner.VariableIf("navigation_layer", 1)},
		Description: "Get 4 when press tab on navigation layer",
	}
	if diff := cmp.Diff(want, nav[1]); diff != "" {
		t.Errorf("navigation manipulator mismatch (-want +got):\n%s", diff)
	}

	for _, m := range nav[1:] {
		require.Len(t, m.Conditions, 1)
		assert.Equal(t, karabiner.ConditionVariableIf, m.Conditions[0].Type)
	}
}

func TestHandsDownShiftedNavigationKeys(t *testing.T) {
	nav := build(t, NewHandsDown(DefaultOptions())).Rules[0].Manipulators

	byDescription := make(map[string]karabiner.Manipulator)
	for _, m := range nav {
		byDescription[m.Description] = m
	}

	m, ok := byDescription["Get S(3) when press e on navigation layer"]
	require.True(t, ok)
	assert.Equal(t, karabiner.Key("3", "left_shift"), m.To[0])

	m, ok = byDescription["Get A(left_arrow) when press period on navigation layer"]
	require.True(t, ok)
	assert.Equal(t, karabiner.Key("left_arrow", "left_option"), m.To[0])
}

func TestHandsDownCombos(t *testing.T) {
	core := build(t, NewHandsDown(DefaultOptions())).Rules[1].Manipulators

	want := karabiner.Manipulator{
		Type:       karabiner.TypeBasic,
		From:       karabiner.FromChord("r", "t"),
		To:         []karabiner.ToEvent{karabiner.Key("open_bracket", "left_shift")},
		Parameters: karabiner.Parameters{karabiner.ParamSimultaneousThreshold: 50},
		Conditions: []karabiner.Condition{
			karabiner.InputSourceUnless(karabiner.Language("ja")),
			karabiner.KeyboardTypeIf("jis"),
		},
		Description: "Get S(open_bracket) when press combo r, t",
	}
	if diff := cmp.Diff(want, core[0]); diff != "" {
		t.Errorf("combo mismatch (-want +got):\n%s", diff)
	}

	for _, m := range core[:len(handsDownCombos)] {
		keys := m.From.ChordKeys()
		threshold := m.Parameters[karabiner.ParamSimultaneousThreshold]
		if len(keys) > 2 {
			assert.Equal(t, 100, threshold, m.Description)
		} else {
			assert.Equal(t, 50, threshold, m.Description)
		}
	}
}

func TestHandsDownTapHold(t *testing.T) {
	core := build(t, NewHandsDown(DefaultOptions())).Rules[1].Manipulators

	var tapHolds []karabiner.Manipulator
	for _, m := range core {
		if m.ToDelayedAction != nil {
			tapHolds = append(tapHolds, m)
		}
	}
	require.Len(t, tapHolds, 2)

	left := tapHolds[0]
	assert.Equal(t, "Get b when tap left_shift, remains left_shift if held", left.Description)
	assert.Equal(t, "left_shift", left.From.KeyCode)
	assert.Equal(t, []karabiner.ToEvent{{KeyCode: "b", Halt: true}}, left.ToIfAlone)
	assert.Equal(t, karabiner.Keys("left_shift"), left.ToIfHeldDown)
	assert.Equal(t, karabiner.Keys("b"), left.ToDelayedAction.ToIfCanceled)
	assert.Equal(t, 150, left.Parameters[karabiner.ParamDelayedActionDelay])
	assert.Equal(t, 150, left.Parameters[karabiner.ParamHeldDownThreshold])
	assert.Empty(t, left.Conditions)

	assert.Equal(t, "Get w when tap right_shift, remains right_shift if held", tapHolds[1].Description)
}

func TestHandsDownRemapsCarryInputConditions(t *testing.T) {
	core := build(t, NewHandsDown(DefaultOptions())).Rules[1].Manipulators
	for _, m := range core {
		if m.ToDelayedAction != nil {
			continue
		}
		require.Len(t, m.Conditions, 2, m.Description)
		assert.Equal(t, karabiner.ConditionInputSourceUnless, m.Conditions[0].Type)
		assert.Equal(t, []string{"jis"}, m.Conditions[1].KeyboardTypes)
	}
}

func TestHandsDownCustomTimings(t *testing.T) {
	opts := DefaultOptions()
	opts.ComboThreshold = 40
	opts.LargeComboThreshold = 90
	opts.TapHoldDelay = 200

	core := build(t, NewHandsDown(opts)).Rules[1].Manipulators
	assert.Equal(t, 40, core[0].Parameters[karabiner.ParamSimultaneousThreshold])
	assert.Equal(t, 90, core[len(handsDownCombos)-1].Parameters[karabiner.ParamSimultaneousThreshold])
	for _, m := range core {
		if m.ToDelayedAction != nil {
			assert.Equal(t, 200, m.Parameters[karabiner.ParamDelayedActionDelay])
		}
	}
}

func TestToEvent(t *testing.T) {
	assert.Equal(t, karabiner.Key("9", "left_shift"), toEvent("S(9)"))
	assert.Equal(t, karabiner.Key("right_arrow", "left_option"), toEvent("A(right_arrow)"))
	assert.Equal(t, karabiner.Key("escape"), toEvent("escape"))
}

func TestSplitRows(t *testing.T) {
	rows := splitRows(handsDownKeys[:], jisKeys[:])
	require.Len(t, rows, 5)
	assert.Equal(t, "tab", rows[1][0])
	assert.Equal(t, "v", rows[1][1])

	blank := splitRows(navigationKeys[:], nil)
	assert.Equal(t, "", blank[0][0])
	assert.Equal(t, "4", blank[1][0])
}

func TestHandsDownValidateRejectsLostKey(t *testing.T) {
	old := handsDownKeys
	t.Cleanup(func() { handsDownKeys = old })
	handsDownKeys[14] = "q" // was v

	err := NewHandsDown(DefaultOptions()).Validate()
	assert.ErrorIs(t, err, ErrTableMismatch)
	assert.ErrorContains(t, err, "lost [v], gained []")
}
