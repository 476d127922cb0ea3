package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/preview"
	"go.uber.org/zap"
)

const handsDownName = "Hands Down Promethium (2025 pico mod)"

// handsDownVersion is the document version shown in the title.
const handsDownVersion = "0.3"

// HandsDown remaps a JIS MacBook keyboard to Hands Down Promethium for
// non-Japanese input, with a globe/fn navigation layer.
type HandsDown struct {
	opts Options
}

// NewHandsDown creates the Hands Down generator.
func NewHandsDown(opts Options) *HandsDown {
	return &HandsDown{opts: opts}
}

// Name is the subcommand name.
func (h *HandsDown) Name() string { return "handsdown" }

// OutputName is the document file name.
func (h *HandsDown) OutputName() string { return "hands-down-on-jis-macbook.json" }

// Title is the document title, including the script version.
func (h *HandsDown) Title() string {
	return fmt.Sprintf("%s on Japanese MacBook (KE script version %s)", handsDownName, handsDownVersion)
}

func (h *HandsDown) ruleDescription(part string) string {
	return fmt.Sprintf("%s on JIS layout in non-Japanese input mode : %s", handsDownName, part)
}

// Validate checks the three tables line up and that remapping neither
// drops nor invents keys beyond the expected ones.
func (h *HandsDown) Validate() error {
	want := 4*13 + 7
	if len(jisKeys) != want || len(handsDownKeys) != want || len(navigationKeys) != want {
		return fmt.Errorf("%w: %d vs %d vs %d vs %d", ErrTableMismatch,
			len(jisKeys), len(handsDownKeys), len(navigationKeys), want)
	}

	before := make(map[string]bool)
	for _, k := range jisKeys {
		before[k] = true
	}
	for _, k := range handsDownGained {
		before[k] = true
	}
	after := make(map[string]bool)
	for i, k := range handsDownKeys {
		if k == leave {
			k = jisKeys[i]
		}
		after[k] = true
	}
	for _, k := range handsDownLost {
		after[k] = true
	}

	missing, extra := setDifference(before, after), setDifference(after, before)
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("%w: lost %v, gained %v", ErrTableMismatch, missing, extra)
	}
	return nil
}

// setDifference lists the keys of a missing from b, sorted.
func setDifference(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Build writes the navigation layer and core mapping rules.
func (h *HandsDown) Build() (*karabiner.Document, error) {
	doc := karabiner.NewDocument(h.Title(), h.opts.Metadata)
	doc.AddRule(h.ruleDescription("Navigation layer"), h.navigationLayer())
	doc.AddRule(h.ruleDescription("Core mappings"), h.coreMappings())

	log := h.opts.logger()
	for _, r := range doc.Rules {
		log.Debug("rule",
			zap.String("description", r.Description),
			zap.Int("manipulators", len(r.Manipulators)))
	}
	return doc, nil
}

// Summary reports the core mapping count.
func (h *HandsDown) Summary(doc *karabiner.Document) string {
	n := 0
	if len(doc.Rules) > 0 {
		n = len(doc.Rules[len(doc.Rules)-1].Manipulators)
	}
	return fmt.Sprintf("%d sub-rules", n)
}

// toEvent turns table notation into a to-event: S(key) holds left shift
// and A(key) holds left option.
func toEvent(key string) karabiner.ToEvent {
	switch {
	case strings.HasPrefix(key, "S(") && strings.HasSuffix(key, ")"):
		return karabiner.Key(key[2:len(key)-1], "left_shift")
	case strings.HasPrefix(key, "A(") && strings.HasSuffix(key, ")"):
		return karabiner.Key(key[2:len(key)-1], "left_option")
	default:
		return karabiner.Key(key)
	}
}

func (h *HandsDown) navigationLayer() []karabiner.Manipulator {
	fn := karabiner.ToEvent{AppleVendorTopCaseKeyCode: "keyboard_fn"}
	ms := []karabiner.Manipulator{{
		Type:         karabiner.TypeBasic,
		From:         karabiner.FromEvent{AppleVendorTopCaseKeyCode: "keyboard_fn"},
		To:           []karabiner.ToEvent{karabiner.SetVar(navigationVariable, 1)},
		ToAfterKeyUp: []karabiner.ToEvent{karabiner.SetVar(navigationVariable, 0)},
		ToIfAlone:    []karabiner.ToEvent{fn},
		Description:  "Hold globe/fn key for navigation layer",
	}}

	for i, nav := range navigationKeys {
		jis := jisKeys[i]
		if nav == leave || nav == jis {
			continue
		}
		ms = append(ms, karabiner.Manipulator{
			Type:        karabiner.TypeBasic,
			From:        karabiner.FromKeyAnyModifier(jis),
			To:          []karabiner.ToEvent{toEvent(nav)},
			Conditions:  []karabiner.Condition{karabiner.VariableIf(navigationVariable, 1)},
			Description: fmt.Sprintf("Get %s when press %s on navigation layer", nav, jis),
		})
	}
	return ms
}

// nonJapaneseJIS limits a manipulator to a JIS keyboard outside Japanese input.
func nonJapaneseJIS() []karabiner.Condition {
	return []karabiner.Condition{
		karabiner.InputSourceUnless(karabiner.Language("ja")),
		karabiner.KeyboardTypeIf("jis"),
	}
}

func (h *HandsDown) coreMappings() []karabiner.Manipulator {
	var ms []karabiner.Manipulator
	for _, c := range handsDownCombos {
		threshold := h.opts.ComboThreshold
		if len(c.keys) > 2 {
			threshold = h.opts.LargeComboThreshold
		}
		ms = append(ms, karabiner.Manipulator{
			Type:        karabiner.TypeBasic,
			From:        karabiner.FromChord(c.keys...),
			To:          []karabiner.ToEvent{toEvent(c.to)},
			Parameters:  karabiner.Parameters{karabiner.ParamSimultaneousThreshold: threshold},
			Conditions:  nonJapaneseJIS(),
			Description: fmt.Sprintf("Get %s when press combo %s", c.to, strings.Join(c.keys, ", ")),
		})
	}

	for i, hd := range handsDownKeys {
		jis := jisKeys[i]
		if hd == leave || hd == jis {
			continue
		}
		if jis == "left_shift" || jis == "right_shift" {
			ms = append(ms, h.tapHold(jis, hd))
			continue
		}
		ms = append(ms, karabiner.Manipulator{
			Type:        karabiner.TypeBasic,
			From:        karabiner.FromKeyAnyModifier(jis),
			To:          karabiner.Keys(hd),
			Conditions:  nonJapaneseJIS(),
			Description: fmt.Sprintf("Get %s when press %s", hd, jis),
		})
	}
	return ms
}

// tapHold makes modifier send key when tapped and stay a modifier when held.
func (h *HandsDown) tapHold(modifier, key string) karabiner.Manipulator {
	return karabiner.Manipulator{
		Type: karabiner.TypeBasic,
		From: karabiner.FromKeyAnyModifier(modifier),
		Parameters: karabiner.Parameters{
			karabiner.ParamDelayedActionDelay: h.opts.TapHoldDelay,
			karabiner.ParamHeldDownThreshold:  h.opts.TapHoldDelay,
		},
		ToDelayedAction: &karabiner.DelayedAction{ToIfCanceled: karabiner.Keys(key)},
		ToIfAlone:       []karabiner.ToEvent{{KeyCode: key, Halt: true}},
		ToIfHeldDown:    karabiner.Keys(modifier),
		Description:     fmt.Sprintf("Get %s when tap %s, remains %s if held", key, modifier, modifier),
	}
}

// Grids shows the JIS keys, their Hands Down replacements and the
// navigation layer, one keyboard row per line.
func (h *HandsDown) Grids() []preview.Grid {
	return []preview.Grid{
		{Title: "JIS", Rows: splitRows(jisKeys[:], nil)},
		{Title: h.Title(), Rows: splitRows(handsDownKeys[:], jisKeys[:])},
		{Title: "Navigation layer (hold globe/fn)", Rows: splitRows(navigationKeys[:], nil)},
	}
}

// splitRows cuts a key table into keyboard rows. Cells that keep their
// JIS meaning are blank; with base set they show the base key instead.
func splitRows(keys, base []string) [][]string {
	var rows [][]string
	start := 0
	for _, n := range keyboardRows {
		row := make([]string, n)
		for i := range row {
			k := keys[start+i]
			if k == leave {
				k = ""
				if base != nil {
					k = base[start+i]
				}
			}
			row[i] = k
		}
		rows = append(rows, row)
		start += n
	}
	return rows
}
