package layout

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/preview"
	"go.uber.org/zap"
	"golang.org/x/text/width"
)

// ErrNoKanaKey reports a character macOS kana mode has no key for.
var ErrNoKanaKey = errors.New("no JIS kana mode key")

// kotoeriKana is the macOS kana typing input source.
const kotoeriKana = "com.apple.inputmethod.Kotoeri.KanaTyping.Japanese"

const (
	stickneyKanaRule   = "New Stickney to JIS layout in Japanese Kana input mode"
	stickneyRomajiRule = "New Stickney to JIS layout in Japanese Romaji input mode"
)

// ToKey returns the key macOS kana input on a JIS keyboard needs to type c.
// The plain, shift, fn+option and shift+option layers are tried in turn.
func ToKey(c string) (karabiner.ToEvent, error) {
	if c == unused {
		return noOp, nil
	}
	layers := []struct {
		table     []string
		modifiers []string
	}{
		{jisKanaNormal, nil},
		{jisKanaShift, []string{"shift"}},
		{jisKanaFnOption, []string{"fn", "option"}},
		{jisKanaShiftOption, []string{"shift", "option"}},
	}
	for _, l := range layers {
		if i := slices.Index(l.table, c); i >= 0 {
			return karabiner.Key(keyName(jisQwerty[i]), l.modifiers...), nil
		}
	}
	if to, ok := kanaFallback[c]; ok {
		return to, nil
	}
	return karabiner.ToEvent{}, fmt.Errorf("%w: %q", ErrNoKanaKey, c)
}

// Stickney remaps a JIS keyboard in macOS kana input mode to the New
// Stickney kana layout.
type Stickney struct {
	opts Options
}

// NewStickney creates the New Stickney generator.
func NewStickney(opts Options) *Stickney {
	return &Stickney{opts: opts}
}

// Name is the subcommand name.
func (s *Stickney) Name() string { return "stickney" }

// OutputName is the document file name.
func (s *Stickney) OutputName() string { return "new-stickney-in-macos.json" }

// Title is the document title.
func (s *Stickney) Title() string { return "New Stickney Japanese Kana Layout in macOS" }

// Validate checks the table sizes, that known characters land on the keys
// macOS kana mode uses for them, and that the option layers really are
// the full-width qwerty keys.
func (s *Stickney) Validate() error {
	n := len(jisQwerty)
	tables := []struct {
		name  string
		cells []string
	}{
		{"jis shifted", jisQwertyShifted},
		{"kana normal", jisKanaNormal},
		{"kana shift", jisKanaShift},
		{"kana shift option", jisKanaShiftOption},
		{"kana fn option", jisKanaFnOption},
		{"new stickney", stickneyNormal},
		{"new stickney shifted", stickneyShift},
	}
	for _, t := range tables {
		if len(t.cells) != n {
			return fmt.Errorf("%w: %s has %d keys, want %d", ErrTableMismatch, t.name, len(t.cells), n)
		}
	}

	spots := []struct {
		char string
		want karabiner.ToEvent
	}{
		{"０", karabiner.Key("0", "fn", "option")},
		{"、", karabiner.Key("comma", "shift")},
		{"を", karabiner.Key("0", "shift")},
		{"え", karabiner.Key("5")},
		{"＆", karabiner.Key("6", "shift", "option")},
		{"＇", karabiner.Key("7", "shift", "option")},
		{"（", karabiner.Key("8", "shift", "option")},
		{"）", karabiner.Key("9", "shift", "option")},
		{"む", karabiner.Key("backslash")},
		{"゜", karabiner.Key("close_bracket")},
		{"へ", karabiner.Key("equal_sign")},
		{"ろ", karabiner.Key("international1")},
		{"ー", karabiner.Key("international3")},
	}
	for _, spot := range spots {
		got, err := ToKey(spot.char)
		if err != nil {
			return err
		}
		if diff := cmp.Diff(spot.want, got); diff != "" {
			return fmt.Errorf("%w: %s (-want +got):\n%s", ErrTableMismatch, spot.char, diff)
		}
	}

	for i, q := range jisQwerty {
		if isAlnum(q) && jisKanaFnOption[i] != width.Widen.String(q) {
			return fmt.Errorf("%w: fn+option %s is %s", ErrTableMismatch, q, jisKanaFnOption[i])
		}
		shifted := jisQwertyShifted[i]
		if isAlnum(shifted) && jisKanaShiftOption[i] != unused && jisKanaShiftOption[i] != width.Widen.String(shifted) {
			return fmt.Errorf("%w: shift+option %s is %s", ErrTableMismatch, shifted, jisKanaShiftOption[i])
		}
	}

	for _, table := range [][]string{stickneyNormal, stickneyShift} {
		for _, c := range table {
			if _, err := ToKey(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func isAlnum(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

// Build writes the kana mode rule.
func (s *Stickney) Build() (*karabiner.Document, error) {
	doc := karabiner.NewDocument(s.Title(), s.opts.Metadata)

	kana, err := s.kanaMappings()
	if err != nil {
		return nil, err
	}
	// Romaji input needs no remapping yet, and Karabiner-Elements rejects
	// an empty rule, so only the kana rule is written.
	doc.AddRule(stickneyKanaRule, kana)
	return doc, nil
}

// Summary reports the romaji and kana manipulator counts.
func (s *Stickney) Summary(doc *karabiner.Document) string {
	var romaji, kana int
	for _, r := range doc.Rules {
		switch r.Description {
		case stickneyRomajiRule:
			romaji += len(r.Manipulators)
		case stickneyKanaRule:
			kana += len(r.Manipulators)
		}
	}
	return fmt.Sprintf("%d romaji mode and %d kana mode sub-rules", romaji, kana)
}

func kanaConditions(keyboardTypes ...string) []karabiner.Condition {
	conds := []karabiner.Condition{karabiner.InputSourceIf(karabiner.InputSourceID(kotoeriKana))}
	if len(keyboardTypes) > 0 {
		conds = append(conds, karabiner.KeyboardTypeIf(keyboardTypes...))
	}
	return conds
}

// mapTo sends kana for from. Characters whose JIS key is missing or moved
// on other keyboards get a JIS only manipulator plus an ANSI/ISO one.
func (s *Stickney) mapTo(from karabiner.FromEvent, kana, description string) ([]karabiner.Manipulator, error) {
	to, err := ToKey(kana)
	if err != nil {
		return nil, err
	}

	alt, special := isoANSIAlternates[kana]
	conds := kanaConditions()
	if special {
		conds = kanaConditions("jis")
	}

	s.opts.logger().Debug("mapping",
		zap.String("description", description),
		zap.Bool("jis_only", special))

	ms := []karabiner.Manipulator{{
		Type:        karabiner.TypeBasic,
		From:        from,
		To:          []karabiner.ToEvent{to},
		Conditions:  conds,
		Description: description,
	}}
	if special {
		ms = append(ms, karabiner.Manipulator{
			Type:        karabiner.TypeBasic,
			From:        from,
			To:          []karabiner.ToEvent{alt},
			Conditions:  kanaConditions("ansi", "iso"),
			Description: description,
		})
	}
	return ms, nil
}

func (s *Stickney) kanaMappings() ([]karabiner.Manipulator, error) {
	var ms []karabiner.Manipulator
	add := func(from karabiner.FromEvent, kana, description string) error {
		m, err := s.mapTo(from, kana, description)
		if err != nil {
			return err
		}
		ms = append(ms, m...)
		return nil
	}

	// Keys only ISO keyboards have, standing in for JIS keys.
	for _, k := range isoKeys {
		i := slices.Index(stickneyNormal, k.kana)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s not on New Stickney", ErrTableMismatch, k.kana)
		}
		if err := add(karabiner.FromKey(k.code), k.kana, fmt.Sprintf("ISO %s to %s", k.code, k.kana)); err != nil {
			return nil, err
		}
		shifted := stickneyShift[i]
		if err := add(karabiner.FromKeyWith(k.code, "shift"), shifted, fmt.Sprintf("ISO %s to %s", k.code, shifted)); err != nil {
			return nil, err
		}
	}

	for i, q := range jisQwerty {
		code := keyName(q)
		if err := add(karabiner.FromKey(code), stickneyNormal[i], fmt.Sprintf("%s to %s", code, stickneyNormal[i])); err != nil {
			return nil, err
		}
		if err := add(karabiner.FromKeyWith(code, "shift"), stickneyShift[i], fmt.Sprintf("shift-%s to %s", code, stickneyShift[i])); err != nil {
			return nil, err
		}
	}
	return ms, nil
}

// Grids shows the JIS keys and the New Stickney layers on them.
func (s *Stickney) Grids() []preview.Grid {
	return []preview.Grid{
		{Title: "JIS", Rows: stickneyGrid(jisQwerty)},
		{Title: "New Stickney", Rows: stickneyGrid(stickneyNormal)},
		{Title: "New Stickney (shift)", Rows: stickneyGrid(stickneyShift)},
	}
}

func stickneyGrid(table []string) [][]string {
	var rows [][]string
	start := 0
	for _, n := range stickneyRows {
		row := make([]string, n)
		for i := range row {
			if c := table[start+i]; c != unused {
				row[i] = c
			}
		}
		rows = append(rows, row)
		start += n
	}
	return rows
}
