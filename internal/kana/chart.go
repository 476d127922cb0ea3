// Package kana resolves kana chording tables into romaji key sequences.
//
// A chart is a list of rows (consonant prefixes such as "k" or "xy") crossed
// with the five modifiers. Each combination concatenates the row prefix and
// the modifier's vowel, then consults the exception table, which may rewrite
// the romaji (hu -> fu) or suppress the combination (obsolete kana).
package kana

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Vowels lists the vowel suffixes in modifier order.
const Vowels = "aiueo"

var (
	// ErrUnknownRow is returned when resolving a row the chart does not declare.
	ErrUnknownRow = errors.New("unknown row")

	// ErrUnknownModifier is returned when resolving an out of range modifier.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrTableMismatch reports an inconsistent chart declaration.
	ErrTableMismatch = errors.New("inconsistent chart")
)

// Modifier is the cursor key pressed together with a row key, if any.
type Modifier int

const (
	ModNone Modifier = iota
	ModLeft
	ModUp
	ModRight
	ModDown
)

var modifierKeys = [...]string{"", "left_arrow", "up_arrow", "right_arrow", "down_arrow"}

// Modifiers returns every modifier in chart order.
func Modifiers() []Modifier {
	return []Modifier{ModNone, ModLeft, ModUp, ModRight, ModDown}
}

// Valid reports whether m is one of the five chart modifiers.
func (m Modifier) Valid() bool {
	return m >= ModNone && m <= ModDown
}

// KeyCode is the Karabiner key code of the modifier, empty for ModNone.
func (m Modifier) KeyCode() string {
	return modifierKeys[m]
}

// Vowel is the romaji vowel the modifier selects.
func (m Modifier) Vowel() string {
	return Vowels[m : m+1]
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	return m.KeyCode()
}

// ParseModifier parses a key code ("up_arrow") or "none".
func ParseModifier(s string) (Modifier, error) {
	if s == "none" || s == "" {
		return ModNone, nil
	}
	for i, k := range modifierKeys {
		if k == s {
			return Modifier(i), nil
		}
	}
	return ModNone, fmt.Errorf("unknown modifier %q", s)
}

// Exception overrides the romaji of a single combination.
type Exception struct {
	symbol   string
	suppress bool
}

// Rewrite replaces the concatenated romaji with symbol.
func Rewrite(symbol string) Exception {
	return Exception{symbol: symbol}
}

// Suppress drops the combination entirely.
func Suppress() Exception {
	return Exception{suppress: true}
}

// Suppressed reports whether the exception drops its combination.
func (e Exception) Suppressed() bool { return e.suppress }

// Symbol is the replacement romaji; empty when suppressed.
func (e Exception) Symbol() string { return e.symbol }

// Row is one line of the chart.
type Row struct {
	Key     string // romaji prefix, empty for the plain vowel row
	Trigger string // physical key; defaults to the first character of Key
	Note    string
}

// TriggerKey returns the key code that starts chords on this row.
func (r Row) TriggerKey() string {
	if r.Trigger != "" {
		return r.Trigger
	}
	if r.Key == "" {
		return ""
	}
	return r.Key[:1]
}

// Label names the row in rule descriptions.
func (r Row) Label() string {
	if r.Key != "" {
		return r.Key
	}
	return r.TriggerKey()
}

// Resolution is the outcome of resolving one combination.
type Resolution struct {
	Row        Row
	Modifier   Modifier
	Romaji     string // concatenated row prefix and vowel
	Symbol     string // romaji to type; empty when suppressed
	Suppressed bool
	Rewritten  bool // an exception replaced Romaji
}

// Chart is an ordered set of rows plus the exception table. It is
// read-only once built.
type Chart struct {
	rows       []Row
	index      map[string]int
	exceptions map[string]Exception
}

// NewChart builds a chart from rows in declaration order.
func NewChart(rows []Row, exceptions map[string]Exception) *Chart {
	c := &Chart{
		rows:       append([]Row(nil), rows...),
		index:      make(map[string]int, len(rows)),
		exceptions: make(map[string]Exception, len(exceptions)),
	}
	for i, r := range rows {
		if _, dup := c.index[r.Key]; !dup {
			c.index[r.Key] = i
		}
	}
	for k, v := range exceptions {
		c.exceptions[k] = v
	}
	return c
}

// Rows returns the rows in declaration order.
func (c *Chart) Rows() []Row {
	return append([]Row(nil), c.rows...)
}

// Row looks up a row by key.
func (c *Chart) Row(key string) (Row, bool) {
	i, ok := c.index[key]
	if !ok {
		return Row{}, false
	}
	return c.rows[i], true
}

// RowByLabel finds the row a rule description refers to.
func (c *Chart) RowByLabel(label string) (Row, bool) {
	if r, ok := c.Row(label); ok && r.Key != "" {
		return r, true
	}
	for _, r := range c.rows {
		if r.Key == "" && r.TriggerKey() == label {
			return r, true
		}
	}
	return Row{}, false
}

// Exception returns the exception registered for romaji, if any.
func (c *Chart) Exception(romaji string) (Exception, bool) {
	e, ok := c.exceptions[romaji]
	return e, ok
}

// Resolve maps a row and modifier to the romaji it sends.
func (c *Chart) Resolve(rowKey string, mod Modifier) (Resolution, error) {
	row, ok := c.Row(rowKey)
	if !ok {
		return Resolution{}, fmt.Errorf("%w %q", ErrUnknownRow, rowKey)
	}
	if !mod.Valid() {
		return Resolution{}, fmt.Errorf("%w %d", ErrUnknownModifier, int(mod))
	}
	return c.resolve(row, mod), nil
}

func (c *Chart) resolve(row Row, mod Modifier) Resolution {
	romaji := row.Key + mod.Vowel()
	res := Resolution{Row: row, Modifier: mod, Romaji: romaji, Symbol: romaji}

	if e, ok := c.exceptions[romaji]; ok {
		res.Rewritten = true
		if e.Suppressed() {
			res.Suppressed = true
			res.Symbol = ""
		} else {
			res.Symbol = e.Symbol()
		}
	}
	return res
}

// Resolutions resolves every combination, rows first then modifiers.
func (c *Chart) Resolutions() []Resolution {
	out := make([]Resolution, 0, len(c.rows)*len(Vowels))
	for _, row := range c.rows {
		for _, mod := range Modifiers() {
			out = append(out, c.resolve(row, mod))
		}
	}
	return out
}

// Active returns the resolutions that are not suppressed.
func (c *Chart) Active() []Resolution {
	var out []Resolution
	for _, res := range c.Resolutions() {
		if !res.Suppressed {
			out = append(out, res)
		}
	}
	return out
}

// Validate checks the chart declaration: unique rows with a trigger key,
// and exceptions that each match some combination and rewrite to a
// non-empty symbol.
func (c *Chart) Validate() error {
	var problems []string

	seen := make(map[string]bool, len(c.rows))
	combos := make(map[string]bool, len(c.rows)*len(Vowels))
	for _, r := range c.rows {
		if seen[r.Key] {
			problems = append(problems, fmt.Sprintf("row %q declared twice", r.Key))
		}
		seen[r.Key] = true

		if r.TriggerKey() == "" {
			problems = append(problems, fmt.Sprintf("row %q has no trigger key", r.Key))
		}
		for _, v := range Vowels {
			combos[r.Key+string(v)] = true
		}
	}

	for romaji, e := range c.exceptions {
		if !combos[romaji] {
			problems = append(problems, fmt.Sprintf("exception %q matches no combination", romaji))
		}
		if !e.Suppressed() && e.Symbol() == "" {
			problems = append(problems, fmt.Sprintf("exception %q rewrites to an empty symbol", romaji))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%w: %s", ErrTableMismatch, strings.Join(problems, "; "))
	}
	return nil
}
