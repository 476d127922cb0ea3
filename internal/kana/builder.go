package kana

import (
	"fmt"
	"strings"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
)

const descriptionPrefix = "Romaji mode: "

// BuildOptions controls how resolutions become manipulators.
type BuildOptions struct {
	ThresholdMilliseconds int    // simultaneous chord window
	Language              string // input source language regexp
	Enabled               bool   // emit rules enabled instead of disabled
}

// DefaultBuildOptions matches macOS Japanese romaji input with a 100ms
// chord window.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{ThresholdMilliseconds: 100, Language: "^ja$"}
}

// Build resolves every combination and returns one rule per combination
// that is not suppressed, in row then modifier order.
func (c *Chart) Build(opts BuildOptions) []karabiner.Rule {
	active := c.Active()
	rules := make([]karabiner.Rule, 0, len(active))
	for _, res := range active {
		enabled := opts.Enabled
		rules = append(rules, karabiner.Rule{
			Description:  Describe(res),
			Enabled:      &enabled,
			Manipulators: []karabiner.Manipulator{Manipulator(res, opts)},
		})
	}
	return rules
}

// Manipulator builds the chord manipulator for a single resolution.
func Manipulator(res Resolution, opts BuildOptions) karabiner.Manipulator {
	keys := []string{res.Row.TriggerKey()}
	if res.Modifier != ModNone {
		keys = append(keys, res.Modifier.KeyCode())
	}

	from := karabiner.FromChord(keys...)
	from.Modifiers = &karabiner.FromModifiers{Optional: []string{"any"}}
	if res.Modifier != ModNone {
		from.SimultaneousOptions = &karabiner.SimultaneousOptions{KeyDownOrder: "insensitive"}
	}

	return karabiner.Manipulator{
		Type:       karabiner.TypeBasic,
		From:       from,
		To:         karabiner.Keys(strings.Split(res.Symbol, "")...),
		Conditions: []karabiner.Condition{karabiner.InputSourceIf(karabiner.Language(opts.Language))},
		Parameters: karabiner.Parameters{karabiner.ParamSimultaneousThreshold: opts.ThresholdMilliseconds},
	}
}

// Describe returns the rule description for a resolution.
func Describe(res Resolution) string {
	if res.Modifier == ModNone {
		return fmt.Sprintf("%s%s alone sends %s", descriptionPrefix, res.Row.Label(), res.Symbol)
	}
	return fmt.Sprintf("%s%s+%s sends %s", descriptionPrefix, res.Row.Label(), res.Modifier.KeyCode(), res.Symbol)
}
