package kana

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func rowKeys() []interface{} {
	var keys []interface{}
	for _, r := range FlickChart().Rows() {
		keys = append(keys, r.Key)
	}
	return keys
}

// TestResolveProperties checks the resolver over every declared combination.
func TestResolveProperties(t *testing.T) {
	chart := FlickChart()
	properties := gopter.NewProperties(nil)

	// Property: every combination is either suppressed or types something
	properties.Property("resolves or suppresses", prop.ForAll(
		func(row string, mod int) bool {
			res, err := chart.Resolve(row, Modifier(mod))
			if err != nil {
				return false
			}
			if res.Suppressed {
				return res.Symbol == ""
			}
			return res.Symbol != ""
		},
		gen.OneConstOf(rowKeys()...),
		gen.IntRange(0, 4),
	))

	// Property: suppression only ever comes from the exception table
	properties.Property("suppression is explicit", prop.ForAll(
		func(row string, mod int) bool {
			res, _ := chart.Resolve(row, Modifier(mod))
			e, ok := chart.Exception(res.Romaji)
			if res.Suppressed {
				return ok && e.Suppressed()
			}
			return true
		},
		gen.OneConstOf(rowKeys()...),
		gen.IntRange(0, 4),
	))

	// Property: without an exception the symbol is the plain concatenation
	properties.Property("default concatenation", prop.ForAll(
		func(row string, mod int) bool {
			res, _ := chart.Resolve(row, Modifier(mod))
			if _, ok := chart.Exception(res.Romaji); ok {
				return res.Rewritten
			}
			return res.Symbol == row+Modifier(mod).Vowel() && !res.Rewritten
		},
		gen.OneConstOf(rowKeys()...),
		gen.IntRange(0, 4),
	))

	// Property: resolving is pure
	properties.Property("resolve is stable", prop.ForAll(
		func(row string, mod int) bool {
			a, _ := chart.Resolve(row, Modifier(mod))
			b, _ := chart.Resolve(row, Modifier(mod))
			return a == b
		},
		gen.OneConstOf(rowKeys()...),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

// TestBuildProperties checks the builder against arbitrary small charts.
func TestBuildProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: rule count is combinations minus suppressed ones
	properties.Property("coverage", prop.ForAll(
		func(prefixes []string, suppressed []bool) bool {
			seen := map[string]bool{}
			var rows []Row
			for _, p := range prefixes {
				if p == "" || seen[p] {
					continue
				}
				seen[p] = true
				rows = append(rows, Row{Key: p})
			}

			exceptions := map[string]Exception{}
			i := 0
			for _, r := range rows {
				for _, v := range Vowels {
					if i < len(suppressed) && suppressed[i] {
						exceptions[r.Key+string(v)] = Suppress()
					}
					i++
				}
			}

			chart := NewChart(rows, exceptions)
			rules := chart.Build(DefaultBuildOptions())
			return len(rules) == len(rows)*len(Vowels)-len(exceptions)
		},
		gen.SliceOfN(6, gen.RegexMatch(`^[bcdfghjklmnpqrstvwz]{1,2}$`)),
		gen.SliceOfN(30, gen.Bool()),
	))

	// Property: every built rule decodes back to the same chord
	properties.Property("round trip", prop.ForAll(
		func(prefix string, rewrite string) bool {
			chart := NewChart(
				[]Row{{Key: prefix}},
				map[string]Exception{prefix + "u": Rewrite(rewrite)},
			)
			for _, rule := range chart.Build(DefaultBuildOptions()) {
				chord, err := DecodeRule(rule)
				if err != nil {
					return false
				}
				res, err := chart.Resolve(prefix, chord.Modifier)
				if err != nil || res.Symbol != chord.Symbol || chord.Label != prefix {
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`^[bcdfghjklmnpqrstvwz]{1,2}$`),
		gen.RegexMatch(`^[a-z]{1,4}$`),
	))

	properties.TestingRun(t)
}
