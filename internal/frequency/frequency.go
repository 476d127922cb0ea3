// Package frequency turns Japanese kana usage counts into per-letter romaji
// counts for a keyboard heatmap.
package frequency

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Default input and output file names.
const (
	KanaUsageFile = "Tamaoka-and-Makioka-2004-Asahi-kana-usage.tsv"
	RomajiFile    = "romaji.tsv"
	HeatmapFile   = "romaji.json"
)

// ErrMissingSokuon reports usage data without a count for small tsu.
var ErrMissingSokuon = errors.New("no usage count for ッ")

// KanaCounts maps single katakana to their usage count.
type KanaCounts map[string]int

// Romaji is one line of the romaji table.
type Romaji struct {
	Katakana string
	Hiragana string
	Romaji   string
}

// skipLine reports header and total lines.
func skipLine(fields []string) bool {
	return len(fields) == 0 || fields[0] == "" || fields[0] == "Katakana" || fields[0] == "Total"
}

// ReadKanaCounts reads "katakana<TAB>count" lines. A cell with several
// characters, such as シャ, sets the count of each character; later
// lines overwrite earlier ones.
func ReadKanaCounts(r io.Reader) (KanaCounts, error) {
	counts := make(KanaCounts)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if skipLine(fields) {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", lineNum, len(fields))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		for _, k := range fields[0] {
			counts[string(k)] = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading kana usage: %w", err)
	}
	if counts["ッ"] == 0 {
		return nil, ErrMissingSokuon
	}
	return counts, nil
}

// ReadRomaji reads "katakana<TAB>hiragana<TAB>romaji" lines.
func ReadRomaji(r io.Reader) ([]Romaji, error) {
	var rows []Romaji
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if skipLine(fields) {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", lineNum, len(fields))
		}
		rows = append(rows, Romaji{Katakana: fields[0], Hiragana: fields[1], Romaji: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading romaji table: %w", err)
	}
	return rows, nil
}

// LetterCounts adds the usage count of each kana to every letter of its
// romaji. Kana without a count are ignored.
func LetterCounts(counts KanaCounts, table []Romaji) map[string]int {
	letters := make(map[string]int)
	for _, row := range table {
		n, ok := counts[row.Katakana]
		if !ok {
			continue
		}
		for _, l := range row.Romaji {
			letters[string(l)] += n
		}
	}
	return letters
}

// Modifiers are the modifier key labels the heatmap viewer draws.
var Modifiers = []string{"left shift", "left ctrl", "❖", "alt", "altGr", "right ctrl", "right shift"}

// Heatmap is the document read by the keyboard heatmap viewer.
type Heatmap struct {
	Count     map[string]int `json:"count"`
	Modifiers []string       `json:"modifiers"`
}

// NewHeatmap wraps letter counts with the standard modifier labels.
func NewHeatmap(letters map[string]int) *Heatmap {
	return &Heatmap{Count: letters, Modifiers: append([]string(nil), Modifiers...)}
}

// Letters returns the counted letters, most used first.
func (h *Heatmap) Letters() []string {
	letters := make([]string, 0, len(h.Count))
	for l := range h.Count {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		if h.Count[letters[i]] != h.Count[letters[j]] {
			return h.Count[letters[i]] > h.Count[letters[j]]
		}
		return letters[i] < letters[j]
	})
	return letters
}

// Encode writes the heatmap as indented JSON. Letters are in key order.
func (h *Heatmap) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("encoding heatmap: %w", err)
	}
	return nil
}

// Build reads both tables from disk and returns the heatmap.
func Build(usagePath, romajiPath string) (*Heatmap, error) {
	usage, err := os.Open(usagePath)
	if err != nil {
		return nil, fmt.Errorf("opening kana usage: %w", err)
	}
	defer usage.Close()

	counts, err := ReadKanaCounts(usage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", usagePath, err)
	}

	romaji, err := os.Open(romajiPath)
	if err != nil {
		return nil, fmt.Errorf("opening romaji table: %w", err)
	}
	defer romaji.Close()

	table, err := ReadRomaji(romaji)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", romajiPath, err)
	}
	return NewHeatmap(LetterCounts(counts, table)), nil
}

// WriteFile writes the heatmap to path.
func (h *Heatmap) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := h.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
