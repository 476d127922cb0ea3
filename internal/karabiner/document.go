package karabiner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// NewDocument creates an empty document carrying meta.
func NewDocument(title string, meta Metadata) *Document {
	return &Document{
		Title:       title,
		Maintainers: meta.Maintainers,
		Author:      meta.Author,
		Homepage:    meta.Homepage,
		Repo:        meta.Repo,
		Rules:       []Rule{},
	}
}

// AddRule appends a rule holding manipulators.
func (d *Document) AddRule(description string, manipulators []Manipulator) {
	d.Rules = append(d.Rules, Rule{Description: description, Manipulators: manipulators})
}

// ManipulatorCount returns the number of manipulators across all rules.
func (d *Document) ManipulatorCount() int {
	n := 0
	for _, r := range d.Rules {
		n += len(r.Manipulators)
	}
	return n
}

// Marshal renders the document as indented JSON with a trailing newline.
// Kana and punctuation are written literally rather than \u escaped.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the document to w.
func Encode(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding document %q: %w", d.Title, err)
	}
	return nil
}

// Decode reads a document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &d, nil
}

// ReadFile loads a document from path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile renders d and writes it to path, truncating any existing file.
// The write is a plain overwrite: there is no temporary file or backup.
func WriteFile(path string, d *Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
