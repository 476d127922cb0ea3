package layout

import (
	"fmt"

	"github.com/peterjc/kana-chording-ke/internal/kana"
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/preview"
	"go.uber.org/zap"
)

// Flick is the cursor key kana chording layout.
type Flick struct {
	chart *kana.Chart
	opts  Options
}

// NewFlick creates the flick chording generator.
func NewFlick(opts Options) *Flick {
	return &Flick{chart: kana.FlickChart(), opts: opts}
}

// Name is the subcommand name.
func (f *Flick) Name() string { return "flick" }

// OutputName is the document file name.
func (f *Flick) OutputName() string { return "cursor-chording-flick-input.json" }

// Title is the document title.
func (f *Flick) Title() string { return "Flick-input like kana chording with cursor keys" }

// Validate checks the chart declaration.
func (f *Flick) Validate() error {
	return f.chart.Validate()
}

// Build writes one disabled rule per chord.
func (f *Flick) Build() (*karabiner.Document, error) {
	opts := kana.DefaultBuildOptions()
	opts.ThresholdMilliseconds = f.opts.ChordThreshold

	doc := karabiner.NewDocument(f.Title(), f.opts.Metadata)
	doc.Rules = f.chart.Build(opts)

	log := f.opts.logger()
	for _, r := range doc.Rules {
		log.Debug("chord", zap.String("rule", r.Description))
	}
	return doc, nil
}

// Summary counts the chord rules.
func (f *Flick) Summary(doc *karabiner.Document) string {
	return fmt.Sprintf("%d romaji mode sub-rules", len(doc.Rules))
}

// Grids shows the romaji sent by each row and cursor key, with the row note.
func (f *Flick) Grids() []preview.Grid {
	header := []string{"row"}
	for _, m := range kana.Modifiers() {
		header = append(header, m.String())
	}
	header = append(header, "note")

	rows := [][]string{header}
	for _, r := range f.chart.Rows() {
		line := []string{r.Label()}
		for _, m := range kana.Modifiers() {
			res, err := f.chart.Resolve(r.Key, m)
			if err != nil || res.Suppressed {
				line = append(line, "")
				continue
			}
			line = append(line, res.Symbol)
		}
		line = append(line, r.Note)
		rows = append(rows, line)
	}
	return []preview.Grid{{Title: f.Title(), Rows: rows}}
}
