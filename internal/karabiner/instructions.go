package karabiner

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/charmbracelet/lipgloss"
)

// AssetsSubdir is where Karabiner-Elements looks for complex modification
// files, relative to the user's home directory.
const AssetsSubdir = ".config/karabiner/assets/complex_modifications"

const instructionsTemplate = `Generated {{.Summary}} in {{.Output}}

Try running this to add the rules to Karabiner Elements:

{{command .CopyCommand}}

Then open 'Karabiner Elements', select 'Complex Modifications',
click 'Add predefined rule', scroll down to find the new
'{{title .Title}}'
block. {{.EnableHint}}
`

var instructions = template.Must(template.New("instructions").Funcs(styleFuncs(lipgloss.NewRenderer(io.Discard))).Parse(instructionsTemplate))

// styleFuncs highlights the command and title for the terminal r writes to.
func styleFuncs(r *lipgloss.Renderer) template.FuncMap {
	commandStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffe66d"))
	return template.FuncMap{
		"command": func(s string) string { return commandStyle.Render(s) },
		"title":   func(s string) string { return titleStyle.Render(s) },
	}
}

// Instructions describes what to tell the user after a document is written.
type Instructions struct {
	Title   string // document title as listed by Karabiner-Elements
	Output  string // path of the written file
	Summary string // e.g. "59 sub-rules"
	Rules   int    // number of rule groups in the document
}

// CopyCommand is the shell command installing the output file.
func (i Instructions) CopyCommand() string {
	return fmt.Sprintf("cp %s ~/%s/", i.Output, AssetsSubdir)
}

// EnableHint tells the user which buttons to press.
func (i Instructions) EnableHint() string {
	if i.Rules > 1 {
		return fmt.Sprintf("It holds %d rule groups. Click enable (or enable all).", i.Rules)
	}
	return "Click enable all."
}

// Render writes the instructions to w, styled only when w is a terminal.
func (i Instructions) Render(w io.Writer) error {
	t, err := instructions.Clone()
	if err != nil {
		return fmt.Errorf("rendering instructions: %w", err)
	}
	t.Funcs(styleFuncs(lipgloss.NewRenderer(w)))

	var buf bytes.Buffer
	if err := t.Execute(&buf, i); err != nil {
		return fmt.Errorf("rendering instructions: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
