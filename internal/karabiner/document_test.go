package karabiner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := NewDocument("Sample", Metadata{
		Maintainers: []string{"peterjc"},
		Author:      "Peter J. A. Cock",
		Homepage:    "https://github.com/peterjc/kana-chording-ke",
		Repo:        "https://github.com/peterjc/kana-chording-ke",
	})
	doc.AddRule("Chords", []Manipulator{
		{
			Type:       TypeBasic,
			From:       FromChord("k", "left_arrow"),
			To:         Keys("k", "i"),
			Conditions: []Condition{InputSourceIf(Language("^ja$"))},
			Parameters: Parameters{ParamSimultaneousThreshold: 100},
		},
		{
			Type:        TypeBasic,
			From:        FromKeyWith("n", "shift"),
			To:          []ToEvent{Key("international1")},
			Description: "shift-n to ろ",
		},
	})
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := Marshal(doc)
	require.NoError(t, err)

	got, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("document changed after round trip (-want +got):\n%s", diff)
	}
}

func TestMarshalKeepsKanaLiteral(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, string(data), "shift-n to ろ")
	assert.NotContains(t, string(data), `\u`)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
}

func TestMarshalIsDeterministic(t *testing.T) {
	first, err := Marshal(sampleDocument())
	require.NoError(t, err)
	second, err := Marshal(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestManipulatorCount(t *testing.T) {
	doc := sampleDocument()
	doc.AddRule("More", []Manipulator{{Type: TypeBasic, From: FromKey("a"), To: Keys("b")}})

	assert.Equal(t, 3, doc.ManipulatorCount())
}

func TestWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 10000), 0644))

	doc := sampleDocument()
	require.NoError(t, WriteFile(path, doc))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestWriteFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := WriteFile(path, sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
