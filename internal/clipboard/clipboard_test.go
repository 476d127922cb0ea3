package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteWithoutClipboard(t *testing.T) {
	if Available() {
		t.Skip("system clipboard present")
	}
	assert.ErrorIs(t, Write("cp a.json ~/"), ErrUnavailable)
}
