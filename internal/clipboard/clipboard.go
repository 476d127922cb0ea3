// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable reports a system without a usable clipboard tool.
var ErrUnavailable = errors.New("clipboard unavailable")

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
