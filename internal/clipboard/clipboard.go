// Package clipboard copies dashboard text (notes, a day's agenda) to the
// system clipboard.
package clipboard

import (
	"golang.design/x/clipboard"

	"github.com/zhubert/studdy/internal/errors"
	"github.com/zhubert/studdy/internal/logger"
)

// writer is swapped out in tests so they never touch the real clipboard.
var writer = systemWrite

var initialized bool

// SetWriter replaces the function that writes to the clipboard.
func SetWriter(f func(text string) error) {
	writer = f
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	writer = systemWrite
}

// Init initializes the system clipboard. Safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return errors.E(errors.Op("clipboard.Init"), errors.KindClipboard, err)
	}
	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

func systemWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteText places text on the clipboard. Empty text is rejected so a
// stray key press doesn't clear whatever the user copied last.
func WriteText(text string) error {
	if text == "" {
		return errors.E(errors.Op("clipboard.WriteText"), errors.KindInvalid, "nothing to copy")
	}
	if err := writer(text); err != nil {
		return err
	}
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}
