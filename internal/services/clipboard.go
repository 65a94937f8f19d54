package services

import (
	"errors"

	"charboard/internal/logger"

	"fyne.io/fyne/v2"
)

// ErrClipboardUnavailable is returned when no platform clipboard is attached,
// e.g. when the window has not finished initializing.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ClipboardService forwards symbol characters and builder text to the
// platform clipboard.
type ClipboardService struct {
	clipboard fyne.Clipboard
	log       logger.Logger
}

func NewClipboardService(clipboard fyne.Clipboard, log logger.Logger) *ClipboardService {
	return &ClipboardService{
		clipboard: clipboard,
		log:       log,
	}
}

// Copy places text on the clipboard, replacing the previous contents.
func (s *ClipboardService) Copy(text string) error {
	if s.clipboard == nil {
		return ErrClipboardUnavailable
	}

	s.clipboard.SetContent(text)
	s.log.Debug("clipboard", "content copied", map[string]interface{}{
		"length": len(text),
	})
	return nil
}
