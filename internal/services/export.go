package services

import (
	"context"
	"fmt"
	"io"

	"charboard/internal/logger"

	"github.com/google/uuid"
)

// ExportService writes the builder buffer to a destination chosen by the
// user. Output is the raw UTF-8 text, nothing more: an empty buffer produces
// an empty file.
type ExportService struct {
	log logger.Logger
}

func NewExportService(log logger.Logger) *ExportService {
	return &ExportService{log: log}
}

// SaveText writes text to w and closes it. The export ID only exists to tie
// log lines of one save together.
func (s *ExportService) SaveText(ctx context.Context, w io.WriteCloser, text string) error {
	exportID := uuid.New()

	if err := ctx.Err(); err != nil {
		_ = w.Close()
		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		_ = w.Close()
		s.log.Error("export", err, map[string]interface{}{
			"export_id": exportID.String(),
		})
		return fmt.Errorf("writing export: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}

	s.log.Info("export", "builder saved", map[string]interface{}{
		"export_id": exportID.String(),
		"bytes":     len(text),
	})
	return nil
}
