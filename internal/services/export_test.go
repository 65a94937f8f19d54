package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"charboard/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.NewConsoleLogger(logger.ErrorLevel)
}

func TestExportService_SaveText(t *testing.T) {
	req := require.New(t)
	svc := NewExportService(testLogger())

	path := filepath.Join(t.TempDir(), "symbols.txt")
	f, err := os.Create(path)
	req.NoError(err)

	req.NoError(svc.SaveText(context.Background(), f, "→★"))

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("→★", string(data))
	req.Equal(2, utf8.RuneCount(data))
	req.Equal(6, len(data)) // both runes are 3 bytes in UTF-8
}

func TestExportService_EmptyBuilderProducesEmptyFile(t *testing.T) {
	req := require.New(t)
	svc := NewExportService(testLogger())

	path := filepath.Join(t.TempDir(), "empty.txt")
	f, err := os.Create(path)
	req.NoError(err)

	req.NoError(svc.SaveText(context.Background(), f, ""))

	info, err := os.Stat(path)
	req.NoError(err)
	req.Zero(info.Size())
}

func TestExportService_CancelledContext(t *testing.T) {
	req := require.New(t)
	svc := NewExportService(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, err := os.Create(filepath.Join(t.TempDir(), "never.txt"))
	req.NoError(err)

	err = svc.SaveText(ctx, f, "data")
	req.ErrorIs(err, context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error              { return nil }

func TestExportService_WriteFailure(t *testing.T) {
	svc := NewExportService(testLogger())
	err := svc.SaveText(context.Background(), failingWriter{}, "data")
	require.ErrorContains(t, err, "disk full")
}

func TestClipboardService_Unavailable(t *testing.T) {
	svc := NewClipboardService(nil, testLogger())
	err := svc.Copy("→")
	require.ErrorIs(t, err, ErrClipboardUnavailable)
}

func TestClipboardService_Copy(t *testing.T) {
	req := require.New(t)
	_ = test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	// test.Window.Clipboard returns a fresh clipboard on each call, so keep
	// one instance for both the service and the assertion.
	clip := w.Clipboard()
	svc := NewClipboardService(clip, testLogger())
	req.NoError(svc.Copy("→"))
	req.Equal("→", clip.Content())
}
