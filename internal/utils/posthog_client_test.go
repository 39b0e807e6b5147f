package utils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_NoKeyIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	wrapper := InitializePosthogClient("", logger)
	assert.False(t, wrapper.IsInitialized())
	assert.NotPanics(t, func() {
		wrapper.Enqueue("s-1", "import_committed", map[string]any{"inserted": 3})
		wrapper.Close()
	})

	var nilWrapper *PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
}
