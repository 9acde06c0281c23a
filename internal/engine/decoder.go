package engine

import (
	"context"
	"fmt"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/scene"
)

// decodeScene parses and decodes one scene text.
func decodeScene(ctx context.Context, filename string, text []byte) (*scene.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding scene file.", "path", filename, "bytes", len(text))

	s, err := scene.Load(filename, text)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", filename, err)
	}

	logger.Debug("Successfully decoded scene file.", "path", filename, "layers", len(s.Layers), "vars", len(s.Vars), "defs", len(s.Defs))
	return s, nil
}
