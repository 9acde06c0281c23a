// Package harness runs an App against scene text for integration tests.
package harness

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vk/livegrid/internal/app"
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/testutil"
)

// Result holds the outcomes of an integration test run.
type Result struct {
	LogOutput string
	Err       error
	Frames    []*draw.Frame
}

// Recorder is a Drawer that keeps every frame.
type Recorder struct {
	mu     sync.Mutex
	frames []*draw.Frame
}

func (r *Recorder) Draw(_ context.Context, f *draw.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

// Frames returns a copy of the frames drawn so far.
func (r *Recorder) Frames() []*draw.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*draw.Frame(nil), r.frames...)
}

// WriteScene writes text to name inside a fresh temporary directory.
func WriteScene(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("failed to write scene file: %v", err)
	}
	return path
}

// Run writes the scene and runs the app for cfg.Frames frames. ScenePath is
// filled in; zero FPS runs as fast as the ticker allows.
func Run(t *testing.T, name, text string, cfg app.Config) *Result {
	t.Helper()

	cfg.ScenePath = WriteScene(t, name, text)
	if cfg.FPS == 0 {
		cfg.FPS = 1000
	}
	cfg.LogLevel = "debug"
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	logs := &testutil.LogBuffer{}
	rec := &Recorder{}
	runErr := app.NewApp(logs, appConfig, rec).Run(context.Background())

	if os.Getenv("LIVEGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
	return &Result{LogOutput: logs.String(), Err: runErr, Frames: rec.Frames()}
}
