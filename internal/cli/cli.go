package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/livegrid/internal/app"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/modules/remote"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("livegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
livegrid - Live-coded procedural drawings from a hot-reloaded scene file.

Usage:
  livegrid [options] [SCENE_PATH]

Arguments:
  SCENE_PATH
    Path to a .hcl, .yaml or .yml scene, or a directory holding exactly one.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the scene file or directory.")
	cFlag := flagSet.String("c", "", "Path to the scene file or directory (shorthand).")
	fpsFlag := flagSet.Float64("fps", 60, "Frames per second.")
	framesFlag := flagSet.Uint64("frames", 0, "Stop after this many frames. 0 runs until interrupted.")
	modeFlag := flagSet.String("mode", "lenient", "Evaluation error policy. Options: 'strict' or 'lenient'.")
	transitionFlag := flagSet.Int("transition-frames", 30, "Frames to blend over after a reload. 0 switches at once.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxInputFlag := flagSet.Int("max-input-per-tick", 32, "Most remote messages applied per frame.")
	remoteURLFlag := flagSet.String("remote-url", "", "socket.io server to receive named inputs from. Empty disables it.")
	remoteEventFlag := flagSet.String("remote-event", remote.DefaultEvent, "socket.io event carrying input payloads.")
	watchFlag := flagSet.Bool("watch", false, "Use file system notifications instead of polling every frame.")
	keysFlag := flagSet.String("keys", "", "Comma separated keys exposed as key_<k> variables. Only windowed drawers report key state.")
	windowFlag := flagSet.String("window", "800x600", "Size reported as window_w and window_h when the drawer has no window.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scene path determined.", "path", path)

	if path == "" {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	mode, err := livecode.ParseMode(*modeFlag)
	if err != nil {
		return nil, false, usageError("invalid mode: %v", err)
	}
	if *fpsFlag <= 0 {
		return nil, false, usageError("invalid fps: must be greater than zero")
	}
	if *maxInputFlag <= 0 {
		return nil, false, usageError("invalid max-input-per-tick: must be greater than zero")
	}

	var keys []string
	for _, k := range strings.Split(*keysFlag, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	windowW, windowH, err := parseSize(*windowFlag)
	if err != nil {
		return nil, false, usageError("invalid window: %v", err)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ScenePath:        path,
		FPS:              *fpsFlag,
		Frames:           *framesFlag,
		Mode:             mode,
		TransitionFrames: *transitionFlag,
		LogFormat:        *logFormatFlag,
		LogLevel:         *logLevelFlag,
		MaxInputPerTick:  *maxInputFlag,
		RemoteURL:        *remoteURLFlag,
		RemoteEvent:      *remoteEventFlag,
		Watch:            *watchFlag,
		Keys:             keys,
		WindowW:          windowW,
		WindowH:          windowH,
		HealthcheckPort:  *healthPortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseSize reads a WIDTHxHEIGHT pair such as 800x600.
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not WIDTHxHEIGHT", s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(hs), 64); err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q must be positive", s)
	}
	return w, h, nil
}
