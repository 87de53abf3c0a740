// Package logger holds the process-wide zerolog logger. Init configures it
// once at startup; Get hands it out everywhere else.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger at startup.
type Options struct {
	// Level names the minimum level to emit (trace, debug, info, warn,
	// error). Unknown or empty values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Leave false in
	// production so output stays line-delimited JSON.
	Pretty bool
	// Output receives the log stream. Defaults to os.Stdout.
	Output io.Writer
}

var (
	mu    sync.Mutex
	inst  *zerolog.Logger
	ready bool
)

var levelNames = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// Init builds the shared logger. Subsequent calls are no-ops and return the
// logger produced by the first call.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if ready {
		return *inst
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
	inst = &l
	ready = true
	return l
}

// Get returns the shared logger and panics when Init has not run yet. The
// panic surfaces wiring mistakes immediately instead of silently dropping
// log output.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get called before Init")
	}
	return *inst
}

// Reset discards the shared logger so tests can Init with fresh options.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	inst = nil
	ready = false
}

func parseLevel(s string) zerolog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}
