// A level-gated logging package for Go. Writes fixed-template records with
// optional call-site metadata to a file or to the standard output stream.
package splogger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Sets the fallback output used to report internal errors (for example a
// failed close of the log file on Destroy), io.Discard is used instead of nil
// to silently drop fallback messages.
func WithFallback(f io.Writer) Option {
	return func(c *config) {
		c.fallback = f
	}
}

// Enables ANSI colored titles. Takes effect only when the Logger writes to
// the standard output stream and that stream is a terminal, so files never
// receive escape sequences.
func WithColor() Option {
	return func(c *config) {
		c.colored = true
	}
}

// Replaces the standard output stream used when no file path is given. The
// writer is never closed by the Logger.
func WithStdout(w io.Writer) Option {
	return func(c *config) {
		c.stdout = w
	}
}

// Create makes the Logger owned by the holder.
//   - path: log file to create or truncate; empty means the standard output stream
//   - level: maximal verbosity, out of range values fall back to [DEFAULT_LOG_LEVEL]
//
// Fails with ErrAlreadyDefined if the holder already has a live Logger and with
// ErrCannotOpenFile if the file cannot be opened (no Logger is left behind).
//
// Preferred usage example:
//
//	var h splogger.Holder
//	logger, err := h.Create("", splogger.LVL_INFO_WARNING_ERROR)
//	if err != nil {
//	    ...
//	}
//	defer h.Destroy()
func (h *Holder) Create(path string, level LogLevel, opts ...Option) (*Logger, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.logger != nil {
		return nil, ErrAlreadyDefined
	}
	cfg := config{stdout: os.Stdout, fallback: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stdout == nil {
		cfg.stdout = os.Stdout
	}
	l := &Logger{
		level:   normLevel(level),
		curType: MSG_NO_TITLE,
	}
	l.setFallback(cfg.fallback)
	if path == "" {
		l.sink = cfg.stdout
		l.isStdOut = true
		l.colored = cfg.colored && isTerminal(cfg.stdout)
	} else {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DEFAULT_FILE_MODE)
		if err != nil {
			return nil, withCode(CodeCannotOpenFile, errors.WithStack(err))
		}
		l.sink = f
		l.file = f
	}
	l.setState(_STATE_ACTIVE)
	h.logger = l
	return l, nil
}

// Destroy releases the live Logger: an owned file is closed, the standard
// output stream is left open. The destroyed Logger answers ErrUndefined to
// every message operation and a new one may be created. No-op if there is
// no live Logger.
func (h *Holder) Destroy() {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.logger == nil {
		return
	}
	h.logger.stop()
	h.logger = nil
}

// Logger returns the live Logger or nil.
func (h *Holder) Logger() *Logger {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.logger
}

// Moves the Logger to the stopped state and closes an owned file. Waits for
// a record being written to be finished.
func (l *Logger) stop() {
	l.sync.rcrdMtx.Lock()
	defer l.sync.rcrdMtx.Unlock()
	l.setState(_STATE_STOPPED)
	if !l.isStdOut && l.file != nil {
		if err := l.file.Close(); err != nil {
			l.handleLogWriteError("error closing log file: " + err.Error())
		}
		l.file = nil
	}
}

// setState sets the logger state with write locking; normalizes the provided
// state before assignment.
func (l *Logger) setState(newstate lgrState) {
	l.sync.statMtx.Lock()
	defer l.sync.statMtx.Unlock()
	l.state = normState(newstate)
}

func (l *Logger) setFallback(f io.Writer) {
	if f != nil {
		l.fallbck = f
	} else {
		l.fallbck = io.Discard
	}
}

// True if the Logger is live (created and not destroyed yet). Safe to call
// on a nil Logger.
func (l *Logger) IsActive() bool {
	if l == nil {
		return false
	}
	l.sync.statMtx.RLock()
	defer l.sync.statMtx.RUnlock()
	return l.state == _STATE_ACTIVE
}

// Level returns the level the Logger was created with.
func (l *Logger) Level() LogLevel {
	return l.level
}

// IsStdOut reports whether the Logger writes to the standard output stream
// (or its WithStdout replacement) rather than to an owned file.
func (l *Logger) IsStdOut() bool {
	return l.isStdOut
}

// handleLogWriteError writes a human-readable error message to the fallback
// writer.
func (l *Logger) handleLogWriteError(errormsg string) {
	if l.fallbck != nil {
		l.fallbck.Write([]byte(errormsg + "\n"))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
