package splogger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////////////////
/*
Severity-gated message operations.

Every operation first checks that the Logger is live (ErrUndefined) and that
its arguments are present (ErrInvalidArgument), and only then consults the
level. So a call that the level would suppress still reports bad arguments.

Visibility by level:
  - errors and raw messages are always written
  - warnings need LVL_WARNING_ERROR or above
  - info needs LVL_INFO_WARNING_ERROR or above
  - debug needs LVL_DEBUG_INFO_WARNING_ERROR

A suppressed message is not an error: nil is returned and nothing is written.
*/

// printGated is the common path of all Print* operations.
func (l *Logger) printGated(mt MsgType, msg, file, function string, line int) error {
	if !l.IsActive() {
		return ErrUndefined
	}
	withMeta := mt.hasMeta()
	if err := checkArgs(withMeta, msg, file, function, line); err != nil {
		return err
	}
	if !l.level.admits(mt) {
		return nil
	}
	return l.printGeneric(mt, msg, withMeta, file, function, line)
}

// PrintError writes an error record at any level:
//
//	---ERROR---
//	- file: <file>
//	- function: <function>
//	- line: <line>
//	- message: <msg>
func (l *Logger) PrintError(msg, file, function string, line int) error {
	return l.printGated(MSG_ERROR, msg, file, function, line)
}

// PrintWarning writes a warning record (same layout as PrintError with the
// ---WARNING--- title) if the level is LVL_WARNING_ERROR or above.
func (l *Logger) PrintWarning(msg, file, function string, line int) error {
	return l.printGated(MSG_WARNING, msg, file, function, line)
}

// PrintInfo writes an info record without call-site metadata if the level is
// LVL_INFO_WARNING_ERROR or above:
//
//	---INFO---
//	- message: <msg>
func (l *Logger) PrintInfo(msg string) error {
	return l.printGated(MSG_INFO, msg, "", "", 0)
}

// PrintDebug writes a debug record (same layout as PrintError with the
// ---DEBUG--- title) only at LVL_DEBUG_INFO_WARNING_ERROR.
func (l *Logger) PrintDebug(msg, file, function string, line int) error {
	return l.printGated(MSG_DEBUG, msg, file, function, line)
}

// PrintMessage writes the raw "- message: <msg>" line at any level. An empty
// msg is an absent message and fails with ErrInvalidArgument, like in every
// other Print* operation.
func (l *Logger) PrintMessage(msg string) error {
	return l.printGated(MSG_NO_TITLE, msg, "", "", 0)
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
Call-site helpers. They take the file (base name), function and line of
their caller from the runtime and delegate to the Print* operations, so

	logger.Warning("disk is almost full")

is the same as PrintWarning with the metadata filled in by hand.
*/

const _UNKNOWN_CALLER = "???"

// callSite returns the file base name, the package-qualified function name
// and the line of the frame skip levels above callSite's caller (0 is the
// caller itself). Frames of packages fmt and io are passed over, so a
// Logger used through fmt.Fprintf reports the code that called Fprintf.
func callSite(skip int) (file, function string, line int) {
	var pcs [16]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for n > 0 {
		frame, more := frames.Next()
		if more && isWriterPlumbing(frame.Function) {
			continue
		}
		function = frame.Function
		if len(function) == 0 {
			function = _UNKNOWN_CALLER
		}
		// strip package path, keep package.Function
		if i := strings.LastIndex(function, "/"); i >= 0 && i+1 < len(function) {
			function = function[i+1:]
		}
		return filepath.Base(frame.File), function, frame.Line
	}
	return _UNKNOWN_CALLER, _UNKNOWN_CALLER, 0
}

func isWriterPlumbing(function string) bool {
	return strings.HasPrefix(function, "fmt.") || strings.HasPrefix(function, "io.")
}

// printHere delegates a message of the given type to the gate with the
// metadata of the caller skip frames above the exported helper.
func (l *Logger) printHere(skip int, mt MsgType, msg string) error {
	if !mt.hasMeta() {
		return l.printGated(mt, msg, "", "", 0)
	}
	file, function, line := callSite(skip + 1)
	return l.printGated(mt, msg, file, function, line)
}

// Error logs msg as PrintError with the caller's call site.
func (l *Logger) Error(msg string) error {
	return l.printHere(1, MSG_ERROR, msg)
}

// Errorf formats according to a format specifier and logs the result as Error.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.printHere(1, MSG_ERROR, fmt.Sprintf(format, args...))
}

// Warning logs msg as PrintWarning with the caller's call site.
func (l *Logger) Warning(msg string) error {
	return l.printHere(1, MSG_WARNING, msg)
}

// Warningf formats according to a format specifier and logs the result as Warning.
func (l *Logger) Warningf(format string, args ...any) error {
	return l.printHere(1, MSG_WARNING, fmt.Sprintf(format, args...))
}

// Info is PrintInfo; it exists for symmetry with the other helpers.
func (l *Logger) Info(msg string) error {
	return l.PrintInfo(msg)
}

// Infof formats according to a format specifier and logs the result as Info.
func (l *Logger) Infof(format string, args ...any) error {
	return l.PrintInfo(fmt.Sprintf(format, args...))
}

// Debug logs msg as PrintDebug with the caller's call site.
func (l *Logger) Debug(msg string) error {
	return l.printHere(1, MSG_DEBUG, msg)
}

// Debugf formats according to a format specifier and logs the result as Debug.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.printHere(1, MSG_DEBUG, fmt.Sprintf(format, args...))
}

// Message is PrintMessage.
func (l *Logger) Message(msg string) error {
	return l.PrintMessage(msg)
}

// Messagef formats according to a format specifier and logs the result as Message.
func (l *Logger) Messagef(format string, args ...any) error {
	return l.PrintMessage(fmt.Sprintf(format, args...))
}
