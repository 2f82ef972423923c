package splogger

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

/*
Converts messages into records and writes them to the sink:
  - argument checks shared by all message operations
  - the generic record writer used by every Print* operation
  - line-by-line writes with error and panic reporting
*/

// checkArgs validates a message and, when withMeta is set, its call-site
// metadata. Empty strings stand for absent arguments.
func checkArgs(withMeta bool, msg, file, function string, line int) error {
	switch {
	case len(msg) == 0:
		return newInvalidArgument(_ERROR_MESSAGE_EMPTY_MSG)
	case !withMeta:
		return nil
	case len(file) == 0:
		return newInvalidArgument(_ERROR_MESSAGE_EMPTY_FILE)
	case len(function) == 0:
		return newInvalidArgument(_ERROR_MESSAGE_EMPTY_FUNC)
	case line < 0:
		return newInvalidArgument(_ERROR_MESSAGE_NEGATIVE_LINE)
	}
	return nil
}

// printGeneric writes one record: the title of the message type (if any),
// the call-site sections when withMeta is set and the type is titled, and
// the message section. Every line is a separate write; the first failing
// write stops the record and ErrWriteFailed is returned, lines written
// before it stay in the sink.
//
// A panic in the sink writer is recovered and reported as ErrWriteFailed.
func (l *Logger) printGeneric(mt MsgType, msg string, withMeta bool, file, function string, line int) (err error) {
	if !l.IsActive() {
		return ErrUndefined
	}
	if err = checkArgs(withMeta, msg, file, function, line); err != nil {
		return err
	}
	l.sync.rcrdMtx.Lock()
	defer l.sync.rcrdMtx.Unlock()
	// destroyed while waiting for the record lock
	if !l.IsActive() {
		return ErrUndefined
	}
	defer func() {
		if r := recover(); r != nil {
			err = withCode(CodeWriteFailed, errors.New("panic writing log to output"+panicDesc(r)))
		}
	}()
	mt = normMsgType(mt)
	if title := MsgTitles[mt]; len(title) > 0 {
		if l.colored {
			title = coloredTitle(mt)
		}
		if err = l.writeLine(title); err != nil {
			return err
		}
	}
	if withMeta && mt != MSG_NO_TITLE {
		if err = l.writeSection(SECTION_FILE, file); err != nil {
			return err
		}
		if err = l.writeSection(SECTION_FUNC, function); err != nil {
			return err
		}
		if err = l.writeSection(SECTION_LINE, strconv.Itoa(line)); err != nil {
			return err
		}
	}
	return l.writeSection(SECTION_MSG, msg)
}

// writeSection writes "<section> <value>\n".
func (l *Logger) writeSection(section, value string) error {
	return l.writeLine(section + " " + value)
}

// writeLine builds a newline-terminated line in the reused buffer and writes
// it to the sink. A short write is a failure.
func (l *Logger) writeLine(s string) error {
	l.msgbuf.Reset()
	l.msgbuf.WriteString(s)
	l.msgbuf.WriteByte('\n')
	n, e := l.msgbuf.WriteTo(l.sink)
	if e != nil {
		return withCode(CodeWriteFailed,
			errors.Wrap(e, "error writing log to output ("+strconv.FormatInt(n, 10)+" bytes written)"))
	}
	return nil
}

// coloredTitle returns the title of a message type wrapped into ANSI color
// sequences. Colors are forced on: the caller has already checked that the
// sink is a terminal.
func coloredTitle(mt MsgType) string {
	mt = normMsgType(mt)
	c := color.New(titleColors[mt]...)
	c.EnableColor()
	return c.Sprint(MsgTitles[mt])
}
