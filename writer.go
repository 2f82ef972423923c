package splogger

import "strings"

/*********************************************************************************
io.Writer interface implementation

The Logger implements io.Writer so it can be used with fmt.Fprintf and
other formatting helpers. The semantics are:
 - Lvl(mt) sets the message type used by subsequent Write calls
   (MSG_NO_TITLE by default).
 - Write(p) passes p, without one trailing newline, through the same gate
   as the Print* operation of that type. Titled types with call-site
   metadata get the metadata of the code calling Write (or fmt.Fprintf).

This allows patterns like:
  fmt.Fprintf(logger.Lvl(MSG_WARNING), "disk low: %d%%", percent)
But remember that Lvl changes the Logger for every caller!
*/

// Lvl sets the message type used by Write and returns the same Logger for
// convenient chaining.
func (l *Logger) Lvl(mt MsgType) *Logger {
	if l == nil {
		return nil
	}
	l.curType = normMsgType(mt)
	return l
}

// Write implements io.Writer. On success it returns n=len(p) and err==nil,
// a message suppressed by the level is a success too. A nil or empty
// payload is a zero-length write with no error; a payload that is only a
// newline is an empty message and fails with ErrInvalidArgument.
func (l *Logger) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l == nil {
		return 0, ErrUndefined
	}
	msg := strings.TrimSuffix(string(p), "\n")
	if err = l.printHere(1, l.curType, msg); err == nil {
		n = len(p)
	}
	return
}
