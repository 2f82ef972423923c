package splogger

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Logger_Lvl(t *testing.T) {
	t.Run("for_255", func(t *testing.T) {
		l := &Logger{}
		for mt := range MsgType(255) {
			assert.Equal(t, normMsgType(mt), l.Lvl(mt).curType, fmt.Sprintf("Fail on %d", mt))
		}
	})
	t.Run("nil", func(t *testing.T) {
		var l *Logger
		assert.Nil(t, l.Lvl(MSG_ERROR))
	})
}

func Test_Logger_Write(t *testing.T) {
	out := &FakeWriter{}
	_, l := newTestLogger(t, LVL_INFO_WARNING_ERROR, out)

	t.Run("default_untitled", func(t *testing.T) {
		out.Clear()
		n, err := fmt.Fprintln(l, testlogstr)
		assert.NoError(t, err)
		assert.Equal(t, len(testlogstr)+1, n)
		assert.Equal(t, record("", "", "", 0, testlogstr), out.String())
	})
	t.Run("info", func(t *testing.T) {
		out.Clear()
		n, err := fmt.Fprintf(l.Lvl(MSG_INFO), "disk low: %d%%", 5)
		assert.NoError(t, err)
		assert.Equal(t, len("disk low: 5%"), n)
		assert.Equal(t, record("---INFO---", "", "", 0, "disk low: 5%"), out.String())
	})
	t.Run("warning_call_site", func(t *testing.T) {
		out.Clear()
		_, _, line, _ := runtime.Caller(0)
		_, err := fmt.Fprintf(l.Lvl(MSG_WARNING), "w")
		assert.NoError(t, err)
		assert.Equal(t, record("---WARNING---", "writer_test.go", "splogger.Test_Logger_Write.func3", line+1, "w"), out.String())
	})
	t.Run("direct_call_site", func(t *testing.T) {
		out.Clear()
		_, _, line, _ := runtime.Caller(0)
		_, err := l.Lvl(MSG_ERROR).Write([]byte("e\n"))
		assert.NoError(t, err)
		assert.Equal(t, record("---ERROR---", "writer_test.go", "splogger.Test_Logger_Write.func4", line+1, "e"), out.String())
	})
	t.Run("suppressed", func(t *testing.T) {
		out.Clear()
		n, err := l.Lvl(MSG_DEBUG).Write([]byte("hidden"))
		assert.NoError(t, err)
		assert.Equal(t, len("hidden"), n)
		assert.Empty(t, out.buffer)
	})
	t.Run("nil_message", func(t *testing.T) {
		out.Clear()
		n, err := l.Lvl(MSG_ERROR).Write(nil)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, out.buffer)
	})
	t.Run("newline_only", func(t *testing.T) {
		out.Clear()
		n, err := l.Lvl(MSG_NO_TITLE).Write([]byte("\n"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Zero(t, n)
		assert.Empty(t, out.buffer)
	})
	t.Run("nil_logger", func(t *testing.T) {
		var nl *Logger
		n, err := fmt.Fprint(nl.Lvl(MSG_ERROR), "x")
		assert.ErrorIs(t, err, ErrUndefined)
		assert.Zero(t, n)
	})
}

func Test_Logger_Write_WriteFailed(t *testing.T) {
	var h Holder
	l, err := h.Create("", LVL_ERROR, WithStdout(&ErrorWriter{}))
	assert.NoError(t, err)
	defer h.Destroy()
	n, err := fmt.Fprint(l, "x")
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Zero(t, n)
}
