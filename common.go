package splogger

/*
Defines the core data types used by the logger:
  - basetype and a small set of typed aliases for clarity
  - Logger: the sink owner with its level and lifecycle state
  - Holder: the owner that keeps at most one live Logger

Also defines package-wide constants, enums and helper utilities:
  - levels, message types and lifecycle states
  - template titles and section labels
  - ANSI colors used for titles
  - normalization helpers
*/

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type LogLevel basetype // Logger levels (alias for byte)
type lgrState basetype
type MsgType basetype

// Logger writes fixed-template records to a single sink. A Logger is created
// by a Holder and is usable until the Holder destroys it; afterwards every
// message operation returns ErrUndefined.
type Logger struct {
	sync struct {
		statMtx sync.RWMutex // guards state
		rcrdMtx sync.Mutex   // keeps lines of one record together
	}
	sink     io.Writer    // standard output stream or owned file
	file     io.Closer    // owned file, nil for the standard stream
	fallbck  io.Writer    // receives internal errors that cannot be returned
	msgbuf   bytes.Buffer // buffer reused while building lines
	isStdOut bool
	colored  bool
	state    lgrState
	level    LogLevel
	curType  MsgType // message type used by Write (see Lvl)
}

// Holder owns at most one live Logger. The zero value is ready to use.
type Holder struct {
	mtx    sync.Mutex
	logger *Logger
}

// Option changes optional Logger settings at creation time.
type Option func(*config)

type config struct {
	stdout   io.Writer
	fallback io.Writer
	colored  bool
}

// MsgTypeMap is a fixed-size array with one entry per message type. Used for
// titles and title colors.
type MsgTypeMap [_MSG_MAX_for_checks_only]string

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Logger levels, from the strictest to the most permissive. Every level
	// admits the message types of the previous one. The trailing
	// _LVL_MAX_for_checks_only is used as an exclusive upper bound for
	// normalization checks.
	LVL_ERROR LogLevel = iota + 1
	LVL_WARNING_ERROR
	LVL_INFO_WARNING_ERROR
	LVL_DEBUG_INFO_WARNING_ERROR
	_LVL_MAX_for_checks_only
)

const (
	// Message types. MSG_NO_TITLE is used for raw messages that carry
	// neither a title nor call-site metadata.
	MSG_ERROR MsgType = iota
	MSG_WARNING
	MSG_INFO
	MSG_DEBUG
	MSG_NO_TITLE
	_MSG_MAX_for_checks_only
)

const (
	// Logger lifecycle states.
	_STATE_UNKNOWN lgrState = iota
	_STATE_ACTIVE
	_STATE_STOPPED
	_STATE_MAX_for_checks_only
)

const (
	DEFAULT_LOG_LEVEL = LVL_ERROR
	DEFAULT_FILE_MODE = 0644
	LEVEL_ENV_VAR     = "SPLOGGER_LEVEL"
)

const (
	// Record sections, each one is followed by a space and its value.
	SECTION_FILE = "- file:"
	SECTION_FUNC = "- function:"
	SECTION_LINE = "- line:"
	SECTION_MSG  = "- message:"
)

/////////////////////////////////////////////////////////////////////////////////////////

// Record titles per message type (MSG_NO_TITLE has none)
var MsgTitles = &MsgTypeMap{
	"---ERROR---",   //MSG_ERROR
	"---WARNING---", //MSG_WARNING
	"---INFO---",    //MSG_INFO
	"---DEBUG---",   //MSG_DEBUG
	"",              //MSG_NO_TITLE
}

// Level names accepted by ParseLevel and returned by LogLevel.String
var levelNames = [_LVL_MAX_for_checks_only]string{
	"unknown", //0
	"error",   //LVL_ERROR
	"warning", //LVL_WARNING_ERROR
	"info",    //LVL_INFO_WARNING_ERROR
	"debug",   //LVL_DEBUG_INFO_WARNING_ERROR
}

// Title colors for a terminal standard output (see WithColor)
var titleColors = [_MSG_MAX_for_checks_only][]color.Attribute{
	{color.FgHiRed, color.Bold}, //MSG_ERROR
	{color.FgYellow},            //MSG_WARNING
	{color.FgHiWhite},           //MSG_INFO
	{color.FgHiBlack},           //MSG_DEBUG
	nil,                         //MSG_NO_TITLE
}

// Minimal level that lets a message type through the gate. Zero means
// "always written".
var minLevels = [_MSG_MAX_for_checks_only]LogLevel{
	0,                            //MSG_ERROR
	LVL_WARNING_ERROR,            //MSG_WARNING
	LVL_INFO_WARNING_ERROR,       //MSG_INFO
	LVL_DEBUG_INFO_WARNING_ERROR, //MSG_DEBUG
	0,                            //MSG_NO_TITLE
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided lgrState is within the valid range
func normState(state lgrState) lgrState {
	return norm_byte(state, _STATE_MAX_for_checks_only, _STATE_UNKNOWN)
}

// Ensures a provided LogLevel is within the valid range (zero is not a level)
func normLevel(level LogLevel) LogLevel {
	if level == 0 {
		return DEFAULT_LOG_LEVEL
	}
	return norm_byte(level, _LVL_MAX_for_checks_only, DEFAULT_LOG_LEVEL)
}

// Ensures a provided MsgType is within the valid range
func normMsgType(mt MsgType) MsgType {
	return norm_byte(mt, _MSG_MAX_for_checks_only, MSG_NO_TITLE)
}

// Whether a message type carries call-site metadata
func (mt MsgType) hasMeta() bool {
	return mt != MSG_INFO && mt < MSG_NO_TITLE
}

// Whether the level lets the message type through the gate
func (level LogLevel) admits(mt MsgType) bool {
	mt = normMsgType(mt)
	if mt == MSG_DEBUG {
		return level == LVL_DEBUG_INFO_WARNING_ERROR
	}
	return level >= minLevels[mt]
}

// String returns the lowercase level name ("error", "warning", "info", "debug").
func (level LogLevel) String() string {
	if level >= _LVL_MAX_for_checks_only {
		return levelNames[0]
	}
	return levelNames[level]
}

// ParseLevel parses a level selector: a name ("error", "warning", "info",
// "debug", case-insensitive) or its number ("1".."4").
func ParseLevel(s string) (LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := LVL_ERROR; i < _LVL_MAX_for_checks_only; i++ {
		if s == levelNames[i] || (len(s) == 1 && s[0] == '0'+byte(i)) {
			return i, nil
		}
	}
	return 0, newInvalidArgument("unknown level `" + s + "`")
}

// Converts a panic value into a compact readable string (used when
// translating writer panics into errors)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
