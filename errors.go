package splogger

import (
	"strconv"

	"github.com/pkg/errors"
)

// Code identifies the kind of a logger failure. Callers that need to branch
// on the failure kind use CodeOf or errors.Is against the Err* sentinels.
type Code basetype

const (
	CodeSuccess Code = iota
	CodeAlreadyDefined
	CodeOutOfMemory
	CodeCannotOpenFile
	CodeUndefined
	CodeInvalidArgument
	CodeWriteFailed
	CodeUnknown // not a logger error
	_CODE_MAX_for_checks_only
)

const (
	// Error messages used across logger operations (used for testing).
	_ERROR_MESSAGE_SUCCESS          = "success"
	_ERROR_MESSAGE_ALREADY_DEFINED  = "logger is already defined"
	_ERROR_MESSAGE_OUT_OF_MEMORY    = "logger allocation failed"
	_ERROR_MESSAGE_CANNOT_OPEN_FILE = "cannot open log file"
	_ERROR_MESSAGE_UNDEFINED        = "logger is undefined"
	_ERROR_MESSAGE_INVALID_ARGUMENT = "invalid argument"
	_ERROR_MESSAGE_WRITE_FAILED     = "log write failed"
	_ERROR_MESSAGE_UNKNOWN          = "unknown error"
	_ERROR_MESSAGE_EMPTY_MSG        = "message is empty"
	_ERROR_MESSAGE_EMPTY_FILE       = "file name is empty"
	_ERROR_MESSAGE_EMPTY_FUNC       = "function name is empty"
	_ERROR_MESSAGE_NEGATIVE_LINE    = "line is negative"
	_ERROR_UNKNOWN_PANIC_TEXT       = "[no panic description]"
)

var codeTexts = [_CODE_MAX_for_checks_only]string{
	_ERROR_MESSAGE_SUCCESS,          //CodeSuccess
	_ERROR_MESSAGE_ALREADY_DEFINED,  //CodeAlreadyDefined
	_ERROR_MESSAGE_OUT_OF_MEMORY,    //CodeOutOfMemory
	_ERROR_MESSAGE_CANNOT_OPEN_FILE, //CodeCannotOpenFile
	_ERROR_MESSAGE_UNDEFINED,        //CodeUndefined
	_ERROR_MESSAGE_INVALID_ARGUMENT, //CodeInvalidArgument
	_ERROR_MESSAGE_WRITE_FAILED,     //CodeWriteFailed
	_ERROR_MESSAGE_UNKNOWN,          //CodeUnknown
}

var (
	// ErrAlreadyDefined is returned by Create when a Logger is already live.
	ErrAlreadyDefined error = &Error{code: CodeAlreadyDefined}

	// ErrOutOfMemory completes the taxonomy. Go reports allocation failure
	// as a fatal runtime error, so no operation returns it.
	ErrOutOfMemory error = &Error{code: CodeOutOfMemory}

	// ErrCannotOpenFile is returned by Create when the log file cannot be
	// opened for writing. The OS error is kept as the cause.
	ErrCannotOpenFile error = &Error{code: CodeCannotOpenFile}

	// ErrUndefined is returned by message operations when there is no live
	// Logger (never created, or already destroyed).
	ErrUndefined error = &Error{code: CodeUndefined}

	// ErrInvalidArgument means an empty message, file or function, a
	// negative line, or an unparsable level.
	ErrInvalidArgument error = &Error{code: CodeInvalidArgument}

	// ErrWriteFailed means the sink rejected a write. Lines written before
	// the failure stay in the sink.
	ErrWriteFailed error = &Error{code: CodeWriteFailed}
)

// Error is a logger failure of a specific kind with an optional cause.
type Error struct {
	code  Code
	cause error
}

func (e *Error) Error() string {
	text := e.code.String()
	if e.cause != nil {
		text += ": " + e.cause.Error()
	}
	return text
}

// Code returns the failure kind.
func (e *Error) Code() Code { return e.code }

// Unwrap returns the underlying failure (nil for a bare sentinel).
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a logger error of the same kind, so a wrapped
// failure matches its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// String returns the fixed description of the code.
func (c Code) String() string {
	if c >= _CODE_MAX_for_checks_only {
		return "code " + strconv.Itoa(int(c))
	}
	return codeTexts[c]
}

// CodeOf maps an error returned by this package to its Code. A nil error is
// CodeSuccess, a foreign error is CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

func withCode(code Code, cause error) error {
	return &Error{code: code, cause: cause}
}

func newInvalidArgument(detail string) error {
	return withCode(CodeInvalidArgument, errors.New(detail))
}
