package splogger

// Process-wide logger. The functions below keep one Logger for the whole
// program in an unexported Holder; code that prefers an explicit owner uses
// its own Holder instead.
var std Holder

// Create makes the process-wide Logger (see Holder.Create).
//
//	func main() {
//	    if err := splogger.Create("", splogger.LVL_INFO_WARNING_ERROR); err != nil {
//	        ...
//	    }
//	    defer splogger.Destroy()
//	    ...
//	}
func Create(path string, level LogLevel, opts ...Option) error {
	_, err := std.Create(path, level, opts...)
	return err
}

// Destroy releases the process-wide Logger (see Holder.Destroy).
func Destroy() {
	std.Destroy()
}

// Default returns the process-wide Logger or nil if there is none.
func Default() *Logger {
	return std.Logger()
}

// PrintError calls PrintError of the process-wide Logger.
func PrintError(msg, file, function string, line int) error {
	return std.Logger().PrintError(msg, file, function, line)
}

// PrintWarning calls PrintWarning of the process-wide Logger.
func PrintWarning(msg, file, function string, line int) error {
	return std.Logger().PrintWarning(msg, file, function, line)
}

// PrintInfo calls PrintInfo of the process-wide Logger.
func PrintInfo(msg string) error {
	return std.Logger().PrintInfo(msg)
}

// PrintDebug calls PrintDebug of the process-wide Logger.
func PrintDebug(msg, file, function string, line int) error {
	return std.Logger().PrintDebug(msg, file, function, line)
}

// PrintMessage calls PrintMessage of the process-wide Logger.
func PrintMessage(msg string) error {
	return std.Logger().PrintMessage(msg)
}
