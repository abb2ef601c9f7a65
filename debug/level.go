package debug

// Level is the severity of a log message. Lower values are more severe;
// a message is emitted only when its level is at or below the logger's
// threshold.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the short label used in the line prefix. Unrecognized
// values render as "LOG".
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	}
	return "LOG"
}

// ParseLevel maps a label to its Level, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	switch lowerASCII(s) {
	case "error":
		return LevelError, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	}
	return LevelDebug, false
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
