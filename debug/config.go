package debug

// DefaultBufferSize caps one formatted line, terminator included, when
// Config.BufferSize is left zero.
const DefaultBufferSize = 256

// Config selects the facility's runtime features. The zero value is a
// valid minimal configuration: enabled, default buffer, bare message
// lines with only the level prefix.
type Config struct {
	// Disabled turns the whole facility off. New still validates its
	// arguments but returns a logger whose operations are silent no-ops
	// and whose backends are never initialized.
	Disabled bool

	// BufferSize is the capacity of the shared line buffer in bytes.
	// Output longer than this is truncated, terminator kept intact.
	BufferSize int

	// Prefix field toggles, rendered in this fixed order when enabled:
	// [sequence][timestamp][task].
	Sequence  bool
	Timestamp bool
	TaskName  bool

	// Modules reserves per-module filtering. The field is accepted but
	// no filtering logic consumes it yet.
	Modules []string
}

// DefaultConfig enables every prefix field with the default buffer.
var DefaultConfig = Config{
	BufferSize: DefaultBufferSize,
	Sequence:   true,
	Timestamp:  true,
	TaskName:   true,
}

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	return c
}
