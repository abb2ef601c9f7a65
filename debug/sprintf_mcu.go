//go:build rp2040

package debug

// Minimal printf subset for MCU builds, where pulling in fmt costs
// flash and RAM the target may not have. Supports %v %s %d %x %t and
// %%; width and precision are parsed and ignored. Unknown verbs render
// the argument with %v rules.

func sprintf(format string, a ...any) string {
	out := make([]byte, 0, len(format)+16)
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			out = append(out, '%')
			i++
			continue
		}
		// Skip flags, width and precision.
		for i < len(format) && (format[i] == '-' || format[i] == '+' ||
			format[i] == '0' || format[i] == '.' ||
			(format[i] >= '1' && format[i] <= '9')) {
			i++
		}
		if i >= len(format) {
			out = append(out, '%')
			break
		}
		verb := format[i]
		i++
		if ai >= len(a) {
			out = append(out, '%', verb)
			continue
		}
		out = appendArg(out, a[ai], verb)
		ai++
	}
	return string(out)
}

func appendArg(out []byte, v any, verb byte) []byte {
	base := 10
	if verb == 'x' || verb == 'X' {
		base = 16
	}
	switch x := v.(type) {
	case string:
		return append(out, x...)
	case []byte:
		return append(out, x...)
	case bool:
		if x {
			return append(out, "true"...)
		}
		return append(out, "false"...)
	case int:
		return appendInt(out, int64(x), base)
	case int8:
		return appendInt(out, int64(x), base)
	case int16:
		return appendInt(out, int64(x), base)
	case int32:
		return appendInt(out, int64(x), base)
	case int64:
		return appendInt(out, x, base)
	case uint:
		return appendUint64(out, uint64(x), base)
	case uint8:
		return appendUint64(out, uint64(x), base)
	case uint16:
		return appendUint64(out, uint64(x), base)
	case uint32:
		return appendUint64(out, uint64(x), base)
	case uint64:
		return appendUint64(out, x, base)
	case error:
		return append(out, x.Error()...)
	}
	return append(out, "<?>"...)
}

func appendInt(out []byte, v int64, base int) []byte {
	if v < 0 {
		out = append(out, '-')
		v = -v
	}
	return appendUint64(out, uint64(v), base)
}

func appendUint64(out []byte, v uint64, base int) []byte {
	const digits = "0123456789abcdef"
	var buf [20]byte
	i := len(buf)
	b := uint64(base)
	for {
		i--
		buf[i] = digits[v%b]
		v /= b
		if v == 0 {
			break
		}
	}
	return append(out, buf[i:]...)
}
