package debug

// Bounded append helpers for building one log line inside a fixed
// capacity. Every writer tracks the running length against max and never
// grows the destination past it.

func appendBounded(dst []byte, max int, s string) []byte {
	room := max - len(dst)
	if room <= 0 {
		return dst
	}
	if len(s) > room {
		s = s[:room]
	}
	return append(dst, s...)
}

// appendSeqField renders "[NNNNN]", zero-padded to at least five digits.
func appendSeqField(dst []byte, max int, v uint32) []byte {
	var digits [10]byte
	n := utoa(digits[:], v)
	dst = appendBounded(dst, max, "[")
	for pad := 5 - n; pad > 0; pad-- {
		dst = appendBounded(dst, max, "0")
	}
	dst = appendBounded(dst, max, string(digits[:n]))
	return appendBounded(dst, max, "]")
}

// appendUintField renders "[V]" without padding.
func appendUintField(dst []byte, max int, v uint32) []byte {
	var digits [10]byte
	n := utoa(digits[:], v)
	dst = appendBounded(dst, max, "[")
	dst = appendBounded(dst, max, string(digits[:n]))
	return appendBounded(dst, max, "]")
}

func appendStringField(dst []byte, max int, s string) []byte {
	dst = appendBounded(dst, max, "[")
	dst = appendBounded(dst, max, s)
	return appendBounded(dst, max, "]")
}

// terminate guarantees the line ends in CR-LF within max, overwriting
// the tail of a full buffer rather than growing past it.
func terminate(dst []byte, max int) []byte {
	if max < 2 {
		return dst
	}
	if len(dst) > max-2 {
		dst = dst[:max-2]
	}
	return append(dst, '\r', '\n')
}

// utoa writes the decimal digits of v into buf (len >= 10) and returns
// how many bytes it used, always at least one.
func utoa(buf []byte, v uint32) int {
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	n := copy(buf, buf[i:])
	return n
}
