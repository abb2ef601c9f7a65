//go:build !rp2040

package debug

import "fmt"

func sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }
