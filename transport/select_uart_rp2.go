//go:build debug_uart && rp2040

package transport

// Exactly one transport backend may be selected per build; defining
// selected here and in select_usbcdc.go makes a double selection fail
// to link.
func selected() Transport { return NewDefaultUART() }
