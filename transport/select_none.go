//go:build !debug_uart && !debug_usbcdc

package transport

// No transport selected for this build; Init reports Unsupported.
func selected() Transport { return nil }
