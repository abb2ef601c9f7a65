//go:build debug_usbcdc && tinygo

package transport

func selected() Transport { return USBCDC{} }
