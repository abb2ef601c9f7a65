//go:build !debug_baremetal && !debug_rtos

package port

// No port selected for this build; Init reports Unsupported.
func selected() Port { return nil }
