//go:build debug_baremetal

package port

// Exactly one port backend may be selected per build; defining selected
// here and in select_rtos.go makes a double selection fail to link.
func selected() Port { return &BareMetal{} }
