//go:build debug_rtos

package port

func selected() Port { return &RTOS{} }
