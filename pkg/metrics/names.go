package metrics

// Metric names. Each provider emits exactly one of these.
const (
	CPUUsage     = "sentry_sys_cpu_usage"
	LoadAverage  = "sentry_sys_load_average"
	MemUsage     = "sentry_sys_mem_usage"
	DiskUsage    = "sentry_sys_disk_usage"
	NetBytesSent = "sentry_sys_net_bytes_sent"
	NetBytesRecv = "sentry_sys_net_bytes_recv"
	TCPStatus    = "sentry_sys_tcp_status"
)

// Tag keys.
const (
	TagDevice = "device"
	TagStatus = "status"
)

// Names returns every metric name in collection order.
func Names() []string {
	return []string{
		CPUUsage,
		LoadAverage,
		MemUsage,
		DiskUsage,
		NetBytesSent,
		NetBytesRecv,
		TCPStatus,
	}
}

// IsKnown reports whether name is one of the emitted metric names.
func IsKnown(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}
