package domain

// Performance is one day of system telemetry.
type Performance struct {
	ID           int64   `db:"id" json:"id"`
	RecordedOn   Date    `db:"recorded_on" json:"date"`
	CPUUsage     float64 `db:"cpu_usage" json:"cpu_usage"`
	MemoryUsage  float64 `db:"memory_usage" json:"memory_usage"`
	NetworkUsage float64 `db:"network_usage" json:"network_usage"`
	DiskUsage    float64 `db:"disk_usage" json:"disk_usage"`
}

type PerformanceUpdate struct {
	CPUUsage     *float64
	MemoryUsage  *float64
	NetworkUsage *float64
	DiskUsage    *float64
}

func (u PerformanceUpdate) Empty() bool {
	return u.CPUUsage == nil && u.MemoryUsage == nil && u.NetworkUsage == nil && u.DiskUsage == nil
}
