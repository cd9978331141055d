package models

// HealthResponse represents the response structure for health check endpoints
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	// Timestamp is ISO 8601 in UTC with millisecond precision, e.g. 2025-11-10T14:30:00.000Z
	Timestamp string      `json:"timestamp" example:"2025-11-10T14:30:00.000Z"`
	Service   string      `json:"service" example:"Fake News Detector API"`
	Version   string      `json:"version" example:"1.0.0"`
	System    *SystemInfo `json:"system,omitempty"`
}

// HealthErrorResponse is returned when the health report could not be assembled
type HealthErrorResponse struct {
	Status    string `json:"status" example:"error"`
	Error     string `json:"error" example:"Internal server error during health check"`
	Timestamp string `json:"timestamp" example:"2025-11-10T14:30:00.000Z"`
}

// SystemInfo carries basic process metrics for the health report
type SystemInfo struct {
	GoVersion     string      `json:"go_version" example:"go1.24.0"`
	Platform      string      `json:"platform" example:"linux/amd64"`
	UptimeSeconds float64     `json:"uptime_seconds" example:"42.5"`
	Goroutines    int         `json:"goroutines" example:"8"`
	Memory        MemoryUsage `json:"memory_usage"`
}

// MemoryUsage is a subset of runtime.MemStats
type MemoryUsage struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	HeapInuseBytes  uint64 `json:"heap_inuse_bytes"`
}

// IsReady reports whether a client may enable the analyze action
func (h *HealthResponse) IsReady() bool {
	return h != nil && h.Status == StatusHealthy && h.ModelLoaded
}
