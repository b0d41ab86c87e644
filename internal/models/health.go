package models

// StatusUp is the only status the health endpoint reports
const StatusUp = "UP"

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
