package model

// ServiceName identifies this service in health responses.
const ServiceName = "example-api"

// StatusOK is the only status the health endpoints report.
const StatusOK = "ok"

// HealthStatus is the JSON body of the versioned health check.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
