package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type DashboardResponse struct {
	Dashboard string `json:"dashboard"`
}
