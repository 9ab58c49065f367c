// Package domain holds DTOs and the service contract for the overview strip
package domain

import "context"

// Overview is the KPI strip shown above the charts
type Overview struct {
	DatasetID    string  `json:"dataset_id" example:"0b7f2c7e-3f6e-4c55-9a53-3c1f0c6f1e2a"`
	Matches      int     `json:"matches" example:"3"`
	TotalRuns    int     `json:"total_runs" example:"227"`
	AverageRuns  float64 `json:"average_runs" example:"75.67"`
	HighestScore int     `json:"highest_score" example:"112"`
	Centuries    int     `json:"centuries" example:"1"`
	Fifties      int     `json:"fifties" example:"1"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Overview(ctx context.Context) (Overview, error)
}
