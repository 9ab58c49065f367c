// Package service computes the overview strip from the shared dataset
package service

import (
	"context"
	"math"

	"scorebook/internal/services/api/overview/domain"
	"scorebook/internal/services/dataset"
)

// Service implements domain.ServicePort
type Service struct {
	data dataset.Provider
}

// New returns a Service reading from data
func New(data dataset.Provider) *Service { return &Service{data: data} }

// Overview summarizes the loaded dataset
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	sum := ds.Summarize()
	return domain.Overview{
		DatasetID:    ds.ID().String(),
		Matches:      sum.Matches,
		TotalRuns:    sum.TotalRuns,
		AverageRuns:  Round2(sum.AverageRuns),
		HighestScore: sum.HighestScore,
		Centuries:    sum.Centuries,
		Fifties:      sum.Fifties,
	}, nil
}

// Round2 rounds half away from zero to two decimals
func Round2(f float64) float64 { return math.Round(f*100) / 100 }
