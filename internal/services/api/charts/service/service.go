// Package service builds chart series and images from the shared dataset
package service

import (
	"context"

	"scorebook/internal/core/innings"
	"scorebook/internal/core/plot"
	"scorebook/internal/platform/metrics"
	"scorebook/internal/services/api/charts/domain"
	"scorebook/internal/services/dataset"
)

// Service implements domain.ServicePort
type Service struct {
	data    dataset.Provider
	metrics *metrics.Metrics
}

// New returns a Service; m may be nil
func New(data dataset.Provider, m *metrics.Metrics) *Service {
	return &Service{data: data, metrics: m}
}

func version(ds *innings.Dataset, suffix string) domain.Version {
	v := ds.ID().String()
	if suffix != "" {
		v += "/" + suffix
	}
	return domain.Version(v)
}

// List returns every chart in display order
func (s *Service) List(ctx context.Context) ([]domain.Chart, domain.Version, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return nil, "", err
	}
	return plot.All(ds), version(ds, ""), nil
}

// Get returns one chart; unknown names are NotFound
func (s *Service) Get(ctx context.Context, name plot.Name) (domain.Chart, domain.Version, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return domain.Chart{}, "", err
	}
	spec, err := plot.Build(name, ds)
	if err != nil {
		return domain.Chart{}, "", err
	}
	return spec, version(ds, string(name)), nil
}

// Render draws one chart as an image
func (s *Service) Render(ctx context.Context, name plot.Name, f plot.Format) (domain.Image, domain.Version, error) {
	spec, v, err := s.Get(ctx, name)
	if err != nil {
		return domain.Image{}, "", err
	}
	b, err := plot.Render(spec, f)
	if err != nil {
		return domain.Image{}, "", err
	}
	s.metrics.ObserveRender(string(name), string(f))
	return domain.Image{Name: name, Format: f, Bytes: b}, v + domain.Version("."+string(f)), nil
}
