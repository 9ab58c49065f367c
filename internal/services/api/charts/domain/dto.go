// Package domain holds chart DTOs and the service contract
package domain

import (
	"context"

	"scorebook/internal/core/plot"
)

// Chart is the JSON form of one dashboard chart
type Chart = plot.Spec

// Image is a rendered chart
type Image struct {
	Name   plot.Name
	Format plot.Format
	Bytes  []byte
}

// Version tags a chart payload so clients can revalidate it
type Version string

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context) ([]Chart, Version, error)
	Get(ctx context.Context, name plot.Name) (Chart, Version, error)
	Render(ctx context.Context, name plot.Name, f plot.Format) (Image, Version, error)
}
