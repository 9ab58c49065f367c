// Package domain holds innings table DTOs and the service contract
package domain

import "context"

// Query narrows the table; blank fields match everything
type Query struct {
	Opponent string `query:"opponent" json:"opponent,omitempty" validate:"omitempty,max=100" example:"Australia"`
	Match    string `query:"match" json:"match,omitempty" validate:"omitempty,max=20" example:"ODI"`
	Year     int    `query:"year" json:"year,omitempty" validate:"omitempty,min=1870,max=2200" example:"2011"`
}

// Row is one innings in table form
type Row struct {
	MatchNo  int    `json:"match_no" example:"2"`
	Runs     int    `json:"runs" example:"112"`
	Opponent string `json:"opponent" example:"B"`
	Ground   string `json:"ground" example:"Kolkata"`
	Date     string `json:"date" example:"2011-12-24"`
	Match    string `json:"match" example:"ODI"`
	Total    int    `json:"total" example:"317"`
	Year     int    `json:"year" example:"2011"`
}

// Workbook is an exported table
type Workbook struct {
	Filename string
	Bytes    []byte
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, q Query) ([]Row, string, error)
	Export(ctx context.Context, q Query) (Workbook, string, error)
}
