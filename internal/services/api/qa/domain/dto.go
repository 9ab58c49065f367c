// Package domain holds Q&A DTOs and the service contract
package domain

import "context"

// AskInput is the question payload
type AskInput struct {
	Question string `json:"question" validate:"required,max=500" example:"What are the total runs?"`
}

// Answer is the matcher's reply; Intent is empty when the fallback answered
type Answer struct {
	Question string `json:"question" example:"What are the total runs?"`
	Intent   string `json:"intent" example:"total_runs"`
	Matched  bool   `json:"matched" example:"true"`
	Answer   string `json:"answer" example:"Total runs scored: 227"`
}

// Intent describes one supported question shape, in priority order
type Intent struct {
	Priority int    `json:"priority" example:"1"`
	Name     string `json:"name" example:"total_runs"`
	Triggers string `json:"triggers" example:"\"total runs\" or \"sum of runs\""`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Ask(ctx context.Context, question string) (Answer, error)
	Intents() []Intent
}
