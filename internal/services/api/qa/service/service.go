// Package service answers questions with the intent matcher
package service

import (
	"context"

	"scorebook/internal/core/intent"
	"scorebook/internal/platform/logger"
	"scorebook/internal/platform/metrics"
	"scorebook/internal/services/api/qa/domain"
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

// Ask answers question over the loaded dataset. Only a dataset failure is an error.
func (s *Service) Ask(ctx context.Context, question string) (domain.Answer, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return domain.Answer{}, err
	}
	out := domain.Answer{Question: question, Answer: intent.Fallback}
	if r, ok := intent.Match(question); ok {
		out.Intent = string(r.Name)
		out.Matched = true
		out.Answer = r.Answer(ds)
	}
	s.metrics.ObserveQuestion(out.Intent)
	logger.C(ctx).Debug().Str("intent", out.Intent).Bool("matched", out.Matched).Msg("qa answered")
	return out, nil
}

// Intents lists the rules in priority order
func (s *Service) Intents() []domain.Intent {
	rules := intent.Rules()
	out := make([]domain.Intent, len(rules))
	for i, r := range rules {
		out[i] = domain.Intent{Priority: i + 1, Name: string(r.Name), Triggers: r.Describe()}
	}
	return out
}
