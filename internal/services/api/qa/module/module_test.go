package module_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"scorebook/internal/core/intent"
	"scorebook/internal/platform/metrics"
	phttp "scorebook/internal/platform/net/http"
	"scorebook/internal/services/api/apitest"
	"scorebook/internal/services/api/qa/domain"
	qamod "scorebook/internal/services/api/qa/module"
)

func router(t *testing.T) (phttp.Router, *metrics.Metrics) {
	t.Helper()
	deps := apitest.Deps(apitest.Sample(t))
	deps.Metrics = metrics.New()
	return apitest.Router(qamod.New(deps)), deps.Metrics
}

func ask(t *testing.T, r phttp.Router, q string) domain.Answer {
	t.Helper()
	rec := apitest.Do(r, http.MethodPost, "/qa/ask", domain.AskInput{Question: q})
	if rec.Code != http.StatusOK {
		t.Fatalf("ask %q = %d (%s)", q, rec.Code, rec.Body.String())
	}
	return apitest.Data[domain.Answer](t, rec)
}

func TestAskEndToEnd(t *testing.T) {
	r, m := router(t)
	cases := []struct{ q, intent, answer string }{
		{"What are the total runs?", "total_runs", "Total runs scored: 227"},
		{"mean runs please", "average_runs", "Average runs per match: 75.67"},
		{"HIGHEST SCORE", "highest_score", "Highest score: 112"},
		{"how many centuries", "centuries", "Number of centuries: 1"},
		{"fifties?", "fifties", "Number of fifties: 1"},
		{"total matches played", "total_matches", "Total matches played: 3"},
		{"against which opponent were the most runs scored", "top_opponent", "Most runs against A: 115"},
		{"which year had the most runs", "top_year", "Most runs in 2011: 182"},
	}
	for _, tc := range cases {
		got := ask(t, r, tc.q)
		if got.Intent != tc.intent || got.Answer != tc.answer || !got.Matched || got.Question != tc.q {
			t.Fatalf("ask %q = %+v, want %s / %q", tc.q, got, tc.intent, tc.answer)
		}
	}
	if n := testutil.ToFloat64(m.Questions.WithLabelValues("total_runs")); n != 1 {
		t.Fatalf("total_runs counter = %v", n)
	}
}

func TestAskFallbackAndValidation(t *testing.T) {
	r, m := router(t)

	got := ask(t, r, "who won the toss")
	if got.Matched || got.Intent != "" || got.Answer != intent.Fallback {
		t.Fatalf("fallback = %+v", got)
	}
	if n := testutil.ToFloat64(m.Questions.WithLabelValues("fallback")); n != 1 {
		t.Fatalf("fallback counter = %v", n)
	}

	rec := apitest.Do(r, http.MethodPost, "/qa/ask", domain.AskInput{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty question = %d, want 400", rec.Code)
	}
	if env := apitest.Envelope(t, rec); env.Field != "question" {
		t.Fatalf("field = %q, want question", env.Field)
	}

	rec = apitest.Do(r, http.MethodPost, "/qa/ask", domain.AskInput{Question: strings.Repeat("runs ", 101)})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("oversized question = %d, want 400", rec.Code)
	}
}

func TestIntents(t *testing.T) {
	r, _ := router(t)
	rec := apitest.Do(r, http.MethodGet, "/qa/intents", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /qa/intents = %d", rec.Code)
	}
	got := apitest.Data[[]domain.Intent](t, rec)
	if len(got) != len(intent.Rules()) {
		t.Fatalf("intents = %d, want %d", len(got), len(intent.Rules()))
	}
	if got[0].Name != "total_runs" || got[0].Priority != 1 || got[0].Triggers != `"total runs" or "sum of runs"` {
		t.Fatalf("first intent = %+v", got[0])
	}
}
