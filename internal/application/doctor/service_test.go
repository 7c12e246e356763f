package doctor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/backwardspy/randnd/internal/application/doctor"
	"github.com/backwardspy/randnd/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubSource struct {
	failing map[string]bool
}

func (s stubSource) Endpoint() string { return "http://test" }

func (s stubSource) Fetch(_ context.Context, category string) (string, error) {
	if s.failing[category] {
		return "", errors.New("connection refused")
	}
	return "ok", nil
}

func baseConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Service: domain.ServiceSettings{
			Endpoint:   "http://test",
			Categories: []string{"spell", "boss"},
		},
	}
}

func TestDoctor_AllReachable(t *testing.T) {
	svc := &doctor.Service{
		ConfigProvider: stubConfig{cfg: baseConfig()},
		Source:         stubSource{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !report.Healthy() {
		t.Errorf("report should be healthy: %+v", report)
	}
	// config check + categories count + one probe per category
	if len(report.Checks) != 4 {
		t.Errorf("checks = %d, want 4", len(report.Checks))
	}
}

func TestDoctor_UnreachableCategoryWarns(t *testing.T) {
	svc := &doctor.Service{
		ConfigProvider: stubConfig{cfg: baseConfig()},
		Source:         stubSource{failing: map[string]bool{"boss": true}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	var warned bool
	for _, check := range report.Checks {
		if check.Status == domain.HealthWarn && check.Name == `Category "boss"` {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a warning for the failing category: %+v", report)
	}
	// probe failures warn, they do not fail the report
	if !report.Healthy() {
		t.Errorf("warnings should keep the report healthy: %+v", report)
	}
}

func TestDoctor_ConfigLoadFailure(t *testing.T) {
	svc := &doctor.Service{
		ConfigProvider: stubConfig{err: errors.New("yaml: bad file")},
		Source:         stubSource{},
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failing config load")
	}
	if report.Healthy() {
		t.Errorf("report should be unhealthy: %+v", report)
	}
}
