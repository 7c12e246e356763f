package doctor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/ports"
)

// Service runs environment diagnostics: config validity, phrase service
// reachability per category, and feed log writability.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Source         ports.PhraseSource
	Store          ports.FeedRepository

	// ProbeTimeout bounds each category probe. Interactive diagnostics need
	// liveness even though regular fetches carry no timeout.
	ProbeTimeout time.Duration
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if len(cfg.Service.Categories) == 0 {
		checks = append(checks, warn("Categories", "none configured"))
	} else {
		checks = append(checks, ok("Categories", fmt.Sprintf("%d configured", len(cfg.Service.Categories))))
	}

	if s.Source != nil {
		checks = append(checks, s.probeCategories(ctx, cfg)...)
	} else {
		checks = append(checks, warn("Phrase service", "source not initialized"))
	}

	if s.Store != nil {
		checks = append(checks, storeCheck(s.Store))
	}

	return domain.HealthReport{Checks: checks}, nil
}

// probeCategories fetches one phrase per configured category concurrently.
// A failing category is a warning, not an error: the service may simply not
// be running yet.
func (s *Service) probeCategories(ctx context.Context, cfg domain.Config) []domain.HealthCheck {
	timeout := s.ProbeTimeout
	if timeout <= 0 {
		timeout = domain.DefaultProbeTimeout
	}

	var mu sync.Mutex
	var checks []domain.HealthCheck
	g, gctx := errgroup.WithContext(ctx)
	for _, category := range cfg.Service.Categories {
		category := category
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			name := fmt.Sprintf("Category %q", category)
			var check domain.HealthCheck
			if _, err := s.Source.Fetch(probeCtx, category); err != nil {
				check = warn(name, err.Error())
			} else {
				check = ok(name, "reachable")
			}
			mu.Lock()
			checks = append(checks, check)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
	return checks
}

func storeCheck(store ports.FeedRepository) domain.HealthCheck {
	if _, err := store.Records(1, ""); err != nil {
		return fail("Feed log", fmt.Sprintf("not readable: %v", err))
	}
	return ok("Feed log", store.Path())
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
