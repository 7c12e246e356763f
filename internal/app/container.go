package app

import (
	"context"

	"github.com/backwardspy/randnd/internal/application/doctor"
	"github.com/backwardspy/randnd/internal/application/feed"
	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/infrastructure/config"
	"github.com/backwardspy/randnd/internal/infrastructure/feedlog"
	"github.com/backwardspy/randnd/internal/infrastructure/source"
	"github.com/backwardspy/randnd/internal/pkg/logger"
	"github.com/backwardspy/randnd/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Controller    *feed.Controller
	DoctorService *doctor.Service
	FeedStore     ports.FeedRepository
	Logger        *logger.ZapLogger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewZap(verbose)
	src := source.NewHTTPSource(cfg.Service.Endpoint, nil)

	var store ports.FeedRepository
	if cfg.Log.Enabled {
		switch cfg.Log.Backend {
		case "file":
			store = feedlog.NewFileStore()
		default:
			store = feedlog.NewSQLiteStore(cfg.Log.RetentionDays)
		}
	}

	controller := &feed.Controller{
		Source:       src,
		Store:        store,
		Logger:       log,
		FetchTimeout: cfg.FetchTimeout(),
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Source:         src,
		Store:          store,
	}

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Controller:    controller,
		DoctorService: doctorService,
		FeedStore:     store,
		Logger:        log,
	}, nil
}
