package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// Pinger is anything that can prove a remote dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Catalog Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Telemetry.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:    "redis",
				Timeout: 2 * time.Second,
				// the board falls back to the catalog without its snapshot
				SkipOnErr: true,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "catalog",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check:     catalogCheck(endpoints.Catalog),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func catalogCheck(p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if p == nil {
			return fmt.Errorf("catalog client is not initialized")
		}
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach catalog service: %w", err)
		}
		return nil
	}
}
