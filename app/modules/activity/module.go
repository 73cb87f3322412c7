package activity

import (
	"context"
	"log/slog"
	"sync"

	activityservice "github.com/edenhub/eden-web/app/modules/activity/application"
	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	activitydb "github.com/edenhub/eden-web/app/modules/activity/infrastructure/repositories"
	"github.com/edenhub/eden-web/app/shared/clock"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the activity feed module.
type Module struct {
	service activityservice.Service
	logger  *slog.Logger
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewModule creates the activity module and starts its consumer.
// A nil db keeps the feed in memory.
func NewModule(
	ctx context.Context,
	bus activityservice.Bus,
	db *bun.DB,
	logger *slog.Logger,
	tracer trace.Tracer,
) *Module {
	logger.InfoContext(ctx, "Initializing activity module")

	var repo activitydb.Repository
	if db != nil {
		repo = activitydb.NewRepository(db)
	} else {
		logger.InfoContext(ctx, "Activity feed kept in memory")
		repo = activitydb.NewMemory(activitydomain.RecentLimit * 5)
	}

	m := &Module{
		service: activityservice.NewService(bus, repo, clock.Real{}, logger, tracer),
		logger:  logger,
	}

	consumeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.service.Consume(consumeCtx); err != nil {
			logger.Error("Activity consumer stopped", slog.String("error", err.Error()))
		}
	}()

	return m
}

// Service exposes the feed to the roster module.
func (m *Module) Service() activityservice.Service {
	return m.service
}

// Close stops the consumer and waits for it to exit.
func (m *Module) Close() {
	m.logger.Info("Stopping activity module")
	m.cancel()
	m.wg.Wait()
}
