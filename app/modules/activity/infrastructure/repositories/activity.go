package activitydb

import (
	"context"
	"fmt"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	"github.com/uptrace/bun"
)

// Impl stores events in Postgres through bun.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a bun-backed repository.
func NewRepository(db bun.IDB) *Impl {
	return &Impl{db: db}
}

func (r *Impl) Save(ctx context.Context, event activitydomain.Event) error {
	_, err := r.db.NewInsert().
		Model(toDBModel(event)).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save activity event: %w", err)
	}
	return nil
}

func (r *Impl) Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error) {
	var rows []ActivityEvent
	err := r.db.NewSelect().
		Model(&rows).
		Where("run_id = ?", runID).
		OrderExpr("at DESC, created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	events := make([]activitydomain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, toDomain(row))
	}
	return events, nil
}
