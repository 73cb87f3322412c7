package migrations

import (
	"context"
	"fmt"

	activitydb "github.com/edenhub/eden-web/app/modules/activity/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating activity_events table...")
			return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				if _, err := tx.NewCreateTable().Model((*activitydb.ActivityEvent)(nil)).IfNotExists().Exec(ctx); err != nil {
					return err
				}
				_, err := tx.NewCreateIndex().
					Model((*activitydb.ActivityEvent)(nil)).
					Index("idx_activity_events_run_at").
					Column("run_id", "at").
					IfNotExists().
					Exec(ctx)
				return err
			})
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping activity_events table...")
			_, err := db.NewDropTable().Model((*activitydb.ActivityEvent)(nil)).IfExists().Cascade().Exec(ctx)
			return err
		},
	)
}
