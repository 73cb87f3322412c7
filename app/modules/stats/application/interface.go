package statsservice

import (
	"context"

	statsdomain "github.com/edenhub/eden-web/app/modules/stats/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// Service builds the admin stats chart.
type Service interface {
	Breakdown(ctx context.Context) (statsdomain.Breakdown, error)
	Chart(ctx context.Context) ([]byte, error)
}

// API is the slice of the Eden API the stats need.
type API interface {
	ListRuns(ctx context.Context, serverID string) ([]edenapi.Run, error)
	Stats(ctx context.Context) (edenapi.Stats, error)
}
