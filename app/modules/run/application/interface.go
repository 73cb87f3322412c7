package runservice

import (
	"context"

	rundomain "github.com/edenhub/eden-web/app/modules/run/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/paging"
)

// Service is the admin's run management.
type Service interface {
	// List returns one page of the server's runs passing filter, with the stats cards.
	List(ctx context.Context, filter rundomain.Filter, page int) (*Listing, error)

	Get(ctx context.Context, runID string) (*edenapi.Run, error)
	Create(ctx context.Context, form rundomain.Form) (*edenapi.Run, error)
	Update(ctx context.Context, runID string, form rundomain.Form) (*edenapi.Run, error)
	Delete(ctx context.Context, runID string) error
}

// API is the part of the Eden API the run service calls.
type API interface {
	ListRuns(ctx context.Context, serverID string) ([]edenapi.Run, error)
	GetRun(ctx context.Context, serverID, runID string) (edenapi.Run, error)
	CreateRun(ctx context.Context, in edenapi.RunInput) (edenapi.Run, error)
	UpdateRun(ctx context.Context, runID string, in edenapi.RunUpdate) (edenapi.Run, error)
	DeleteRun(ctx context.Context, runID string) error
	Stats(ctx context.Context) (edenapi.Stats, error)
}

// Listing is the data of the admin run list.
type Listing struct {
	Runs   paging.Page[edenapi.Run]
	Stats  rundomain.Stats
	Filter rundomain.Filter
}
