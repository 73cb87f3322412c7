package statsservice

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"testing"

	statsdomain "github.com/edenhub/eden-web/app/modules/stats/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(api *FakeAPI) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(api, "srv", logger, noop.NewTracerProvider().Tracer("test"))
}

func TestBreakdown(t *testing.T) {
	api := &FakeAPI{
		ListRunsFunc: func(_ context.Context, serverID string) ([]edenapi.Run, error) {
			assert.Equal(t, "srv", serverID)
			return []edenapi.Run{{Status: types.RunActive}, {Status: types.RunCompleted}}, nil
		},
		StatsFunc: func(context.Context) (edenapi.Stats, error) {
			return edenapi.Stats{}, errors.New("stats down")
		},
	}

	b, err := newTestService(api).Breakdown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, statsdomain.Breakdown{Active: 1, Completed: 1}, b)
	assert.Equal(t, []string{"ListRuns", "Stats"}, api.Trace())
}

func TestChart(t *testing.T) {
	t.Run("renders png", func(t *testing.T) {
		api := &FakeAPI{ListRunsFunc: func(context.Context, string) ([]edenapi.Run, error) {
			return []edenapi.Run{{Status: types.RunPending}, {Status: types.RunActive}}, nil
		}}

		raw, err := newTestService(api).Chart(context.Background())
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 720, img.Bounds().Dx())
	})

	t.Run("placeholder without data", func(t *testing.T) {
		raw, err := newTestService(&FakeAPI{}).Chart(context.Background())
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
	})

	t.Run("run list failure", func(t *testing.T) {
		api := &FakeAPI{ListRunsFunc: func(context.Context, string) ([]edenapi.Run, error) {
			return nil, errors.New("offline")
		}}
		_, err := newTestService(api).Chart(context.Background())
		assert.Error(t, err)
	})
}

func TestRenderPlaceholder(t *testing.T) {
	raw, err := RenderPlaceholder("No run data yet", DefaultPalette)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}
