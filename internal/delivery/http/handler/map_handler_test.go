package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/usecase"
)

type stubMapRepository struct {
	snap *domain.MapSnapshot
	err  error
}

func (s *stubMapRepository) FetchSnapshot(ctx context.Context) (*domain.MapSnapshot, error) {
	return s.snap, s.err
}

func newMapApp(repo *stubMapRepository) *fiber.App {
	logger := zap.NewNop()
	h := NewMapHandler(usecase.NewMapUseCase(repo, logger, nil), logger)
	app := fiber.New()
	app.Get("/api/map", h.GetMapData)
	return app
}

func TestMapHandler_GetMapData(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		name := "Downtown"
		app := newMapApp(&stubMapRepository{snap: &domain.MapSnapshot{
			Zones: []*domain.Zone{{
				ID:       "z-1",
				Name:     &domain.LocalizedText{ID: "lt-1", En: &name},
				IsActive: true,
			}},
		}})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/map", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var decoded struct {
			Success bool `json:"success"`
			Data    struct {
				Services []json.RawMessage `json:"services"`
				Stops    []json.RawMessage `json:"stops"`
				Lanes    []json.RawMessage `json:"lanes"`
				Routes   []json.RawMessage `json:"routes"`
				Zones    []json.RawMessage `json:"zones"`
			} `json:"data"`
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.True(t, decoded.Success)
		assert.Empty(t, decoded.Error)
		assert.NotNil(t, decoded.Data.Services)
		require.Len(t, decoded.Data.Zones, 1)
	})

	t.Run("failure returns the fixed error message", func(t *testing.T) {
		app := newMapApp(&stubMapRepository{err: assert.AnError})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/map", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":"Failed to load map data"}`, string(body))
	})
}
