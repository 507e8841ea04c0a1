package handler

import (
	"bytes"
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
	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/usecase"
)

type stubZoneRepository struct {
	zones []*domain.Zone
	total int
}

func (s *stubZoneRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Zone, int, error) {
	return s.zones, s.total, nil
}

func (s *stubZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	for _, z := range s.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (s *stubZoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	s.zones = append(s.zones, zone)
	return nil
}

func (s *stubZoneRepository) Update(ctx context.Context, zone *domain.Zone) error { return nil }

func (s *stubZoneRepository) SoftDelete(ctx context.Context, id string) error { return nil }

func newZoneApp(repo *stubZoneRepository) *fiber.App {
	logger := zap.NewNop()
	h := NewZoneHandler(usecase.NewZoneUseCase(repo, nil, nil, logger), logger)
	app := fiber.New()
	app.Get("/zones", h.List)
	app.Post("/zones", h.Create)
	app.Get("/zones/:id", h.GetByID)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestZoneHandler_List(t *testing.T) {
	repo := &stubZoneRepository{
		zones: []*domain.Zone{{ID: "z-1", IsActive: true}},
		total: 41,
	}
	app := newZoneApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/zones?search=center", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 41, env.Meta.Total)
	// Pagination defaults applied by the list parameters.
	assert.Equal(t, 1, env.Meta.Page)
	assert.Equal(t, 20, env.Meta.Limit)
}

func TestZoneHandler_Create(t *testing.T) {
	t.Run("created envelope", func(t *testing.T) {
		app := newZoneApp(&stubZoneRepository{})

		payload := `{"name":{"en":"Downtown"},"color":"#FFB300"}`
		req := httptest.NewRequest(http.MethodPost, "/zones", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)

		var zone domain.Zone
		require.NoError(t, json.Unmarshal(env.Data, &zone))
		assert.NotEmpty(t, zone.ID)
		assert.True(t, zone.IsActive)
	})

	t.Run("validation failure is a 400 with details", func(t *testing.T) {
		app := newZoneApp(&stubZoneRepository{})

		// Missing required name.
		req := httptest.NewRequest(http.MethodPost, "/zones", bytes.NewBufferString(`{"color":"#FFB300"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})
}

func TestZoneHandler_GetByID(t *testing.T) {
	t.Run("missing record is a 404", func(t *testing.T) {
		app := newZoneApp(&stubZoneRepository{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/zones/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
