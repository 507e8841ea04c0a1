package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-backoffice/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestProjectLocalizedText(t *testing.T) {
	t.Run("nil record projects to nil", func(t *testing.T) {
		assert.Nil(t, ProjectLocalizedText(nil))
	})

	t.Run("missing slots stay null inside the view", func(t *testing.T) {
		view := ProjectLocalizedText(&domain.LocalizedText{
			ID: "lt-1",
			En: strPtr("Central Station"),
		})
		require.NotNil(t, view)
		assert.Equal(t, "Central Station", *view.En)
		assert.Nil(t, view.Ar)
		assert.Nil(t, view.Ckb)

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.JSONEq(t, `{"en":"Central Station","ar":null,"ckb":null}`, string(raw))
	})
}

func TestProjectMapIcon(t *testing.T) {
	size := 32.0

	t.Run("nil icon projects to nil", func(t *testing.T) {
		assert.Nil(t, ProjectMapIcon(nil))
	})

	t.Run("icon without file projects to nil", func(t *testing.T) {
		assert.Nil(t, ProjectMapIcon(&domain.MapIcon{ID: "icon-1", IconSize: &size}))
	})

	t.Run("icon with file flattens the url", func(t *testing.T) {
		view := ProjectMapIcon(&domain.MapIcon{
			ID:       "icon-1",
			IconSize: &size,
			File:     &domain.UploadedFile{ID: "file-1", URL: "https://cdn.example.com/bus.png"},
		})
		require.NotNil(t, view)
		assert.Equal(t, "icon-1", view.ID)
		assert.Equal(t, "https://cdn.example.com/bus.png", view.FileURL)
		assert.Equal(t, 32.0, *view.IconSize)
	})
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Coordinate
	}{
		{
			name: "well formed pairs",
			raw:  `[[44.01,36.19],[44.02,36.20]]`,
			want: []Coordinate{{44.01, 36.19}, {44.02, 36.20}},
		},
		{
			name: "malformed entries are dropped, order preserved",
			raw:  `[[1,2],"bad",[3,4],[5]]`,
			want: []Coordinate{{1, 2}, {3, 4}},
		},
		{
			name: "non numeric pair is dropped",
			raw:  `[[1,2],["a","b"],[null,3]]`,
			want: []Coordinate{{1, 2}},
		},
		{
			name: "three element entry is dropped",
			raw:  `[[1,2,3]]`,
			want: []Coordinate{},
		},
		{
			name: "nested objects are dropped",
			raw:  `[{"lat":1,"lon":2},[7,8]]`,
			want: []Coordinate{{7, 8}},
		},
		{
			name: "top level object yields empty path",
			raw:  `{"path":[[1,2]]}`,
			want: []Coordinate{},
		},
		{
			name: "invalid json yields empty path",
			raw:  `not json`,
			want: []Coordinate{},
		},
		{
			name: "empty input yields empty path",
			raw:  ``,
			want: []Coordinate{},
		},
		{
			name: "null yields empty path",
			raw:  `null`,
			want: []Coordinate{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodePath([]byte(tt.raw))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectRouteSummary(t *testing.T) {
	svc := &domain.TransportService{ID: "svc-1", Type: domain.ServiceTypeBus, Color: "#FF0000", IsActive: true}

	t.Run("own color wins", func(t *testing.T) {
		own := "#00FF00"
		view := ProjectRouteSummary(&domain.BusRoute{
			ID:      "r-1",
			Color:   &own,
			Service: svc,
		})
		require.NotNil(t, view.Color)
		assert.Equal(t, "#00FF00", *view.Color)
	})

	t.Run("missing color inherits the service color", func(t *testing.T) {
		view := ProjectRouteSummary(&domain.BusRoute{ID: "r-1", Service: svc})
		require.NotNil(t, view.Color)
		assert.Equal(t, "#FF0000", *view.Color)
	})

	t.Run("no color and no service stays null", func(t *testing.T) {
		view := ProjectRouteSummary(&domain.BusRoute{ID: "r-1"})
		assert.Nil(t, view.Color)
	})
}

func TestProjectRoute(t *testing.T) {
	route := &domain.BusRoute{
		ID:        "r-1",
		Direction: domain.DirectionForward,
		IsActive:  true,
		Lanes:     []*domain.BusLane{{ID: "l-1"}, {ID: "l-2"}},
		Stops:     []*domain.BusStop{{ID: "s-1"}},
	}
	view := ProjectRoute(route)
	assert.Equal(t, []string{"l-1", "l-2"}, view.LaneIDs)
	assert.Equal(t, []string{"s-1"}, view.StopIDs)
	assert.True(t, view.IsActive)
}

func TestProjectStop(t *testing.T) {
	svc1 := &domain.TransportService{ID: "svc-1", Type: domain.ServiceTypeBus, Color: "#FF0000", IsActive: true}
	svc2 := &domain.TransportService{ID: "svc-2", Type: domain.ServiceTypeMetro, Color: "#0000FF", IsActive: true}

	t.Run("derived services keep first seen order across lanes and routes", func(t *testing.T) {
		stop := &domain.BusStop{
			ID: "s-1",
			Lanes: []*domain.BusLane{
				{ID: "l-1", Service: svc1},
				{ID: "l-2", Service: svc2},
			},
			Routes: []*domain.BusRoute{
				// Repeats svc-1: overwrites the stored value but keeps
				// its original position ahead of svc-2.
				{ID: "r-1", Service: svc1},
			},
		}
		view := ProjectStop(stop)
		require.Len(t, view.Services, 2)
		assert.Equal(t, "svc-1", view.Services[0].ID)
		assert.Equal(t, "svc-2", view.Services[1].ID)
		assert.Equal(t, []string{"svc-1", "svc-2"}, view.ServiceIDs)
	})

	t.Run("lanes and routes without service contribute nothing", func(t *testing.T) {
		view := ProjectStop(&domain.BusStop{
			ID:     "s-1",
			Lanes:  []*domain.BusLane{{ID: "l-1"}},
			Routes: []*domain.BusRoute{{ID: "r-1"}},
		})
		assert.Empty(t, view.Services)
		assert.Empty(t, view.ServiceIDs)
		assert.Len(t, view.Lanes, 1)
		assert.Len(t, view.Routes, 1)
	})

	t.Run("missing active flag defaults to visible", func(t *testing.T) {
		view := ProjectStop(&domain.BusStop{ID: "s-1"})
		assert.True(t, view.IsActive)
	})

	t.Run("explicit inactive flag survives", func(t *testing.T) {
		inactive := false
		view := ProjectStop(&domain.BusStop{ID: "s-1", IsActive: &inactive})
		assert.False(t, view.IsActive)
	})

	t.Run("collections serialize as arrays even when empty", func(t *testing.T) {
		view := ProjectStop(&domain.BusStop{ID: "s-1"})
		raw, err := json.Marshal(view)
		require.NoError(t, err)
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		for _, key := range []string{"images", "services", "serviceIds", "lanes", "routes"} {
			assert.IsType(t, []interface{}{}, decoded[key], key)
		}
	})

	t.Run("amenities mirror the row flags", func(t *testing.T) {
		view := ProjectStop(&domain.BusStop{
			ID:          "s-1",
			HasShelter:  true,
			HasLighting: true,
		})
		assert.True(t, view.Amenities.HasShelter)
		assert.True(t, view.Amenities.HasLighting)
		assert.False(t, view.Amenities.HasBench)
	})
}
