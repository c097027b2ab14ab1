package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

func getRestaurantInfo(t *testing.T, h *Handler) domain.RestaurantInfo {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurant/info", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetRestaurantInfo(echo.New().NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var info domain.RestaurantInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	return info
}

func TestGetRestaurantInfoFallback(t *testing.T) {
	h, _ := newTestHandler(t)

	info := getRestaurantInfo(t, h)
	assert.Equal(t, domain.FallbackRestaurantInfo(), info)
}

func TestGetRestaurantInfoLive(t *testing.T) {
	h, deps := newTestHandler(t)
	open := false
	rating := 4.1
	deps.places.err = nil
	deps.places.details = &places.PlaceDetails{
		Name:                "Bodegoes",
		Rating:              &rating,
		CurrentOpeningHours: &places.OpeningHours{OpenNow: &open},
	}

	info := getRestaurantInfo(t, h)
	assert.Equal(t, 4.1, info.Rating)
	assert.Equal(t, 324, info.Reviews)
	assert.False(t, info.IsOpen)
	assert.Equal(t, "Closed", info.CurrentStatus)
	assert.Len(t, info.Hours, 7)
}
