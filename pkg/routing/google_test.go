package routing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
)

func newTestServer(t *testing.T, status int, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("destinations"); got != "Khreshchatyk 1" {
			t.Errorf("unexpected destination: %q", got)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetRoadInfo_RoundsDurationUp(t *testing.T) {
	payload := `{
		"status": "OK",
		"rows": [{"elements": [{
			"status": "OK",
			"distance": {"value": 8450},
			"duration": {"value": 1185}
		}]}]
	}`
	srv := newTestServer(t, http.StatusOK, payload)

	c := NewClientWithBaseURL(srv.URL, "test-key", "Київ, Ніжинська 29", logger.New("test", "error"))
	info, err := c.GetRoadInfo(context.Background(), "Khreshchatyk 1")
	if err != nil {
		t.Fatalf("GetRoadInfo: %v", err)
	}

	// 1185s = 19.75min -> 20
	if info.TimeToDriveMinutes != 20 {
		t.Errorf("TimeToDriveMinutes = %d, want 20", info.TimeToDriveMinutes)
	}
	if info.DistanceKm != 8.45 {
		t.Errorf("DistanceKm = %v, want 8.45", info.DistanceKm)
	}
}

func TestGetRoadInfo_ExactMinuteNotRounded(t *testing.T) {
	payload := `{
		"status": "OK",
		"rows": [{"elements": [{
			"distance": {"value": 1000},
			"duration": {"value": 1200}
		}]}]
	}`
	srv := newTestServer(t, http.StatusOK, payload)

	c := NewClientWithBaseURL(srv.URL, "test-key", "Київ, Ніжинська 29", logger.New("test", "error"))
	info, err := c.GetRoadInfo(context.Background(), "Khreshchatyk 1")
	if err != nil {
		t.Fatalf("GetRoadInfo: %v", err)
	}
	if info.TimeToDriveMinutes != 20 {
		t.Errorf("TimeToDriveMinutes = %d, want 20", info.TimeToDriveMinutes)
	}
}

func TestGetRoadInfo_NonOKPayloadStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"status": "REQUEST_DENIED", "rows": []}`)

	c := NewClientWithBaseURL(srv.URL, "test-key", "Київ, Ніжинська 29", logger.New("test", "error"))
	_, err := c.GetRoadInfo(context.Background(), "Khreshchatyk 1")
	if !errors.Is(err, models.ErrExternalService) {
		t.Errorf("expected ErrExternalService, got %v", err)
	}
}

func TestGetRoadInfo_HTTPError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `upstream broke`)

	c := NewClientWithBaseURL(srv.URL, "test-key", "Київ, Ніжинська 29", logger.New("test", "error"))
	_, err := c.GetRoadInfo(context.Background(), "Khreshchatyk 1")
	if !errors.Is(err, models.ErrExternalService) {
		t.Errorf("expected ErrExternalService, got %v", err)
	}
}
