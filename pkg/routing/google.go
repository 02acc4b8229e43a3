// Package routing talks to the Google Distance Matrix API to estimate
// drive distance and duration from the restaurant to a delivery address.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	origin     string
	log        logger.ILogger
}

func NewClient(apiKey, origin string, log logger.ILogger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		origin:     origin,
		log:        log,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL, apiKey, origin string, log logger.ILogger) *Client {
	c := NewClient(apiKey, origin, log)
	c.baseURL = baseURL
	return c
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// GetRoadInfo returns drive distance and duration for the destination
// address. Duration is rounded up to whole minutes.
func (c *Client) GetRoadInfo(ctx context.Context, destination string) (models.RoadInfo, error) {
	params := url.Values{}
	params.Set("origins", c.origin)
	params.Set("destinations", destination)
	params.Set("units", "metric")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.RoadInfo{}, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("distance matrix request failed", logger.Error(err))
		return models.RoadInfo{}, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("distance matrix returned non-OK status", logger.Int("status", resp.StatusCode))
		return models.RoadInfo{}, fmt.Errorf("%w: response status %d", models.ErrExternalService, resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.RoadInfo{}, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	if body.Status != "OK" {
		c.log.Error("distance matrix payload not OK", logger.String("status", body.Status))
		return models.RoadInfo{}, fmt.Errorf("%w: payload status %s", models.ErrExternalService, body.Status)
	}
	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return models.RoadInfo{}, fmt.Errorf("%w: empty distance matrix", models.ErrExternalService)
	}

	road := body.Rows[0].Elements[0]
	if road.Status != "" && road.Status != "OK" {
		return models.RoadInfo{}, fmt.Errorf("%w: element status %s", models.ErrExternalService, road.Status)
	}

	info := models.RoadInfo{
		DistanceKm:         float64(road.Distance.Value) / 1000,
		TimeToDriveMinutes: int((road.Duration.Value + 59) / 60),
	}
	return info, nil
}
