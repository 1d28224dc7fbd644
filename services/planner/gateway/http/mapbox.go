package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpclient "github.com/radityabs/rutevis/internal/pkg/http"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// maxWaypointsPerRequest is the Mapbox Directions API coordinate limit
const maxWaypointsPerRequest = 25

// MapboxClient fetches road geometry from the Mapbox Directions API.
// Requests are limited to 25 coordinates, so longer stop sequences are
// split into overlapping batches whose geometries are concatenated.
type MapboxClient struct {
	client      *httpclient.Client
	accessToken string
	profile     string
}

// NewMapboxClient creates a new Mapbox Directions API client
func NewMapboxClient(cfg models.MapboxConfig) *MapboxClient {
	return &MapboxClient{
		client:      httpclient.NewClient(cfg.BaseURL, 30*time.Second),
		accessToken: cfg.AccessToken,
		profile:     cfg.Profile,
	}
}

type directionsResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
	Code string `json:"code"`
}

// GetDirections snaps the given waypoints ([lon, lat] each) to road
// geometry. Batches share a boundary waypoint and the duplicated boundary
// vertex is dropped when concatenating.
func (c *MapboxClient) GetDirections(ctx context.Context, waypoints [][]float64) (*models.DirectionsResult, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("directions require at least two waypoints")
	}

	result := &models.DirectionsResult{}

	for _, batch := range batchWaypoints(waypoints, maxWaypointsPerRequest) {
		leg, err := c.fetchBatch(ctx, batch)
		if err != nil {
			return nil, err
		}

		result.Geometry = appendGeometry(result.Geometry, leg.Geometry)
		result.DistanceMeters += leg.DistanceMeters
		result.DurationSeconds += leg.DurationSeconds
	}

	return result, nil
}

// fetchBatch requests road geometry for one batch of <= 25 waypoints
func (c *MapboxClient) fetchBatch(ctx context.Context, batch [][]float64) (*models.DirectionsResult, error) {
	coords := make([]string, len(batch))
	for i, wp := range batch {
		coords[i] = fmt.Sprintf("%.6f,%.6f", wp[0], wp[1])
	}

	query := url.Values{}
	query.Set("geometries", "geojson")
	query.Set("overview", "full")
	query.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?%s",
		c.client.BaseURL, c.profile, strings.Join(coords, ";"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directions request: %w", err)
	}

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("directions HTTP error: %d: %s", resp.StatusCode, payload)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if len(directions.Routes) == 0 {
		return nil, fmt.Errorf("directions returned no routes (code %s)", directions.Code)
	}

	route := directions.Routes[0]
	return &models.DirectionsResult{
		Geometry:        route.Geometry.Coordinates,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}

// batchWaypoints splits waypoints into batches of at most size entries.
// Consecutive batches share their boundary waypoint so the road geometry
// joins up.
func batchWaypoints(waypoints [][]float64, size int) [][][]float64 {
	if len(waypoints) <= size {
		return [][][]float64{waypoints}
	}

	var batches [][][]float64
	start := 0
	for start < len(waypoints)-1 {
		end := start + size
		if end > len(waypoints) {
			end = len(waypoints)
		}
		batches = append(batches, waypoints[start:end])
		start = end - 1
	}

	return batches
}

// appendGeometry concatenates leg geometry, dropping the duplicated
// boundary vertex between consecutive legs
func appendGeometry(geometry, leg [][]float64) [][]float64 {
	for _, coord := range leg {
		if n := len(geometry); n > 0 {
			last := geometry[n-1]
			if len(last) >= 2 && len(coord) >= 2 && last[0] == coord[0] && last[1] == coord[1] {
				continue
			}
		}
		geometry = append(geometry, coord)
	}

	return geometry
}
