package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func nextmvConfig(baseURL string) models.NextmvConfig {
	return models.NextmvConfig{
		BaseURL:       baseURL,
		APIKey:        "key-123",
		ApplicationID: "routing-app",
		PollInterval:  0,
		PollTimeout:   5,
	}
}

func TestStartRun_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/applications/routing-app/runs", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))

		var body struct {
			Input *models.SolverInput `json:"input"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Input.Stops, 1)

		json.NewEncoder(w).Encode(map[string]string{"run_id": "run-abc"})
	}))
	defer server.Close()

	client := NewNextmvClient(nextmvConfig(server.URL))

	input := &models.SolverInput{
		Stops: []models.SolverStop{{ID: "P1", Location: models.GeoPoint{Lon: 106.8, Lat: -6.2}}},
	}
	runID, err := client.StartRun(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "run-abc", runID)
}

func TestStartRun_MissingRunID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewNextmvClient(nextmvConfig(server.URL))

	runID, err := client.StartRun(context.Background(), &models.SolverInput{})

	assert.Error(t, err)
	assert.Empty(t, runID)
}

func TestWaitForRun_PollsUntilSucceeded(t *testing.T) {
	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/applications/routing-app/runs/run-abc", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))

		polls++
		status := "running"
		if polls >= 3 {
			status = "succeeded"
		}

		resp := map[string]interface{}{
			"metadata": map[string]string{"status": status},
		}
		if status == "succeeded" {
			resp["output"] = map[string]interface{}{
				"solutions": []models.SolverOutput{
					{Vehicles: []models.SolverRoute{{ID: "v1", RouteTravelDistance: 9000}}},
				},
			}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewNextmvClient(nextmvConfig(server.URL))

	output, err := client.WaitForRun(context.Background(), "run-abc")

	assert.NoError(t, err)
	assert.Equal(t, 3, polls)
	assert.Len(t, output.Vehicles, 1)
	assert.Equal(t, 9000.0, output.Vehicles[0].RouteTravelDistance)
}

func TestWaitForRun_Failed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]string{"status": "failed"},
		})
	}))
	defer server.Close()

	client := NewNextmvClient(nextmvConfig(server.URL))

	output, err := client.WaitForRun(context.Background(), "run-abc")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed")
}

func TestWaitForRun_SucceededWithoutSolutions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]string{"status": "succeeded"},
			"output":   map[string]interface{}{"solutions": []models.SolverOutput{}},
		})
	}))
	defer server.Close()

	client := NewNextmvClient(nextmvConfig(server.URL))

	output, err := client.WaitForRun(context.Background(), "run-abc")

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestWaitForRun_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]string{"status": "running"},
		})
	}))
	defer server.Close()

	cfg := nextmvConfig(server.URL)
	cfg.PollInterval = 1
	client := NewNextmvClient(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output, err := client.WaitForRun(ctx, "run-abc")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, output)
}
