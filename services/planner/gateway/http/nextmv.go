package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/radityabs/rutevis/internal/pkg/http"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// NextmvClient talks to the Nextmv cloud API: it starts application runs
// and polls them until they reach a terminal state. The API key is injected
// server-side; browsers never see it.
type NextmvClient struct {
	client        *httpclient.BearerClient
	applicationID string
	pollInterval  time.Duration
	pollTimeout   time.Duration
}

// NewNextmvClient creates a new Nextmv cloud API client
func NewNextmvClient(cfg models.NextmvConfig) *NextmvClient {
	client := httpclient.NewBearerClient(cfg.BaseURL, cfg.APIKey, "nextmv")
	client.SetTimeout(60 * time.Second)

	return &NextmvClient{
		client:        client,
		applicationID: cfg.ApplicationID,
		pollInterval:  time.Duration(cfg.PollInterval) * time.Second,
		pollTimeout:   time.Duration(cfg.PollTimeout) * time.Second,
	}
}

type runRequest struct {
	Input *models.SolverInput `json:"input"`
}

type runResponse struct {
	RunID string `json:"run_id"`
}

type runStatus struct {
	Metadata struct {
		Status string `json:"status"`
	} `json:"metadata"`
	Output struct {
		Solutions []models.SolverOutput `json:"solutions"`
	} `json:"output"`
}

// StartRun posts the solver input and returns the external run id
func (c *NextmvClient) StartRun(ctx context.Context, input *models.SolverInput) (string, error) {
	endpoint := fmt.Sprintf("/v1/applications/%s/runs", c.applicationID)

	var resp runResponse
	if err := c.client.PostJSON(ctx, endpoint, runRequest{Input: input}, &resp); err != nil {
		return "", fmt.Errorf("failed to start solver run: %w", err)
	}
	if resp.RunID == "" {
		return "", fmt.Errorf("solver did not return a run id")
	}

	return resp.RunID, nil
}

// WaitForRun polls the run until it succeeds, fails, or the poll timeout
// elapses. The first solution of a succeeded run is returned.
func (c *NextmvClient) WaitForRun(ctx context.Context, runID string) (*models.SolverOutput, error) {
	endpoint := fmt.Sprintf("/v1/applications/%s/runs/%s", c.applicationID, runID)
	deadline := time.Now().Add(c.pollTimeout)

	for {
		var status runStatus
		if err := c.client.GetJSON(ctx, endpoint, &status); err != nil {
			return nil, fmt.Errorf("failed to poll solver run: %w", err)
		}

		switch status.Metadata.Status {
		case "succeeded":
			if len(status.Output.Solutions) == 0 {
				return nil, fmt.Errorf("solver run %s succeeded without solutions", runID)
			}
			return &status.Output.Solutions[0], nil
		case "failed", "canceled":
			return nil, fmt.Errorf("solver run %s ended with status %s", runID, status.Metadata.Status)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for solver run %s", runID)
		}

		logger.Debug("Solver run still in progress",
			logger.String("run_id", runID),
			logger.String("status", status.Metadata.Status))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}
