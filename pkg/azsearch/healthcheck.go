package azsearch

import (
	"context"
	"errors"
)

// ServiceStatistics reports resource usage and limits of the search service.
type ServiceStatistics struct {
	Counters map[string]ServiceCounter `json:"counters"`
	Limits   map[string]int64          `json:"limits"`
}

// ServiceCounter is one usage/quota pair from the service statistics.
type ServiceCounter struct {
	Usage int64  `json:"usage"`
	Quota *int64 `json:"quota"`
}

// GetServiceStatistics fetches usage counters and limits for the service.
func (c *Client) GetServiceStatistics(ctx context.Context) (*ServiceStatistics, error) {
	var stats ServiceStatistics
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get("/servicestats")
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrRequestFailed); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Healthcheck returns a function suitable for liveness/readiness probes.
// The returned function fetches service statistics to verify the endpoint is
// reachable and the credential is accepted, and is safe for concurrent use
// in HTTP health endpoints.
func Healthcheck(client *Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.GetServiceStatistics(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
