package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListEvalRuns(ctx context.Context, labID string) ([]EvalRun, error) {
	var runs []EvalRun
	path := "/api/v1/labs/" + url.PathEscape(labID) + "/runs"
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, fmt.Errorf("list eval runs for lab %s: %w", labID, err)
	}
	return runs, nil
}

func (c *Client) ListCases(ctx context.Context, runID string) ([]DatasetCase, error) {
	var cases []DatasetCase
	path := "/api/v1/runs/" + url.PathEscape(runID) + "/cases"
	if err := c.get(ctx, path, &cases); err != nil {
		return nil, fmt.Errorf("list cases for run %s: %w", runID, err)
	}
	return cases, nil
}
