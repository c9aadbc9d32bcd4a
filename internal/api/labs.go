package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListLabs(ctx context.Context, sessionID string) ([]PromptLab, error) {
	path := "/api/v1/labs"
	if sessionID != "" {
		path += "?session_id=" + url.QueryEscape(sessionID)
	}
	var labs []PromptLab
	if err := c.get(ctx, path, &labs); err != nil {
		return nil, fmt.Errorf("list labs: %w", err)
	}
	return labs, nil
}

func (c *Client) GetLab(ctx context.Context, id string) (*PromptLab, error) {
	lab := new(PromptLab)
	if err := c.get(ctx, "/api/v1/labs/"+url.PathEscape(id), lab); err != nil {
		return nil, fmt.Errorf("get lab %s: %w", id, err)
	}
	return lab, nil
}

func (c *Client) ListPromptVersions(ctx context.Context, labID string) ([]PromptVersion, error) {
	var versions []PromptVersion
	path := "/api/v1/labs/" + url.PathEscape(labID) + "/versions"
	if err := c.get(ctx, path, &versions); err != nil {
		return nil, fmt.Errorf("list prompt versions for lab %s: %w", labID, err)
	}
	return versions, nil
}

func (c *Client) GetPromptVersion(ctx context.Context, labID string, version int) (*PromptVersion, error) {
	pv := new(PromptVersion)
	path := "/api/v1/labs/" + url.PathEscape(labID) + "/versions/" + strconv.Itoa(version)
	if err := c.get(ctx, path, pv); err != nil {
		return nil, fmt.Errorf("get prompt version %d of lab %s: %w", version, labID, err)
	}
	return pv, nil
}

func (c *Client) CreatePromptVersion(ctx context.Context, labID, content string) (*PromptVersion, error) {
	body := map[string]string{"content": content}
	pv := new(PromptVersion)
	path := "/api/v1/labs/" + url.PathEscape(labID) + "/versions"
	if err := c.do(ctx, http.MethodPost, path, body, pv); err != nil {
		return nil, fmt.Errorf("create prompt version for lab %s: %w", labID, err)
	}
	return pv, nil
}
