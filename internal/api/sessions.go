package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := c.get(ctx, "/api/v1/sessions", &sessions); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	session := new(Session)
	if err := c.get(ctx, "/api/v1/sessions/"+url.PathEscape(id), session); err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return session, nil
}

func (c *Client) CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	session := new(Session)
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", req, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (c *Client) UpdateSessionPrompt(ctx context.Context, id, prompt string) (*Session, error) {
	body := map[string]string{"initial_prompt": prompt}
	session := new(Session)
	if err := c.do(ctx, http.MethodPut, "/api/v1/sessions/"+url.PathEscape(id), body, session); err != nil {
		return nil, fmt.Errorf("update session %s: %w", id, err)
	}
	return session, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/sessions/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
