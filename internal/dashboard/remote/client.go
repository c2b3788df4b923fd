// Package remote reads dashboard documents from the external API that
// produces them.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/dietdash/internal/dashboard"
)

const maxBodyBytes = 4 << 20

// Client implements dashboard.Reader over plain GET requests:
//
//	GET {endpoint}/profile?id={userID}
//	GET {endpoint}/diets?user_id={userID}
//	GET {endpoint}/meals?user_id={userID}
//
// A 404 maps to dashboard.ErrNotFound.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("api endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api endpoint: unsupported scheme %q", u.Scheme)
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) get(ctx context.Context, path, param, userID string, out any) error {
	q := url.Values{}
	q.Set(param, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return dashboard.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

func (c *Client) Profile(ctx context.Context, userID string) (*dashboard.Profile, error) {
	p := &dashboard.Profile{}
	if err := c.get(ctx, "/profile", "id", userID, p); err != nil {
		return nil, err
	}
	if err := dashboard.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) DietPlan(ctx context.Context, userID string) (*dashboard.DietPlan, error) {
	d := &dashboard.DietPlan{}
	if err := c.get(ctx, "/diets", "user_id", userID, d); err != nil {
		return nil, err
	}
	if err := dashboard.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *Client) MealLog(ctx context.Context, userID string) (*dashboard.MealLog, error) {
	l := &dashboard.MealLog{}
	if err := c.get(ctx, "/meals", "user_id", userID, l); err != nil {
		return nil, err
	}
	if err := dashboard.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}
