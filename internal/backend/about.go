package backend

import (
	"context"
	"net/http"
)

// About fetches the owner profile for the public about page.
func (c *Client) About(ctx context.Context) (*About, error) {
	resp, err := c.do(ctx, http.MethodGet, "/about", "", nil)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	p, err := decodePayload(resp.body)
	if err != nil {
		return nil, err
	}

	var about About
	if err = p.field("about", &about); err != nil {
		return nil, err
	}

	return &about, nil
}

// DashboardStats fetches the aggregate numbers for the dashboard landing page.
func (c *Client) DashboardStats(ctx context.Context, token string) (*DashboardStats, error) {
	resp, err := c.do(ctx, http.MethodGet, "/dashboard/stats", token, nil)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	p, err := decodePayload(resp.body)
	if err != nil {
		return nil, err
	}

	var stats DashboardStats
	if err = p.field("stats", &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
