package backend

import (
	"context"
	"net/http"
	"net/url"
)

// Projects lists all portfolio projects.
func (c *Client) Projects(ctx context.Context, token string) ([]Project, error) {
	resp, err := c.do(ctx, http.MethodGet, "/projects", token, nil)
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

	var projects []Project
	if err = p.field("projects", &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// Project fetches a single project by ID.
func (c *Client) Project(ctx context.Context, token, id string) (*Project, error) {
	resp, err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeProject(resp.body)
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, token string, input *ProjectInput) (*Project, error) {
	resp, err := c.do(ctx, http.MethodPost, "/projects", token, input)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeProject(resp.body)
}

// UpdateProject updates an existing project.
func (c *Client) UpdateProject(ctx context.Context, token, id string, input *ProjectInput) (*Project, error) {
	resp, err := c.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeProject(resp.body)
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func decodeProject(body []byte) (*Project, error) {
	p, err := decodePayload(body)
	if err != nil {
		return nil, err
	}

	var project Project
	if err = p.field("project", &project); err != nil {
		return nil, err
	}

	return &project, nil
}
