package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// BlogListParams narrow down a blog listing.
type BlogListParams struct {
	Page   int
	Limit  int
	Search string
	Tags   []string
}

func (p BlogListParams) query() string {
	values := url.Values{}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Search != "" {
		values.Set("search", p.Search)
	}

	if len(p.Tags) > 0 {
		values.Set("tags", strings.Join(p.Tags, ","))
	}

	if len(values) == 0 {
		return ""
	}

	return "?" + values.Encode()
}

// Blogs lists blog posts. Pagination info is nil when the API omits it.
func (c *Client) Blogs(ctx context.Context, token string, params BlogListParams) ([]Blog, *Pagination, error) {
	resp, err := c.do(ctx, http.MethodGet, "/blogs"+params.query(), token, nil)
	if err != nil {
		return nil, nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, nil, err
	}

	p, err := decodePayload(resp.body)
	if err != nil {
		return nil, nil, err
	}

	var blogs []Blog
	if err = p.field("blogs", &blogs); err != nil {
		return nil, nil, err
	}

	var pagination Pagination

	found, err := p.optionalField("pagination", &pagination)
	if err != nil {
		return nil, nil, err
	}

	if !found {
		return blogs, nil, nil
	}

	return blogs, &pagination, nil
}

// Blog fetches a single blog post by ID or slug.
func (c *Client) Blog(ctx context.Context, token, idOrSlug string) (*Blog, error) {
	resp, err := c.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(idOrSlug), token, nil)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeBlog(resp.body)
}

// CreateBlog creates a new blog post.
func (c *Client) CreateBlog(ctx context.Context, token string, input *BlogInput) (*Blog, error) {
	resp, err := c.do(ctx, http.MethodPost, "/blogs", token, input)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeBlog(resp.body)
}

// UpdateBlog updates an existing blog post.
func (c *Client) UpdateBlog(ctx context.Context, token, id string, input *BlogInput) (*Blog, error) {
	resp, err := c.do(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeBlog(resp.body)
}

// DeleteBlog deletes a blog post.
func (c *Client) DeleteBlog(ctx context.Context, token, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

// BlogSlugs lists the slugs of all published blog posts.
func (c *Client) BlogSlugs(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/blogs/slugs", "", nil)
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

	var slugs []string
	if err = p.field("slugs", &slugs); err != nil {
		return nil, err
	}

	return slugs, nil
}

func decodeBlog(body []byte) (*Blog, error) {
	p, err := decodePayload(body)
	if err != nil {
		return nil, err
	}

	var blog Blog
	if err = p.field("blog", &blog); err != nil {
		return nil, err
	}

	return &blog, nil
}
