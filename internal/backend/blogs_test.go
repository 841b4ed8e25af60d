package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogs_WithPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "go,web", r.URL.Query().Get("tags"))

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"blogs": [{"id": "b1", "title": "First", "slug": "first"}],
				"pagination": {"page": 2, "limit": 10, "total": 42, "totalPages": 5}
			}
		}`))
	})

	blogs, pagination, err := client.Blogs(context.Background(), "tok", BlogListParams{
		Page: 2,
		Tags: []string{"go", "web"},
	})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "first", blogs[0].Slug)
	require.NotNil(t, pagination)
	assert.Equal(t, 42, pagination.Total)
}

func TestBlogs_WithoutPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"blogs": []}`))
	})

	blogs, pagination, err := client.Blogs(context.Background(), "tok", BlogListParams{})
	require.NoError(t, err)
	assert.Empty(t, blogs)
	assert.Nil(t, pagination)
}

func TestBlogs_MalformedList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"blogs": "not a list"}`))
	})

	_, _, err := client.Blogs(context.Background(), "tok", BlogListParams{})
	require.ErrorIs(t, err, ErrUnrecognizedResponseShape)
}

func TestDeleteBlog_RequestFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "boom"}`))
	})

	err := client.DeleteBlog(context.Background(), "tok", "b1")
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "boom")
}
