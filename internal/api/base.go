package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// listQuery encodes pagination parameters; zero values are omitted so the
// backend applies its own defaults.
func listQuery(p types.ListParams) string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// fetchPage performs a paginated GET against path and normalizes whichever
// pagination shape the backend answers with.
func fetchPage[T any](ctx context.Context, httpClient *http.Client, baseURL, path, operation string, p types.ListParams) (page.Page[T], error) {
	var pg page.Page[T]
	if err := ctx.Err(); err != nil {
		return pg, err
	}
	u := fmt.Sprintf("%s%s%s", baseURL, path, listQuery(p))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return pg, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return pg, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return pg, fmt.Errorf("%s: status %d", operation, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return pg, err
	}
	return pg, nil
}

// fetchOne performs a GET for a single entity. A 404 maps to ErrNotFound.
func fetchOne[T any](ctx context.Context, httpClient *http.Client, baseURL, path, operation string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, types.ErrNotFound
	default:
		return nil, fmt.Errorf("%s: status %d", operation, resp.StatusCode)
	}
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
