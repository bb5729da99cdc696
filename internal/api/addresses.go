package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/el-eden/eleden-client/internal/types"
)

// SuggestAddresses runs one address lookup against the suggest endpoint.
// The debounced suggester calls this; it can also be used directly for
// one-shot lookups. The query is sent as given; trimming and minimum-length
// policy belong to the caller.
func SuggestAddresses(ctx context.Context, httpClient *http.Client, baseURL, query string, limit int) ([]types.AddressSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := fmt.Sprintf("%s/api/addresses/suggest?%s", baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest addresses: status %d", resp.StatusCode)
	}
	var sr types.SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	// Absent results array degrades to an empty list, never nil-pointer UI.
	if sr.Results == nil {
		return []types.AddressSuggestion{}, nil
	}
	return sr.Results, nil
}
