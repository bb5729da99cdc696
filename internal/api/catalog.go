package api

import (
	"context"
	"net/http"

	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/types"
)

// ListServices retrieves one page of the service catalogue.
func ListServices(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Service], error) {
	return fetchPage[types.Service](ctx, httpClient, baseURL, "/api/services/", "list services", p)
}

// GetService retrieves a single service by ID.
func GetService(ctx context.Context, httpClient *http.Client, baseURL, serviceID string) (*types.Service, error) {
	if err := types.ValidateIDPresent(serviceID, "serviceId"); err != nil {
		return nil, err
	}
	return fetchOne[types.Service](ctx, httpClient, baseURL, "/api/services/"+serviceID+"/", "get service")
}

// ListCategories retrieves one page of service categories.
func ListCategories(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Category], error) {
	return fetchPage[types.Category](ctx, httpClient, baseURL, "/api/categories/", "list categories", p)
}

// ListSuppliers retrieves one page of suppliers.
func ListSuppliers(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Supplier], error) {
	return fetchPage[types.Supplier](ctx, httpClient, baseURL, "/api/suppliers/", "list suppliers", p)
}
