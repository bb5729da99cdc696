package api

import (
	"context"
	"net/http"

	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/types"
)

// ListEmployees retrieves one page of employees.
func ListEmployees(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Employee], error) {
	return fetchPage[types.Employee](ctx, httpClient, baseURL, "/api/employees/", "list employees", p)
}

// GetEmployee retrieves a single employee by ID.
func GetEmployee(ctx context.Context, httpClient *http.Client, baseURL, employeeID string) (*types.Employee, error) {
	if err := types.ValidateIDPresent(employeeID, "employeeId"); err != nil {
		return nil, err
	}
	return fetchOne[types.Employee](ctx, httpClient, baseURL, "/api/employees/"+employeeID+"/", "get employee")
}
