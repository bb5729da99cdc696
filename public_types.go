package client

import (
	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/stats"
	"github.com/el-eden/eleden-client/internal/suggest"
	"github.com/el-eden/eleden-client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.

// Requests
type (
	CreateReservationRequest = types.CreateReservationRequest
	SubmitSurveyRequest      = types.SubmitSurveyRequest
	ConfirmPaymentRequest    = types.ConfirmPaymentRequest
	ListParams               = types.ListParams
)

// Domain entities
type (
	Category          = types.Category
	Service           = types.Service
	Supplier          = types.Supplier
	Employee          = types.Employee
	Reservation       = types.Reservation
	Survey            = types.Survey
	AddressSuggestion = types.AddressSuggestion
)

// Responses and pagination
type (
	EnqueueAck = types.EnqueueAck

	ReservationPage = page.Page[types.Reservation]
	ServicePage     = page.Page[types.Service]
	CategoryPage    = page.Page[types.Category]
	SupplierPage    = page.Page[types.Supplier]
	EmployeePage    = page.Page[types.Employee]
	SurveyPage      = page.Page[types.Survey]

	DrainOptions = page.Options
)

// Suggestion machinery
type (
	Suggester     = suggest.Suggester
	SuggestConfig = suggest.Config
	SuggestState  = suggest.State
)

// Report building blocks
type (
	StatBucket = stats.Bucket
	StatRow    = stats.Row
)

// Errors re-exported in errors.go
