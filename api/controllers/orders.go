package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/api/responses"
	"github.com/darziapp/darzi-backend/api/validators"
	"github.com/darziapp/darzi-backend/internal/orders"
	"github.com/darziapp/darzi-backend/pkg/enums"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/logger"
)

type orderItemRequest struct {
	Description  string          `json:"description" validate:"required"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	Qty          int             `json:"qty,omitempty"`
}

type orderCreateRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	TailorID   *string            `json:"tailor_id,omitempty" validate:"omitempty,uuid"`
	Category   string             `json:"category,omitempty"`
	Total      *decimal.Decimal   `json:"total,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	PlacedAt   *time.Time         `json:"placed_at,omitempty"`
	DueAt      *time.Time         `json:"due_at,omitempty"`
	Items      []orderItemRequest `json:"items,omitempty" validate:"dive"`
}

func (r orderCreateRequest) toInput() (orders.CreateOrderInput, error) {
	customerID, err := uuid.Parse(strings.TrimSpace(r.CustomerID))
	if err != nil {
		return orders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer_id")
	}

	input := orders.CreateOrderInput{
		CustomerID: customerID,
		Total:      r.Total,
		Notes:      r.Notes,
		PlacedAt:   r.PlacedAt,
		DueAt:      r.DueAt,
	}

	if r.TailorID != nil {
		tailorID, err := uuid.Parse(strings.TrimSpace(*r.TailorID))
		if err != nil {
			return orders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tailor_id")
		}
		input.TailorID = &tailorID
	}
	if category := strings.TrimSpace(r.Category); category != "" {
		parsed, err := enums.ParseOrderCategory(category)
		if err != nil {
			return orders.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order category")
		}
		input.Category = parsed
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, orders.CreateOrderItemDTO{
			Description:  item.Description,
			MaterialCost: item.MaterialCost,
			Qty:          item.Qty,
		})
	}
	return input, nil
}

type orderUpdateRequest struct {
	TailorID *string          `json:"tailor_id,omitempty" validate:"omitempty,uuid"`
	Category *string          `json:"category,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
	DueAt    *time.Time       `json:"due_at,omitempty"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderCreate books an order, optionally with its garment line items.
func OrderCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), shopID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func OrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetByID(r.Context(), shopID, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// OrderList pages through shop orders, optionally filtered by status and
// customer.
func OrderList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var filter orders.ListFilter
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status"))
				return
			}
			filter.Status = &status
		}
		customerID, err := validators.ParseQueryUUID(r, "customer_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if customerID != uuid.Nil {
			filter.CustomerID = &customerID
		}

		page, err := svc.List(r.Context(), shopID, filter, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

func OrderUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orders.UpdateOrderInput{
			Total: payload.Total,
			Notes: payload.Notes,
			DueAt: payload.DueAt,
		}
		if payload.TailorID != nil {
			tailorID, err := uuid.Parse(strings.TrimSpace(*payload.TailorID))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tailor_id"))
				return
			}
			input.TailorID = &tailorID
		}
		if payload.Category != nil {
			category, err := enums.ParseOrderCategory(strings.TrimSpace(*payload.Category))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order category"))
				return
			}
			input.Category = &category
		}

		updated, err := svc.Update(r.Context(), shopID, id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// OrderUpdateStatus advances an order through its workflow. Delivered and
// cancelled are terminal.
func OrderUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status"))
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), shopID, id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}
