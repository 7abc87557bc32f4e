package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/service"
	"github.com/mrops-br/storefront-api/internal/app/view"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/response"
)

// NotificationSource lists the notifications currently on screen
type NotificationSource interface {
	Active() []domain.Notification
}

// StorefrontHandler handles the JSON API of the storefront
type StorefrontHandler struct {
	service       *service.StorefrontService
	notifications NotificationSource
	logger        *slog.Logger
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(service *service.StorefrontService, notifications NotificationSource, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service:       service,
		notifications: notifications,
		logger:        logger,
	}
}

// GetState handles GET /api/state
func (h *StorefrontHandler) GetState(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.State(r.Context()))
}

// ListProducts handles GET /api/products?sort=
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criterion, err := domain.ParseSortCriterion(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	catalog, err := h.service.Catalog(r.Context(), criterion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, catalog)
}

// GetProduct handles GET /api/products/{id}
func (h *StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// SortCatalog handles POST /api/catalog/sort
func (h *StorefrontHandler) SortCatalog(w http.ResponseWriter, r *http.Request) {
	var req dto.SortRequest
	if !h.decode(w, r, &req) {
		return
	}

	criterion, err := domain.ParseSortCriterion(req.Criterion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	state, err := h.service.SortCatalog(r.Context(), criterion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, state)
}

// GetCart handles GET /api/cart
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Cart(r.Context()))
}

// AddToCart handles POST /api/cart/items/{id}
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.AddToCart(r.Context(), chi.URLParam(r, "id")))
}

// SetCartQuantity handles PUT /api/cart/items/{id}
func (h *StorefrontHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.SetQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		h.fail(w, r, dto.ErrQuantityRequired)
		return
	}

	response.JSON(w, http.StatusOK, h.service.SetCartQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity))
}

// RemoveFromCart handles DELETE /api/cart/items/{id}
func (h *StorefrontHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.RemoveFromCart(r.Context(), chi.URLParam(r, "id")))
}

// ShowProductDetail handles PUT /api/detail/{id}
func (h *StorefrontHandler) ShowProductDetail(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ShowProductDetail(r.Context(), chi.URLParam(r, "id")))
}

// HideProductDetail handles DELETE /api/detail
func (h *StorefrontHandler) HideProductDetail(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.HideProductDetail(r.Context()))
}

// Checkout handles POST /api/checkout
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Checkout(r.Context()))
}

// Dispatch handles POST /api/actions
func (h *StorefrontHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	action, err := req.ToAction()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.service.Dispatch(r.Context(), action)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// ListNotifications handles GET /api/notifications
func (h *StorefrontHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.ToNotificationResponseList(h.notifications.Active()))
}

func (h *StorefrontHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, r, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (h *StorefrontHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed",
			slog.String("error", err.Error()),
		)
	}
	response.Error(w, r, status, err)
}

// StatusFor maps domain errors to HTTP status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSortCriterion),
		errors.Is(err, domain.ErrInvalidProductID),
		errors.Is(err, view.ErrUnknownAction),
		errors.Is(err, dto.ErrQuantityRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
