package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/service"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/page"
)

const msgActionFailed = "Sorry, that did not work. Please try again."

// Notifications is both ends of the notification sink
type Notifications interface {
	domain.Notifier
	NotificationSource
}

// PageHandler serves the server-rendered storefront
type PageHandler struct {
	service       *service.StorefrontService
	notifications Notifications
	logger        *slog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(service *service.StorefrontService, notifications Notifications, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		service:       service,
		notifications: notifications,
		logger:        logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := h.service.State(r.Context())
	templ.Handler(page.Storefront(state, h.notifications.Active())).ServeHTTP(w, r)
}

// Action handles POST /ui/actions. Failures surface as an error
// notification; the browser is always sent back to the page.
func (h *PageHandler) Action(w http.ResponseWriter, r *http.Request) {
	if err := h.dispatch(r); err != nil {
		h.logger.WarnContext(r.Context(), "Page action failed",
			slog.String("error", err.Error()),
		)
		h.notifications.Notify(r.Context(), msgActionFailed, domain.SeverityError)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) dispatch(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	req := dto.ActionRequest{
		Kind:      r.PostFormValue("kind"),
		ProductID: r.PostFormValue("product_id"),
		Criterion: r.PostFormValue("criterion"),
	}
	if q := r.PostFormValue("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return err
		}
		req.Quantity = &n
	}

	action, err := req.ToAction()
	if err != nil {
		return err
	}

	_, err = h.service.Dispatch(r.Context(), action)
	return err
}
