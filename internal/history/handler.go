package history

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitbuddy/splitbuddy/internal/bill"
	"github.com/splitbuddy/splitbuddy/pkg/response"
)

// Handler handles HTTP requests for bill history
type Handler struct {
	service *Service
}

// NewHandler creates a new history handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for history endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}

// List handles GET /history
// @Summary      List bill summaries
// @Description  Re-derive display-ready totals for all persisted bills, newest first
// @Tags         history
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Summary}
// @Failure      409 {object} response.APIResponse
// @Router       /history [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, ErrInconsistentBillData) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list bill summaries")
		return
	}

	response.JSON(w, http.StatusOK, summaries)
}

// GetByID handles GET /history/{id}
// @Summary      Get one bill summary
// @Description  Re-derive the display totals and per-person breakdown for a persisted bill
// @Tags         history
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.APIResponse{data=Summary}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /history/{id} [get]
// @Router       /bills/{id}/summary [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.service.Summarize(r.Context(), id)
	if err != nil {
		if errors.Is(err, bill.ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInconsistentBillData) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to summarize bill")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
