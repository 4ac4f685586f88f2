package bill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitbuddy/splitbuddy/internal/bill/split"
	"github.com/splitbuddy/splitbuddy/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /bills
// @Summary      Create a new bill
// @Description  Assemble a bill with per-person amounts resolved by the EQUAL or ITEMIZED strategy, then persist it
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.service.CreateBill(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// List handles GET /bills
// @Summary      List bills
// @Description  Get all persisted bills sorted by date, newest first
// @Tags         bills
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BillResponse}
// @Router       /bills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.ListBills(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list bills")
		return
	}

	billResponses := make([]*BillResponse, len(bills))
	for i, b := range bills {
		billResponses[i] = b.ToResponse()
	}

	response.JSON(w, http.StatusOK, billResponses)
}

// GetByID handles GET /bills/{id}
// @Summary      Get bill by ID
// @Description  Get a persisted bill with its resolved per-person amounts
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.service.GetBillByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Description  Remove a persisted bill record
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteBill(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted successfully"})
}

// isValidationError reports whether the error names a rule the user must
// correct, as opposed to an internal failure.
func isValidationError(err error) bool {
	return errors.Is(err, split.ErrEmptyParticipants) ||
		errors.Is(err, split.ErrNoValidItems) ||
		errors.Is(err, split.ErrInvalidTaxRate) ||
		errors.Is(err, split.ErrUnassignedItem) ||
		errors.Is(err, split.ErrUnknownSplitMode) ||
		errors.Is(err, ErrDuplicateParticipant)
}
