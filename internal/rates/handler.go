package rates

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/splitbuddy/splitbuddy/pkg/money"
	"github.com/splitbuddy/splitbuddy/pkg/response"
)

// Handler handles HTTP requests for exchange rate lookups
type Handler struct {
	client Client
}

// NewHandler creates a new rates handler over an injected client
func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

// Routes returns the router for rate endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{base}", h.Latest)
	r.Get("/{base}/convert", h.Convert)

	return r
}

// Latest handles GET /rates/{base}
// @Summary      Get conversion rates
// @Description  Fetch the latest conversion rates for a base currency
// @Tags         rates
// @Produce      json
// @Param        base path string true "3-letter base currency code"
// @Success      200 {object} response.APIResponse{data=Rates}
// @Failure      400 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /rates/{base} [get]
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	rates, err := h.client.Latest(r.Context(), chi.URLParam(r, "base"))
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadGateway(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, rates)
}

// convertResponse is the payload for a single conversion.
type convertResponse struct {
	Base      string `json:"base"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Converted string `json:"converted"`
}

// Convert handles GET /rates/{base}/convert?to=XXX&amount=12.50
// @Summary      Convert an amount
// @Description  Convert an amount from the base currency to a target currency at the latest rate
// @Tags         rates
// @Produce      json
// @Param        base path string true "3-letter base currency code"
// @Param        to query string true "3-letter target currency code"
// @Param        amount query string true "Amount in the base currency"
// @Success      200 {object} response.APIResponse{data=convertResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /rates/{base}/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if !Supported(to) {
		response.BadRequest(w, "Invalid target currency code")
		return
	}

	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil || amount.IsNegative() {
		response.BadRequest(w, "Invalid amount")
		return
	}

	rates, err := h.client.Latest(r.Context(), chi.URLParam(r, "base"))
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadGateway(w, err.Error())
		return
	}

	converted, err := rates.Convert(amount, to)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, convertResponse{
		Base:      rates.Base,
		To:        normalize(to),
		Amount:    amount.String(),
		Converted: money.Format(converted),
	})
}
