package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"investing/src/clients/marketdata"
	"investing/src/repositories"
	"investing/src/services"
	"investing/src/utils"
)

type Handler struct {
	Ledger          *services.LedgerService
	Recommendations *services.RecommendationService
	Market          services.PriceOracle
	ETFs            repositories.ETFRepository
}

func NewHandler(
	ledger *services.LedgerService,
	recommendations *services.RecommendationService,
	market services.PriceOracle,
	etfs repositories.ETFRepository,
) *Handler {
	return &Handler{
		Ledger:          ledger,
		Recommendations: recommendations,
		Market:          market,
		ETFs:            etfs,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps the service error taxonomy onto transport codes.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var invalidArgument *services.InvalidArgumentError
	var configuration *services.ConfigurationError

	switch {
	case errors.As(err, &invalidArgument):
		utils.WriteError(w, utils.BadRequest(err.Error()))
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrHoldingNotFound),
		errors.Is(err, marketdata.ErrTickerNotFound):
		utils.WriteError(w, utils.NotFound(err.Error()))
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInsufficientShares):
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
	case errors.Is(err, marketdata.ErrProviderUnavailable):
		utils.WriteError(w, utils.ServiceUnavailable(err.Error()))
	case errors.As(err, &configuration):
		utils.WriteError(w, utils.InternalServerError(err.Error()))
	default:
		utils.WriteError(w, utils.InternalServerError("internal server error"))
	}
}
