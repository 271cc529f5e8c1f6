package http

import (
	"net/http"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/utils"
)

const (
	healthUp   = "UP"
	healthDown = "DOWN"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.health").Msg("health check failed")
		utils.WriteJSON(w, healthResponse{Status: healthDown}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: healthUp}, http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
