package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/jbjulia/mccmnc/api/v1"
)

// GetUpdate returns the state of the ingestion pipeline
// (GET /update)
func (h *Handler) GetUpdate(c *gin.Context) {
	done, total := h.updateSrv.BuildProgress()
	c.JSON(http.StatusOK, v1.NewUpdateStatus(h.updateSrv.Status(), done, total))
}

// StartUpdate starts an update in the background
// (POST /update)
func (h *Handler) StartUpdate(c *gin.Context) {
	if err := h.updateSrv.Start(); err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			zap.S().Named("update_handler").Errorw("failed to start update", "error", err)
		}
		c.JSON(status, v1.Error{Error: err.Error()})
		return
	}

	done, total := h.updateSrv.BuildProgress()
	c.JSON(http.StatusAccepted, v1.NewUpdateStatus(h.updateSrv.Status(), done, total))
}

// GetHealth reports liveness
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, v1.Health{
		Status:   "ok",
		Updating: h.updateSrv.Busy(),
	})
}
