package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/jbjulia/mccmnc/api/v1"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

// GetPlmn returns the networks matching the query filters
// (GET /plmn)
func (h *Handler) GetPlmn(c *gin.Context, params v1.GetPlmnParams) {
	result, err := h.lookupSrv.Lookup(c.Request.Context(), params.ToLookupParams())
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		switch {
		case srvErrors.IsStoreNotFoundError(err):
			msg = "store not available, run an update first"
		case status == http.StatusInternalServerError:
			msg = "failed to look up networks"
		}
		if status >= http.StatusInternalServerError {
			zap.S().Named("plmn_handler").Errorw("failed to look up networks", "error", err)
		}
		c.JSON(status, v1.Error{Error: msg})
		return
	}

	c.JSON(http.StatusOK, v1.NewNetworkList(result))
}
