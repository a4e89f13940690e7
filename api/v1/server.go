package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /plmn)
	GetPlmn(c *gin.Context, params GetPlmnParams)
	// (GET /update)
	GetUpdate(c *gin.Context)
	// (POST /update)
	StartUpdate(c *gin.Context)
	// (GET /health)
	GetHealth(c *gin.Context)
}

// RegisterHandlers mounts every route of ServerInterface on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/plmn", func(c *gin.Context) {
		var params GetPlmnParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
			return
		}
		si.GetPlmn(c, params)
	})
	router.GET("/update", si.GetUpdate)
	router.POST("/update", si.StartUpdate)
	router.GET("/health", si.GetHealth)
}
