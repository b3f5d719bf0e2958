package history

import (
	"github.com/gin-gonic/gin"

	"github.com/blogscout/search-api/api/types"
)

// RegisterRoutes registers search history routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/recent", GetRecent(deps))
}
