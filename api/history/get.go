package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogscout/search-api/api/types"
)

const maxRecentLimit = 100

// GetRecent handles recent search history requests
// @Summary      List recent searches
// @Description  Returns the most recently executed searches, newest first
// @Tags         history
// @Produce      json
// @Param        limit query int false "Maximum number of records to return (default 20, max 100)"
// @Success      200 {object} types.SearchHistoryResponse "Recent searches"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid limit"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history/recent [get]
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Limit must be a positive integer",
				})
				return
			}
			limit = parsed
		}
		if limit > maxRecentLimit {
			limit = maxRecentLimit
		}

		if deps.HistoryService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search history not available",
			})
			return
		}

		records, err := deps.HistoryService.Recent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load search history",
				Details: err.Error(),
			})
			return
		}

		searches := types.FromSearchRecords(records)
		c.JSON(http.StatusOK, types.SearchHistoryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Recent searches retrieved successfully",
			},
			Searches: searches,
			Count:    len(searches),
		})
	}
}
