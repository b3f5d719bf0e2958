package search

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogscout/search-api/api/types"
	"github.com/blogscout/search-api/internal/models"
	"github.com/blogscout/search-api/internal/services/blogsearch"
	apperrors "github.com/blogscout/search-api/pkg/errors"
)

// Post handles blog search requests
// @Summary      Search for blog posts
// @Description  Search the upstream blog index by pattern with optional language and publication window filters
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.SearchRequest true "Search parameters"
// @Success      200 {object} types.PostSearchResponse "Matched blog posts"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      401 {object} types.ErrorResponse "API key rejected by the upstream service"
// @Failure      502 {object} types.ErrorResponse "Upstream response could not be interpreted"
// @Failure      503 {object} types.ErrorResponse "Upstream service unavailable"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout - search request timed out"
// @Router       /api/v1/search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse request body
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		query, err := buildQuery(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid search parameters",
				Details: err.Error(),
			})
			return
		}

		if deps.SearchClient == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search service not available",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		result, err := deps.SearchClient.Search(ctx, query)
		if err != nil {
			recordSearch(deps, query, nil, err)

			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search failed",
				Code:    string(apperrors.GetCode(err)),
				Details: err.Error(),
			})
			return
		}

		recordSearch(deps, query, result, nil)

		posts := types.FromBlogSearchPosts(result.Posts)
		c.JSON(http.StatusOK, types.PostSearchResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search results retrieved successfully",
			},
			Posts:           posts,
			Query:           req.Query,
			Count:           len(posts),
			Total:           result.NumberOfMatchesTotal,
			NumberOfAuthors: result.NumberOfAuthors,
			SecondsElapsed:  result.SecondsElapsed,
		})
	}
}

// buildQuery converts the request DTO into a client query
func buildQuery(req types.SearchRequest) (*blogsearch.Query, error) {
	query := &blogsearch.Query{
		Pattern:  req.Query,
		Language: req.Language,
	}

	if req.StartTime != "" {
		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return nil, err
		}
		query.StartTime = start
	}
	if req.EndTime != "" {
		end, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return nil, err
		}
		query.EndTime = end
	}

	return query, nil
}

// recordSearch logs the executed search to history, best effort. History
// failures never affect the response.
func recordSearch(deps *types.Dependencies, query *blogsearch.Query, result *blogsearch.QueryResult, searchErr error) {
	if deps.HistoryService == nil {
		return
	}

	record := &models.SearchRecord{
		Pattern:  query.Pattern,
		Language: query.Language,
	}
	if result != nil {
		record.PostsReturned = len(result.Posts)
		record.MatchesTotal = result.NumberOfMatchesTotal
		record.SecondsElapsed = result.SecondsElapsed
	}
	if searchErr != nil {
		record.Failed = true
		record.ErrorCode = string(apperrors.GetCode(searchErr))
	}

	// Detached context so a canceled request still gets logged
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := deps.HistoryService.RecordSearch(ctx, record); err != nil {
		log.Printf("[WARN] recording search history: %v", err)
	}
}
