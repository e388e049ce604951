package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
	"github.com/weiawesome/wes-io-live/gif-service/internal/service"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/log"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/response"
)

// Handler handles HTTP requests for the gif service.
type Handler struct {
	gifService service.GifService
}

// NewHandler creates a new HTTP handler.
func NewHandler(gifService service.GifService) *Handler {
	return &Handler{
		gifService: gifService,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/gifs/search", h.Search)
	}
}

// Search handles GIF search. A blank q yields an empty result list.
func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l.Warn().Err(err).Msg("invalid gif search request")
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.gifService.Search(ctx, req.Query, req.Limit))
}
