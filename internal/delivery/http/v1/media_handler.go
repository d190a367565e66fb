package v1

import (
	"net/http"
	"strconv"

	"agroflow-backend/internal/domain"
	"agroflow-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	newsUC  domain.NewsUsecase
	videoUC domain.VideoUsecase
}

func NewMediaHandler(public *gin.RouterGroup, newsUC domain.NewsUsecase, videoUC domain.VideoUsecase) {
	handler := &MediaHandler{
		newsUC:  newsUC,
		videoUC: videoUC,
	}

	news := public.Group("/news")
	{
		news.GET("", handler.ListNews)
		news.GET("/yto", handler.ListVideos)
	}
}

// queryInt parses an integer query parameter, returning def when it is
// missing or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// ListNews godoc
// @Summary      Water in agriculture news
// @Description  Curated news feed in random order.
// @Tags         news
// @Produce      json
// @Param        limit  query  int  false  "Number of items (default 20, max 50)"
// @Success      200  {array}  domain.NewsItem
// @Router       /news [get]
func (h *MediaHandler) ListNews(c *gin.Context) {
	limit := queryInt(c, "limit", usecase.DefaultNewsLimit)
	c.JSON(http.StatusOK, h.newsUC.Latest(c.Request.Context(), limit))
}

// ListVideos godoc
// @Summary      Irrigation videos
// @Description  YouTube search results, or a local fallback list when YouTube is unavailable.
// @Tags         news
// @Produce      json
// @Param        q    query  string  false  "Search query"
// @Param        max  query  int     false  "Number of videos (default 12, max 50)"
// @Success      200  {object}  domain.VideoList
// @Router       /news/yto [get]
func (h *MediaHandler) ListVideos(c *gin.Context) {
	max := queryInt(c, "max", usecase.DefaultVideoMax)
	c.JSON(http.StatusOK, h.videoUC.Search(c.Request.Context(), c.Query("q"), max))
}
