package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetPopular(c *gin.Context) {
	period, err := strconv.Atoi(c.DefaultQuery("period", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be an integer"})
		return
	}

	articles, err := h.popularSvc.Fetch(c.Request.Context(), c.Param("kind"), period)
	if err != nil {
		log.WithError(err).Error("most popular fetch failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PopularArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ToPopularArticleResponse(a))
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
