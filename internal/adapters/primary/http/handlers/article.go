package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/adapters/primary/http/dto"
	"newsfeed-service/internal/core/ports/output"
)

func (h *Handler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ArticleListFilter{
		Section: c.Query("section"),
		Source:  c.Query("source"),
		Search:  c.Query("search"),
		SortBy:  c.Query("sort_by"),
		Order:   c.Query("order"),
		Limit:   limit,
		Offset:  offset,
	}
	if from := c.Query("published_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "published_from must be RFC3339"})
			return
		}
		filter.PublishedFrom = t
	}
	if to := c.Query("published_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "published_to must be RFC3339"})
			return
		}
		filter.PublishedTo = t
	}

	articles, total, err := h.articleSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list articles failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ToArticleResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListArticlesResponse{
		Items:      items,
		Total:      total,
		PageSize:   filter.Limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	article, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

func (h *Handler) GetArticleByURI(c *gin.Context) {
	article, err := h.articleSvc.GetByURI(c.Request.Context(), c.Query("uri"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	if err := h.articleSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete article failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
