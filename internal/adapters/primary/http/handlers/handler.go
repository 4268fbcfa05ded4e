package handlers

import (
	"github.com/gin-gonic/gin"

	"newsfeed-service/internal/adapters/primary/http/middleware"
	"newsfeed-service/internal/core/services"
)

type Handler struct {
	articleSvc *services.ArticleService
	sectionSvc *services.SectionService
	ingestSvc  *services.IngestService
	popularSvc *services.PopularService
	jwtSecret  string
}

func New(
	articleSvc *services.ArticleService,
	sectionSvc *services.SectionService,
	ingestSvc *services.IngestService,
	popularSvc *services.PopularService,
	jwtSecret string,
) *Handler {
	return &Handler{
		articleSvc: articleSvc,
		sectionSvc: sectionSvc,
		ingestSvc:  ingestSvc,
		popularSvc: popularSvc,
		jwtSecret:  jwtSecret,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Articles
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/:id", h.GetArticle)
	r.GET("/article", h.GetArticleByURI)

	// Sections
	r.GET("/sections", h.ListSections)
	r.GET("/sections/:name", h.GetSection)

	// Most Popular (upstream pass-through)
	r.GET("/popular/:kind", h.GetPopular)

	// Ingest runs
	r.GET("/runs", h.ListRuns)
	r.GET("/runs/:id", h.GetRun)

	// Admin operations
	admin := r.Group("", middleware.RequireAuth(h.jwtSecret))
	admin.POST("/runs", h.TriggerIngest)
	admin.POST("/sections/sync", h.SyncSections)
	admin.DELETE("/articles/:id", h.DeleteArticle)
}
