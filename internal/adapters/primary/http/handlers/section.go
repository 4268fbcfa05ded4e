package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ListSections(c *gin.Context) {
	sections, err := h.sectionSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list sections failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.SectionResponse, 0, len(sections))
	for _, s := range sections {
		items = append(items, dto.ToSectionResponse(s))
	}

	c.JSON(http.StatusOK, dto.ListSectionsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) GetSection(c *gin.Context) {
	section, err := h.sectionSvc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSectionResponse(section))
}

func (h *Handler) SyncSections(c *gin.Context) {
	synced, err := h.sectionSvc.Sync(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("section sync failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SyncSectionsResponse{Synced: synced})
}
