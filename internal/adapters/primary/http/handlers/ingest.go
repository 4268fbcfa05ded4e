package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/adapters/primary/http/dto"
	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

func (h *Handler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.RunListFilter{
		Section: c.Query("section"),
		Status:  c.Query("status"),
		Limit:   limit,
		Offset:  offset,
	}

	runs, total, err := h.ingestSvc.ListRuns(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list ingest runs failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.IngestRunResponse, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.ToIngestRunResponse(r))
	}

	c.JSON(http.StatusOK, dto.ListIngestRunsResponse{
		Items:      items,
		Total:      total,
		PageSize:   filter.Limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := h.ingestSvc.GetRun(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIngestRunResponse(run))
}

func (h *Handler) TriggerIngest(c *gin.Context) {
	var req dto.TriggerIngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Source == "" {
		req.Source = domain.SourceAll
	}

	runs, err := h.ingestSvc.RunAll(c.Request.Context(), req.Source, req.Sections)
	if err != nil {
		log.WithError(err).Error("triggered ingest failed")
		// Partial results still come back with the error status.
		items := make([]dto.IngestRunResponse, 0, len(runs))
		for _, r := range runs {
			items = append(items, dto.ToIngestRunResponse(r))
		}
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error(), "runs": items})
		return
	}

	items := make([]dto.IngestRunResponse, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.ToIngestRunResponse(r))
	}
	c.JSON(http.StatusCreated, gin.H{"runs": items})
}
