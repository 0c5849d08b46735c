package handler

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schedulewise/schedulewise-api/internal/dto"
	"github.com/schedulewise/schedulewise-api/internal/models"
	"github.com/schedulewise/schedulewise-api/internal/service"
	appErrors "github.com/schedulewise/schedulewise-api/pkg/errors"
	"github.com/schedulewise/schedulewise-api/pkg/response"
)

type scheduleGenerator interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

type scheduleExporter interface {
	Export(ctx context.Context, req dto.GenerateScheduleRequest, format service.ExportFormat) (*service.ExportResult, error)
}

type subjectLister interface {
	List(page, pageSize int) ([]models.Subject, *models.Pagination)
}

// ScheduleHandler exposes schedule generation, export and catalog endpoints.
type ScheduleHandler struct {
	schedules scheduleGenerator
	exporter  scheduleExporter
	subjects  subjectLister
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules scheduleGenerator, exporter scheduleExporter, subjects subjectLister) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, exporter: exporter, subjects: subjects}
}

// Generate godoc
// @Summary Generate the best conflict-free weekly schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body dto.GenerateScheduleRequest true "Subjects, required codes and constraints"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.schedules.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Generate a schedule and download it as CSV or PDF
// @Tags Schedules
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param request body dto.GenerateScheduleRequest true "Subjects, required codes and constraints"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /schedules/export [post]
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))

	result, err := h.exporter.Export(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// Subjects godoc
// @Summary List catalog subjects
// @Tags Subjects
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *ScheduleHandler) Subjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	subjects, pagination := h.subjects.List(page, pageSize)

	views := make([]dto.SubjectDetailView, 0, len(subjects))
	for _, subject := range subjects {
		views = append(views, subjectDetail(subject))
	}
	response.JSON(c, http.StatusOK, views, pagination)
}

// Health godoc
// @Summary Schedule service health
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules/health [get]
func (h *ScheduleHandler) Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"}, nil)
}

func subjectDetail(subject models.Subject) dto.SubjectDetailView {
	slots := make([]dto.TimeSlotPayload, 0, len(subject.AvailableSlots))
	for _, s := range subject.AvailableSlots {
		slots = append(slots, dto.TimeSlotPayload{
			Day:       string(s.Day),
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
		})
	}

	prerequisites := make([]string, 0, len(subject.Prerequisites))
	for code := range subject.Prerequisites {
		prerequisites = append(prerequisites, code)
	}
	sort.Strings(prerequisites)

	return dto.SubjectDetailView{
		Code:           subject.Code,
		Name:           subject.Name,
		Credits:        subject.Credits,
		Type:           string(subject.Type),
		Professor:      subject.Professor,
		AvailableSlots: slots,
		Prerequisites:  prerequisites,
	}
}
