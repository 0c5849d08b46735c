package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/schedulewise/schedulewise-api/internal/dto"
	"github.com/schedulewise/schedulewise-api/internal/models"
	appErrors "github.com/schedulewise/schedulewise-api/pkg/errors"
	"github.com/schedulewise/schedulewise-api/pkg/export"
)

// ExportFormat identifies a supported download format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered document and its HTTP metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

type scheduleGenerator interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

// ExportService generates a schedule and renders it as a downloadable document.
type ExportService struct {
	schedules  scheduleGenerator
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	university string
	campus     string
	logger     *zap.Logger
}

// NewExportService wires the export pipeline.
func NewExportService(schedules scheduleGenerator, university, campus string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		schedules:  schedules,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		university: university,
		campus:     campus,
		logger:     logger,
	}
}

var exportHeaders = []string{"Day", "Start", "End", "Subject", "Code", "Type", "Professor", "Credits"}

// Export generates the best schedule for the request and renders it in the
// requested format.
func (s *ExportService) Export(ctx context.Context, req dto.GenerateScheduleRequest, format ExportFormat) (*ExportResult, error) {
	schedule, err := s.schedules.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data := buildDataset(schedule)

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "csv rendering failed")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("schedule-%s.csv", schedule.ScheduleID),
		}, nil
	case FormatPDF:
		subtitle := fmt.Sprintf("%s - %s", s.university, s.campus)
		content, err := s.pdf.Render(data, "Weekly Schedule", subtitle)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pdf rendering failed")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("schedule-%s.pdf", schedule.ScheduleID),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func buildDataset(schedule *dto.GenerateScheduleResponse) export.Dataset {
	slots := make([]dto.ScheduleSlotView, len(schedule.Slots))
	copy(slots, schedule.Slots)
	sort.SliceStable(slots, func(i, j int) bool {
		di := models.Day(slots[i].TimeSlot.Day).Index()
		dj := models.Day(slots[j].TimeSlot.Day).Index()
		if di != dj {
			return di < dj
		}
		return slots[i].TimeSlot.StartTime < slots[j].TimeSlot.StartTime
	})

	rows := make([]map[string]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, map[string]string{
			"Day":       slot.TimeSlot.Day,
			"Start":     slot.TimeSlot.StartTime,
			"End":       slot.TimeSlot.EndTime,
			"Subject":   slot.Subject.Name,
			"Code":      slot.Subject.Code,
			"Type":      slot.Subject.Type,
			"Professor": slot.Subject.Professor,
			"Credits":   fmt.Sprintf("%d", slot.Subject.Credits),
		})
	}

	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
