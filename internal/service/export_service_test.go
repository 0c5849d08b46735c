package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/schedulewise/schedulewise-api/internal/dto"
	appErrors "github.com/schedulewise/schedulewise-api/pkg/errors"
)

type generatorStub struct {
	resp *dto.GenerateScheduleResponse
	err  error
}

func (g *generatorStub) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	return g.resp, g.err
}

func sampleResponse() *dto.GenerateScheduleResponse {
	return &dto.GenerateScheduleResponse{
		ScheduleID: "sched-1",
		Slots: []dto.ScheduleSlotView{
			{
				Subject:  dto.SubjectView{Code: "MAT101", Name: "Cálculo Diferencial", Credits: 8, Type: "LECTURE", Professor: "Dr. Rodríguez Pérez"},
				TimeSlot: dto.TimeSlotPayload{Day: "WEDNESDAY", StartTime: "07:00", EndTime: "09:00"},
			},
			{
				Subject:  dto.SubjectView{Code: "CC101", Name: "Programación I", Credits: 8, Type: "LECTURE", Professor: "Dr. García López"},
				TimeSlot: dto.TimeSlotPayload{Day: "MONDAY", StartTime: "08:00", EndTime: "10:00"},
			},
		},
		TotalCredits:      16,
		OptimizationScore: 160.5,
		GeneratedAt:       time.Now().UTC(),
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(&generatorStub{resp: sampleResponse()}, "Universidad de Guadalajara", "CUCEI", nil)

	result, err := svc.Export(context.Background(), dto.GenerateScheduleRequest{RequiredSubjectCodes: []string{"CC101", "MAT101"}}, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", result.ContentType)
	require.Equal(t, "schedule-sched-1.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Day,Start,End,Subject,Code,Type,Professor,Credits", strings.TrimSpace(lines[0]))
	// Rows come out in week order, so Monday precedes Wednesday.
	require.Contains(t, lines[1], "MONDAY")
	require.Contains(t, lines[1], "CC101")
	require.Contains(t, lines[2], "WEDNESDAY")
	require.Contains(t, lines[2], "MAT101")
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(&generatorStub{resp: sampleResponse()}, "Universidad de Guadalajara", "CUCEI", nil)

	result, err := svc.Export(context.Background(), dto.GenerateScheduleRequest{RequiredSubjectCodes: []string{"CC101"}}, FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.ContentType)
	require.Equal(t, "schedule-sched-1.pdf", result.Filename)
	require.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&generatorStub{resp: sampleResponse()}, "UdeG", "CUCEI", nil)

	_, err := svc.Export(context.Background(), dto.GenerateScheduleRequest{RequiredSubjectCodes: []string{"CC101"}}, ExportFormat("xml"))
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportPropagatesGenerationErrors(t *testing.T) {
	svc := NewExportService(&generatorStub{err: appErrors.ErrNoFeasibleSchedule}, "UdeG", "CUCEI", nil)

	_, err := svc.Export(context.Background(), dto.GenerateScheduleRequest{RequiredSubjectCodes: []string{"CC101"}}, FormatCSV)
	require.ErrorIs(t, err, appErrors.ErrNoFeasibleSchedule)
}
