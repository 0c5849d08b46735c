package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/schedulewise/schedulewise-api/internal/dto"
	"github.com/schedulewise/schedulewise-api/internal/models"
	"github.com/schedulewise/schedulewise-api/internal/optimizer"
	appErrors "github.com/schedulewise/schedulewise-api/pkg/errors"
)

type subjectSource interface {
	All() []models.Subject
}

// ScheduleService is the use-case layer in front of the optimizer: it
// validates requests, maps payloads to domain values, consults the result
// cache and translates optimizer outcomes into API responses.
type ScheduleService struct {
	catalog   subjectSource
	optimizer optimizer.Optimizer
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService wires schedule generation dependencies.
func NewScheduleService(
	catalog subjectSource,
	opt optimizer.Optimizer,
	cache *CacheService,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetricsService()
	}
	return &ScheduleService{
		catalog:   catalog,
		optimizer: opt,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Generate runs the optimizer for the request and returns the best schedule.
func (s *ScheduleService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}

	if len(req.RequiredSubjectCodes) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "must select at least one subject")
	}

	subjects, err := s.resolveSubjects(req.AvailableSubjects)
	if err != nil {
		return nil, err
	}

	required := make(map[string]struct{}, len(req.RequiredSubjectCodes))
	for _, code := range req.RequiredSubjectCodes {
		required[code] = struct{}{}
	}
	if err := ensureCodesExist(subjects, required); err != nil {
		return nil, err
	}

	constraint, err := mapConstraint(req.StudentConstraints)
	if err != nil {
		return nil, err
	}

	cacheKey := requestCacheKey(req)
	if s.cache.Enabled() {
		var cached dto.GenerateScheduleResponse
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	start := time.Now()
	result, err := s.optimizer.Optimize(ctx, subjects, constraint, required)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveOptimization("error", elapsed, 0)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "schedule optimization failed")
	}
	if result == nil {
		s.metrics.ObserveOptimization("infeasible", elapsed, 0)
		return nil, appErrors.Clone(appErrors.ErrNoFeasibleSchedule, "")
	}
	s.metrics.ObserveOptimization("feasible", elapsed, result.Combinations)

	s.logger.Info("schedule generated",
		zap.Int("slots", len(result.Schedule.Slots)),
		zap.Int("total_credits", result.Schedule.TotalCredits),
		zap.Float64("score", result.Score),
		zap.Int("combinations", result.Combinations),
		zap.Duration("elapsed", elapsed),
	)

	resp := buildResponse(result)
	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, cacheKey, resp, 0)
	}
	return resp, nil
}

func (s *ScheduleService) resolveSubjects(payloads []dto.SubjectPayload) ([]models.Subject, error) {
	if len(payloads) == 0 {
		return s.catalog.All(), nil
	}

	subjects := make([]models.Subject, 0, len(payloads))
	for _, payload := range payloads {
		subject, err := mapSubject(payload)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func ensureCodesExist(subjects []models.Subject, required map[string]struct{}) error {
	known := make(map[string]struct{}, len(subjects))
	for _, subject := range subjects {
		known[subject.Code] = struct{}{}
	}

	var missing []string
	for code := range required {
		if _, ok := known[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("subjects not found: %s", strings.Join(missing, ", ")))
	}
	return nil
}

func mapSubject(payload dto.SubjectPayload) (models.Subject, error) {
	subjectType, err := models.ParseSubjectType(payload.Type)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject %s: %w", payload.Code, err)
	}

	slots := make([]models.TimeSlot, 0, len(payload.AvailableSlots))
	for _, slotPayload := range payload.AvailableSlots {
		slot, err := mapTimeSlot(slotPayload)
		if err != nil {
			return models.Subject{}, fmt.Errorf("subject %s: %w", payload.Code, err)
		}
		slots = append(slots, slot)
	}

	return models.NewSubject(payload.Code, payload.Name, payload.Credits, subjectType, payload.Professor, slots, payload.Prerequisites)
}

func mapTimeSlot(payload dto.TimeSlotPayload) (models.TimeSlot, error) {
	day, err := models.ParseDay(payload.Day)
	if err != nil {
		return models.TimeSlot{}, err
	}
	start, err := models.ParseClock(payload.StartTime)
	if err != nil {
		return models.TimeSlot{}, err
	}
	end, err := models.ParseClock(payload.EndTime)
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.NewTimeSlot(day, start, end)
}

func mapConstraint(payload dto.ConstraintPayload) (models.StudentConstraint, error) {
	constraint := models.DefaultConstraint()

	for _, slotPayload := range payload.BlockedSlots {
		slot, err := mapTimeSlot(slotPayload)
		if err != nil {
			return models.StudentConstraint{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("blocked slot: %v", err))
		}
		constraint.BlockedSlots = append(constraint.BlockedSlots, slot)
	}

	if payload.MinBreakMinutes != nil {
		constraint.MinBreakMinutes = *payload.MinBreakMinutes
	}
	if payload.MaxDailyHours != nil {
		constraint.MaxDailyHours = *payload.MaxDailyHours
	}
	for _, raw := range payload.PreferredDays {
		day, err := models.ParseDay(raw)
		if err != nil {
			return models.StudentConstraint{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		constraint.PreferredDays[day] = struct{}{}
	}
	constraint.AvoidEarlyClasses = payload.AvoidEarlyClasses
	constraint.AvoidLateClasses = payload.AvoidLateClasses

	return constraint, nil
}

func buildResponse(result *optimizer.Result) *dto.GenerateScheduleResponse {
	views := make([]dto.ScheduleSlotView, 0, len(result.Schedule.Slots))
	for _, slot := range result.Schedule.Slots {
		views = append(views, dto.ScheduleSlotView{
			Subject: dto.SubjectView{
				Code:      slot.Subject.Code,
				Name:      slot.Subject.Name,
				Credits:   slot.Subject.Credits,
				Type:      string(slot.Subject.Type),
				Professor: slot.Subject.Professor,
			},
			TimeSlot: dto.TimeSlotPayload{
				Day:       string(slot.TimeSlot.Day),
				StartTime: slot.TimeSlot.Start.String(),
				EndTime:   slot.TimeSlot.End.String(),
			},
		})
	}

	return &dto.GenerateScheduleResponse{
		ScheduleID:        uuid.NewString(),
		Slots:             views,
		TotalCredits:      result.Schedule.TotalCredits,
		OptimizationScore: result.Score,
		GeneratedAt:       time.Now().UTC(),
	}
}

// requestCacheKey derives a stable digest for the request payload. Slice
// order is part of the key; semantically equal requests with reordered
// subjects simply miss the cache.
func requestCacheKey(req dto.GenerateScheduleRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return "schedule:uncacheable"
	}
	sum := sha256.Sum256(payload)
	return "schedule:" + hex.EncodeToString(sum[:])
}
