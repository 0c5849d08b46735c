package dto

import "time"

// TimeSlotPayload carries a weekly slot over the wire, times as "HH:MM".
type TimeSlotPayload struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// SubjectPayload describes a selectable subject.
type SubjectPayload struct {
	Code           string            `json:"code" validate:"required,min=2,max=10"`
	Name           string            `json:"name" validate:"required,min=3,max=100"`
	Credits        int               `json:"credits" validate:"required,min=1,max=10"`
	Type           string            `json:"type" validate:"required"`
	Professor      string            `json:"professor" validate:"required,min=3,max=100"`
	AvailableSlots []TimeSlotPayload `json:"availableSlots" validate:"required,min=1,dive"`
	Prerequisites  []string          `json:"prerequisites"`
}

// ConstraintPayload carries the student's scheduling preferences. Break and
// daily-hour limits are pointers so absent fields fall back to defaults.
type ConstraintPayload struct {
	BlockedSlots      []TimeSlotPayload `json:"blockedSlots" validate:"omitempty,dive"`
	MinBreakMinutes   *int              `json:"minBreakMinutes" validate:"omitempty,min=0,max=120"`
	MaxDailyHours     *int              `json:"maxDailyHours" validate:"omitempty,min=1,max=12"`
	PreferredDays     []string          `json:"preferredDays"`
	AvoidEarlyClasses bool              `json:"avoidEarlyClasses"`
	AvoidLateClasses  bool              `json:"avoidLateClasses"`
}

// GenerateScheduleRequest asks the optimizer for the best weekly schedule.
// AvailableSubjects is optional; when omitted the built-in catalog is used.
// RequiredSubjectCodes is checked in the service so empty and unknown code
// errors stay distinct and enumerable.
type GenerateScheduleRequest struct {
	AvailableSubjects    []SubjectPayload  `json:"availableSubjects" validate:"omitempty,min=1,dive"`
	StudentConstraints   ConstraintPayload `json:"studentConstraints"`
	RequiredSubjectCodes []string          `json:"requiredSubjectCodes"`
}

// SubjectView is the subject metadata echoed in a generated schedule.
type SubjectView struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	Type      string `json:"type"`
	Professor string `json:"professor"`
}

// ScheduleSlotView pairs a subject with its chosen slot.
type ScheduleSlotView struct {
	Subject  SubjectView     `json:"subject"`
	TimeSlot TimeSlotPayload `json:"timeSlot"`
}

// GenerateScheduleResponse is the optimizer's positive outcome.
type GenerateScheduleResponse struct {
	ScheduleID        string             `json:"scheduleId"`
	Slots             []ScheduleSlotView `json:"slots"`
	TotalCredits      int                `json:"totalCredits"`
	OptimizationScore float64            `json:"optimizationScore"`
	GeneratedAt       time.Time          `json:"generatedAt"`
}
