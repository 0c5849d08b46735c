package models

import (
	"fmt"
	"strings"
)

// SubjectType classifies how a subject is taught.
type SubjectType string

const (
	Lecture  SubjectType = "LECTURE"
	Lab      SubjectType = "LAB"
	Seminar  SubjectType = "SEMINAR"
	Workshop SubjectType = "WORKSHOP"
)

// ParseSubjectType resolves a subject type name (case-insensitive).
func ParseSubjectType(raw string) (SubjectType, error) {
	t := SubjectType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case Lecture, Lab, Seminar, Workshop:
		return t, nil
	}
	return "", fmt.Errorf("unknown subject type %q", raw)
}

// Subject is an academic course with one or more alternative weekly slots.
// Prerequisites are informational only; the optimizer does not enforce them.
type Subject struct {
	Code           string
	Name           string
	Credits        int
	Type           SubjectType
	Professor      string
	AvailableSlots []TimeSlot
	Prerequisites  map[string]struct{}
}

// NewSubject validates and builds a Subject.
func NewSubject(code, name string, credits int, subjectType SubjectType, professor string, slots []TimeSlot, prerequisites []string) (Subject, error) {
	if code == "" {
		return Subject{}, fmt.Errorf("subject code is required")
	}
	if credits <= 0 {
		return Subject{}, fmt.Errorf("subject %s: credits must be greater than 0", code)
	}
	if len(slots) == 0 {
		return Subject{}, fmt.Errorf("subject %s: at least one available slot is required", code)
	}

	prereqs := make(map[string]struct{}, len(prerequisites))
	for _, p := range prerequisites {
		prereqs[p] = struct{}{}
	}

	return Subject{
		Code:           code,
		Name:           name,
		Credits:        credits,
		Type:           subjectType,
		Professor:      professor,
		AvailableSlots: slots,
		Prerequisites:  prereqs,
	}, nil
}
