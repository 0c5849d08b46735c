// Package catalog holds the built-in CUCEI subject catalog served while no
// academic backoffice integration exists.
package catalog

import (
	"github.com/samber/lo"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

// Catalog is an immutable in-memory subject source.
type Catalog struct {
	subjects []models.Subject
}

// New builds the catalog with the sample CUCEI offering.
func New() *Catalog {
	return &Catalog{subjects: sampleSubjects()}
}

// All returns every subject in catalog order.
func (c *Catalog) All() []models.Subject {
	out := make([]models.Subject, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// List returns a page of subjects plus pagination metadata.
func (c *Catalog) List(page, pageSize int) ([]models.Subject, *models.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	total := len(c.subjects)
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]models.Subject, end-start)
	copy(items, c.subjects[start:end])
	return items, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}
}

// Codes returns the set of known subject codes.
func (c *Catalog) Codes() map[string]struct{} {
	return lo.SliceToMap(c.subjects, func(subject models.Subject) (string, struct{}) {
		return subject.Code, struct{}{}
	})
}

func sampleSubjects() []models.Subject {
	return []models.Subject{
		mustSubject("CC101", "Programación I", 8, models.Lecture, "Dr. García López", []models.TimeSlot{
			slot(models.Monday, "08:00", "10:00"),
			slot(models.Wednesday, "08:00", "10:00"),
			slot(models.Tuesday, "10:00", "12:00"),
			slot(models.Thursday, "10:00", "12:00"),
		}, nil),
		mustSubject("CC102", "Estructuras de Datos", 8, models.Lecture, "Dra. Martínez Silva", []models.TimeSlot{
			slot(models.Monday, "14:00", "16:00"),
			slot(models.Wednesday, "14:00", "16:00"),
			slot(models.Tuesday, "16:00", "18:00"),
			slot(models.Thursday, "16:00", "18:00"),
		}, []string{"CC101"}),
		mustSubject("MAT101", "Cálculo Diferencial", 8, models.Lecture, "Dr. Rodríguez Pérez", []models.TimeSlot{
			slot(models.Monday, "07:00", "09:00"),
			slot(models.Wednesday, "07:00", "09:00"),
			slot(models.Tuesday, "09:00", "11:00"),
			slot(models.Thursday, "09:00", "11:00"),
		}, nil),
		mustSubject("FIS101", "Física I", 8, models.Lecture, "Dr. Hernández Castro", []models.TimeSlot{
			slot(models.Monday, "12:00", "14:00"),
			slot(models.Wednesday, "12:00", "14:00"),
			slot(models.Friday, "14:00", "16:00"),
		}, []string{"MAT101"}),
		mustSubject("LAB101", "Laboratorio de Programación", 4, models.Lab, "Ing. López Morales", []models.TimeSlot{
			slot(models.Friday, "16:00", "18:00"),
			slot(models.Friday, "18:00", "20:00"),
		}, []string{"CC101"}),
	}
}

func mustSubject(code, name string, credits int, subjectType models.SubjectType, professor string, slots []models.TimeSlot, prerequisites []string) models.Subject {
	subject, err := models.NewSubject(code, name, credits, subjectType, professor, slots, prerequisites)
	if err != nil {
		panic(err)
	}
	return subject
}

func slot(day models.Day, start, end string) models.TimeSlot {
	s, err := models.NewTimeSlot(day, models.MustClock(start), models.MustClock(end))
	if err != nil {
		panic(err)
	}
	return s
}
