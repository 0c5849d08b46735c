package dto

// SubjectDetailView is the catalog listing shape, including the candidate
// weekly slots a subject can be taught in.
type SubjectDetailView struct {
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Credits        int               `json:"credits"`
	Type           string            `json:"type"`
	Professor      string            `json:"professor"`
	AvailableSlots []TimeSlotPayload `json:"availableSlots"`
	Prerequisites  []string          `json:"prerequisites"`
}
