package model

import "time"

// ProgressModel is one learner's module progress. UserID is not checked against users.
type ProgressModel struct {
	UserID           string
	CompletedModules []string
	ModuleScores     map[string]int
	TotalScore       int
	UpdatedAt        time.Time
}

// NewEmpty is the zero-valued record persisted on first read or registration.
func NewEmpty(userID string, now time.Time) *ProgressModel {
	return &ProgressModel{
		UserID:           userID,
		CompletedModules: []string{},
		ModuleScores:     map[string]int{},
		UpdatedAt:        now,
	}
}

// UpsertOutcome is what a full-field progress write did to the stored record.
type UpsertOutcome int

const (
	Unchanged UpsertOutcome = iota
	Created
	Modified
)

func (o UpsertOutcome) String() string {
	switch o {
	case Created:
		return "created"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}
