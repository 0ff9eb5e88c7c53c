package dto

import (
	"time"

	"finakihub_backend/internals/features/progress/progress/model"
)

type ProgressUpdateRequest struct {
	UserID           string         `json:"user_id" validate:"required"`
	CompletedModules []string       `json:"completed_modules"`
	ModuleScores     map[string]int `json:"module_scores"`
	TotalScore       int            `json:"total_score"`
}

// ToModel drops repeated module ids, keeping first-seen order.
func (r ProgressUpdateRequest) ToModel() *model.ProgressModel {
	seen := make(map[string]struct{}, len(r.CompletedModules))
	completed := make([]string, 0, len(r.CompletedModules))
	for _, id := range r.CompletedModules {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		completed = append(completed, id)
	}
	scores := r.ModuleScores
	if scores == nil {
		scores = map[string]int{}
	}
	return &model.ProgressModel{
		UserID:           r.UserID,
		CompletedModules: completed,
		ModuleScores:     scores,
		TotalScore:       r.TotalScore,
	}
}

type ProgressResponse struct {
	UserID           string         `json:"user_id"`
	CompletedModules []string       `json:"completed_modules"`
	ModuleScores     map[string]int `json:"module_scores"`
	TotalScore       int            `json:"total_score"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ToProgressResponse(p *model.ProgressModel) ProgressResponse {
	return ProgressResponse{
		UserID:           p.UserID,
		CompletedModules: p.CompletedModules,
		ModuleScores:     p.ModuleScores,
		TotalScore:       p.TotalScore,
		UpdatedAt:        p.UpdatedAt,
	}
}

type ProgressUpdateResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Modified bool   `json:"modified"`
	Created  bool   `json:"created"`
}
