package dto

import (
	"time"

	"finakihub_backend/internals/features/games/lemonade/model"
)

const (
	DefaultCurrentDay   = 1
	DefaultTotalDays    = 5
	DefaultInitialMoney = 20.0
)

// LemonadeSaveRequest uses pointers so omitted fields get their defaults
// while explicit zeros are kept. updated_at from clients is ignored.
type LemonadeSaveRequest struct {
	UserID       string           `json:"user_id" validate:"required"`
	CurrentDay   *int             `json:"current_day"`
	TotalDays    *int             `json:"total_days"`
	InitialMoney *float64         `json:"initial_money"`
	CurrentMoney *float64         `json:"current_money" validate:"required"`
	DaysData     []map[string]any `json:"days_data"`
	TotalProfit  float64          `json:"total_profit"`
	TotalSavings float64          `json:"total_savings"`
	Completed    bool             `json:"completed"`
	Score        int              `json:"score"`
}

func (r LemonadeSaveRequest) ToModel() *model.LemonadeGame {
	g := &model.LemonadeGame{
		UserID:       r.UserID,
		CurrentDay:   DefaultCurrentDay,
		TotalDays:    DefaultTotalDays,
		InitialMoney: DefaultInitialMoney,
		DaysData:     r.DaysData,
		TotalProfit:  r.TotalProfit,
		TotalSavings: r.TotalSavings,
		Completed:    r.Completed,
		Score:        r.Score,
	}
	if r.CurrentDay != nil {
		g.CurrentDay = *r.CurrentDay
	}
	if r.TotalDays != nil {
		g.TotalDays = *r.TotalDays
	}
	if r.InitialMoney != nil {
		g.InitialMoney = *r.InitialMoney
	}
	if r.CurrentMoney != nil {
		g.CurrentMoney = *r.CurrentMoney
	}
	if g.DaysData == nil {
		g.DaysData = []map[string]any{}
	}
	return g
}

type LemonadeSaveResult struct {
	Success bool `json:"success"`
	Score   int  `json:"score"`
}

type LemonadeGameResponse struct {
	UserID       string           `json:"user_id"`
	CurrentDay   int              `json:"current_day"`
	TotalDays    int              `json:"total_days"`
	InitialMoney float64          `json:"initial_money"`
	CurrentMoney float64          `json:"current_money"`
	DaysData     []map[string]any `json:"days_data"`
	TotalProfit  float64          `json:"total_profit"`
	TotalSavings float64          `json:"total_savings"`
	Completed    bool             `json:"completed"`
	Score        int              `json:"score"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func ToLemonadeGameResponse(g *model.LemonadeGame) *LemonadeGameResponse {
	if g == nil {
		return nil
	}
	return &LemonadeGameResponse{
		UserID:       g.UserID,
		CurrentDay:   g.CurrentDay,
		TotalDays:    g.TotalDays,
		InitialMoney: g.InitialMoney,
		CurrentMoney: g.CurrentMoney,
		DaysData:     g.DaysData,
		TotalProfit:  g.TotalProfit,
		TotalSavings: g.TotalSavings,
		Completed:    g.Completed,
		Score:        g.Score,
		UpdatedAt:    g.UpdatedAt,
	}
}
