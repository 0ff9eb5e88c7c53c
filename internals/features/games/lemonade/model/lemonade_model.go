package model

import "time"

// LemonadeGame is the saved state of one user's lemonade-stand run. DaysData is opaque to the server.
type LemonadeGame struct {
	UserID       string
	CurrentDay   int
	TotalDays    int
	InitialMoney float64
	CurrentMoney float64
	DaysData     []map[string]any
	TotalProfit  float64
	TotalSavings float64
	Completed    bool
	Score        int
	UpdatedAt    time.Time
}
