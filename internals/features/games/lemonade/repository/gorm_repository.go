package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finakihub_backend/internals/features/games/lemonade/model"
)

type lemonadeRow struct {
	UserID       string                               `gorm:"column:user_id;size:64;primaryKey"`
	CurrentDay   int                                  `gorm:"column:current_day;not null"`
	TotalDays    int                                  `gorm:"column:total_days;not null"`
	InitialMoney float64                              `gorm:"column:initial_money;not null"`
	CurrentMoney float64                              `gorm:"column:current_money;not null"`
	DaysData     datatypes.JSONType[[]map[string]any] `gorm:"column:days_data"`
	TotalProfit  float64                              `gorm:"column:total_profit;not null"`
	TotalSavings float64                              `gorm:"column:total_savings;not null"`
	Completed    bool                                 `gorm:"column:completed;not null"`
	Score        int                                  `gorm:"column:score;not null"`
	UpdatedAt    time.Time                            `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (lemonadeRow) TableName() string { return "lemonade_games" }

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) Save(ctx context.Context, g *model.LemonadeGame) error {
	days := g.DaysData
	if days == nil {
		days = []map[string]any{}
	}
	row := lemonadeRow{
		UserID:       g.UserID,
		CurrentDay:   g.CurrentDay,
		TotalDays:    g.TotalDays,
		InitialMoney: g.InitialMoney,
		CurrentMoney: g.CurrentMoney,
		DaysData:     datatypes.NewJSONType(days),
		TotalProfit:  g.TotalProfit,
		TotalSavings: g.TotalSavings,
		Completed:    g.Completed,
		Score:        g.Score,
		UpdatedAt:    r.now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (r *GormRepository) FindByUserID(ctx context.Context, userID string) (*model.LemonadeGame, error) {
	var row lemonadeRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	days := row.DaysData.Data()
	if days == nil {
		days = []map[string]any{}
	}
	return &model.LemonadeGame{
		UserID:       row.UserID,
		CurrentDay:   row.CurrentDay,
		TotalDays:    row.TotalDays,
		InitialMoney: row.InitialMoney,
		CurrentMoney: row.CurrentMoney,
		DaysData:     days,
		TotalProfit:  row.TotalProfit,
		TotalSavings: row.TotalSavings,
		Completed:    row.Completed,
		Score:        row.Score,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
