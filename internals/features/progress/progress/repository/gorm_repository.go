package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finakihub_backend/internals/features/progress/progress/model"
)

type progressRow struct {
	UserID           string                             `gorm:"column:user_id;size:64;primaryKey"`
	CompletedModules datatypes.JSONType[[]string]       `gorm:"column:completed_modules"`
	ModuleScores     datatypes.JSONType[map[string]int] `gorm:"column:module_scores"`
	TotalScore       int                                `gorm:"column:total_score;not null"`
	UpdatedAt        time.Time                          `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (progressRow) TableName() string { return "progress" }

func toRow(p *model.ProgressModel) *progressRow {
	return &progressRow{
		UserID:           p.UserID,
		CompletedModules: datatypes.NewJSONType(p.CompletedModules),
		ModuleScores:     datatypes.NewJSONType(p.ModuleScores),
		TotalScore:       p.TotalScore,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *progressRow) toModel() *model.ProgressModel {
	p := &model.ProgressModel{
		UserID:           r.UserID,
		CompletedModules: r.CompletedModules.Data(),
		ModuleScores:     r.ModuleScores.Data(),
		TotalScore:       r.TotalScore,
		UpdatedAt:        r.UpdatedAt,
	}
	if p.CompletedModules == nil {
		p.CompletedModules = []string{}
	}
	if p.ModuleScores == nil {
		p.ModuleScores = map[string]int{}
	}
	return p
}

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) FindOrCreate(ctx context.Context, userID string) (*model.ProgressModel, bool, error) {
	var (
		out     *model.ProgressModel
		created bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row progressRow
		err := tx.Where("user_id = ?", userID).First(&row).Error
		if err == nil {
			out = row.toModel()
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fresh := toRow(model.NewEmpty(userID, r.now()))
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0
		if err := tx.Where("user_id = ?", userID).First(&row).Error; err != nil {
			return err
		}
		out = row.toModel()
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (r *GormRepository) Upsert(ctx context.Context, p *model.ProgressModel) (model.UpsertOutcome, error) {
	outcome := model.Unchanged
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toRow(p)
		row.UpdatedAt = r.now()

		res := tx.Model(&progressRow{}).Where("user_id = ?", p.UserID).Updates(map[string]any{
			"completed_modules": row.CompletedModules,
			"module_scores":     row.ModuleScores,
			"total_score":       row.TotalScore,
			"updated_at":        row.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			outcome = model.Modified
			return nil
		}

		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			outcome = model.Created
		}
		return nil
	})
	return outcome, err
}
