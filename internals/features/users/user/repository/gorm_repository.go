package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/users/user/model"
)

/* ====================== rows ====================== */

type userRow struct {
	ID            string            `gorm:"column:id;type:varchar(36);primaryKey"`
	Username      string            `gorm:"column:username;size:50;not null;uniqueIndex:uniq_users_username"`
	Age           int               `gorm:"column:age;not null"`
	AvatarConfig  datatypes.JSONMap `gorm:"column:avatar_config"`
	Coins         int64             `gorm:"column:coins;not null"`
	XP            int64             `gorm:"column:xp;not null"`
	SelectedLevel string            `gorm:"column:selected_level;size:20;not null"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (userRow) TableName() string { return "users" }

type userBadgeRow struct {
	UserID    string    `gorm:"column:user_id;type:varchar(36);primaryKey"`
	BadgeID   string    `gorm:"column:badge_id;size:100;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (userBadgeRow) TableName() string { return "user_badges" }

type userPurchaseRow struct {
	UserID    string    `gorm:"column:user_id;type:varchar(36);primaryKey"`
	ItemID    string    `gorm:"column:item_id;size:100;primaryKey"`
	Price     int64     `gorm:"column:price;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (userPurchaseRow) TableName() string { return "user_purchases" }

// userEquippedRow holds one slot key per row; an equip writes the canonical and localized key.
type userEquippedRow struct {
	UserID string `gorm:"column:user_id;type:varchar(36);primaryKey"`
	Slot   string `gorm:"column:slot;size:30;primaryKey"`
	ItemID string `gorm:"column:item_id;size:100;not null"`
}

func (userEquippedRow) TableName() string { return "user_equipped_items" }

func migrateGorm(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&userRow{},
		&userBadgeRow{},
		&userPurchaseRow{},
		&userEquippedRow{},
	)
}

/* ====================== repository ====================== */

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// errNoMatch aborts a transaction whose conditional update matched nothing.
var errNoMatch = errors.New("conditional update matched no row")

func translateGorm(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return database.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return database.ErrDuplicate
	default:
		return err
	}
}

func (r *GormRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *GormRepository) Create(ctx context.Context, u *model.UserModel) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	row := userRow{
		ID:            u.ID,
		Username:      u.Username,
		Age:           u.Age,
		AvatarConfig:  datatypes.JSONMap(u.AvatarConfig),
		Coins:         u.Coins,
		XP:            u.XP,
		SelectedLevel: u.SelectedLevel,
		CreatedAt:     u.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateGorm(err)
	}
	u.CreatedAt = row.CreatedAt
	return nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*model.UserModel, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *GormRepository) FindByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *GormRepository) findOne(ctx context.Context, query string, arg any) (*model.UserModel, error) {
	var out *model.UserModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row userRow
		if err := tx.Where(query, arg).First(&row).Error; err != nil {
			return err
		}
		u, err := hydrate(tx, &row)
		if err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, translateGorm(err)
	}
	return out, nil
}

// hydrate loads the child tables of row using tx only.
func hydrate(tx *gorm.DB, row *userRow) (*model.UserModel, error) {
	u := &model.UserModel{
		ID:             row.ID,
		Username:       row.Username,
		Age:            row.Age,
		AvatarConfig:   map[string]any(row.AvatarConfig),
		Coins:          row.Coins,
		XP:             row.XP,
		Badges:         []string{},
		PurchasedItems: []string{},
		SelectedLevel:  row.SelectedLevel,
		CreatedAt:      row.CreatedAt,
	}

	if err := tx.Model(&userBadgeRow{}).
		Where("user_id = ?", row.ID).
		Order("created_at ASC, badge_id ASC").
		Pluck("badge_id", &u.Badges).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&userPurchaseRow{}).
		Where("user_id = ?", row.ID).
		Order("created_at ASC, item_id ASC").
		Pluck("item_id", &u.PurchasedItems).Error; err != nil {
		return nil, err
	}
	equipped, err := loadEquipped(tx, row.ID)
	if err != nil {
		return nil, err
	}
	u.EquippedItems = equipped
	return u, nil
}

func loadEquipped(tx *gorm.DB, userID string) (map[string]string, error) {
	var rows []userEquippedRow
	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, e := range rows {
		out[e.Slot] = e.ItemID
	}
	return out, nil
}

func userExists(tx *gorm.DB, id string) (bool, error) {
	var n int64
	if err := tx.Model(&userRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Count(&n).Error
	return n, err
}

/* ====================== mutations ====================== */

func (r *GormRepository) updateColumn(ctx context.Context, id, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *GormRepository) SetAvatar(ctx context.Context, id string, avatar map[string]any) error {
	return r.updateColumn(ctx, id, "avatar_config", datatypes.JSONMap(avatar))
}

func (r *GormRepository) SetSelectedLevel(ctx context.Context, id, tier string) error {
	return r.updateColumn(ctx, id, "selected_level", tier)
}

func (r *GormRepository) IncrementCoins(ctx context.Context, id string, delta int64) (int64, error) {
	var coins int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRow{}).Where("id = ?", id).
			Update("coins", gorm.Expr("coins + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return database.ErrNotFound
		}
		var row userRow
		if err := tx.Select("id", "coins").Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		coins = row.Coins
		return nil
	})
	if err != nil {
		return 0, translateGorm(err)
	}
	return coins, nil
}

func (r *GormRepository) IncrementXP(ctx context.Context, id string, amount int64) (*model.XPSnapshot, error) {
	var snap model.XPSnapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRow{}).Where("id = ?", id).
			Update("xp", gorm.Expr("xp + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return database.ErrNotFound
		}
		// the row stays locked until commit, so after-minus-amount is the pre-increment value
		var row userRow
		if err := tx.Select("id", "xp", "coins").Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		snap = model.XPSnapshot{ID: row.ID, XP: row.XP - amount, Coins: row.Coins}
		return nil
	})
	if err != nil {
		return nil, translateGorm(err)
	}
	return &snap, nil
}

func (r *GormRepository) AddBadge(ctx context.Context, id, badgeID string) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return database.ErrNotFound
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&userBadgeRow{UserID: id, BadgeID: badgeID})
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translateGorm(err)
	}
	return added, nil
}

func (r *GormRepository) Purchase(ctx context.Context, id, itemID string, price int64) (int64, bool, error) {
	var coins int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRow{}).
			Where("id = ? AND coins >= ?", id, price).
			Where("NOT EXISTS (SELECT 1 FROM user_purchases p WHERE p.user_id = users.id AND p.item_id = ?)", itemID).
			Update("coins", gorm.Expr("coins - ?", price))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoMatch
		}
		if err := tx.Create(&userPurchaseRow{UserID: id, ItemID: itemID, Price: price}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// a concurrent purchase of the same item committed first
				return errNoMatch
			}
			return err
		}
		var row userRow
		if err := tx.Select("id", "coins").Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		coins = row.Coins
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return coins, true, nil
}

func (r *GormRepository) OwnsItem(ctx context.Context, id, itemID string) (bool, error) {
	var owns bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&userPurchaseRow{}).
			Where("user_id = ? AND item_id = ?", id, itemID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			owns = true
			return nil
		}
		ok, err := userExists(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return database.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return false, translateGorm(err)
	}
	return owns, nil
}

func (r *GormRepository) SetEquipped(ctx context.Context, id string, keys []string, itemID string) (map[string]string, error) {
	return r.changeEquipped(ctx, id, func(tx *gorm.DB) error {
		rows := make([]userEquippedRow, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, userEquippedRow{UserID: id, Slot: k, ItemID: itemID})
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_id"}),
		}).Create(&rows).Error
	})
}

func (r *GormRepository) ClearEquipped(ctx context.Context, id string, keys []string) (map[string]string, error) {
	return r.changeEquipped(ctx, id, func(tx *gorm.DB) error {
		return tx.Where("user_id = ? AND slot IN ?", id, keys).Delete(&userEquippedRow{}).Error
	})
}

func (r *GormRepository) changeEquipped(ctx context.Context, id string, change func(tx *gorm.DB) error) (map[string]string, error) {
	var out map[string]string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return database.ErrNotFound
		}
		if err := change(tx); err != nil {
			return err
		}
		out, err = loadEquipped(tx, id)
		return err
	})
	if err != nil {
		return nil, translateGorm(err)
	}
	return out, nil
}
