package menurepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/pkg/errs"
)

// GormMenuRepository implements the menu catalog over GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Upsert inserts or replaces a catalog item definition and its sizes.
func (r *GormMenuRepository) Upsert(ctx context.Context, item *menu.Item) error {
	dto := fromDomain(item)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit("Sizes").Create(&dto).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", dto.ID).Delete(&MenuItemSizeDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Sizes) == 0 {
			return nil
		}
		return tx.Create(&dto.Sizes).Error
	})
}

// Lookup fetches an item by name, case-insensitively, through the
// normalized name key.
func (r *GormMenuRepository) Lookup(ctx context.Context, name string) (*menu.Item, error) {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		First(&dto, "name_key = ?", strings.ToLower(name)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", name)
		}
		return nil, err
	}

	return toDomain(dto), nil
}
