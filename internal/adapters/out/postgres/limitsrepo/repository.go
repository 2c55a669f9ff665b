// Package limitsrepo loads the externally managed quantity-limit
// configuration. The configuration is a single row plus per-item override
// rows; an empty table means no limits are enforced.
package limitsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// LimitsConfigDTO is the singleton configuration row.
type LimitsConfigDTO struct {
	ID              uint `gorm:"primaryKey"`
	FoodDefaultMax  int
	DrinkDefaultMax int
	ExceedMessage   string
	ItemLimits      []ItemLimitDTO `gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "order_limits_config".
func (LimitsConfigDTO) TableName() string {
	return "order_limits_config"
}

// ItemLimitDTO is a per-item maximum overriding the category default.
type ItemLimitDTO struct {
	ConfigID    uint   `gorm:"primaryKey"`
	ItemID      string `gorm:"primaryKey"`
	Category    string
	MaxQuantity int
}

// TableName overrides GORM's default naming to use "order_item_limits".
func (ItemLimitDTO) TableName() string {
	return "order_item_limits"
}

// GormLimitsProvider implements the limits configuration provider over GORM.
type GormLimitsProvider struct {
	db *gorm.DB
}

// NewGormLimitsProvider creates a new GORM limits provider.
func NewGormLimitsProvider(db *gorm.DB) *GormLimitsProvider {
	return &GormLimitsProvider{db: db}
}

// Get loads the configuration. An absent row is (nil, nil): no limits
// configured is a valid state, not an error.
func (r *GormLimitsProvider) Get(ctx context.Context) (*ports.LimitsConfig, error) {
	var dto LimitsConfigDTO
	err := r.db.WithContext(ctx).Preload("ItemLimits").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cfg := &ports.LimitsConfig{
		Food:          ports.CategoryLimit{DefaultMaxQuantity: dto.FoodDefaultMax},
		Drink:         ports.CategoryLimit{DefaultMaxQuantity: dto.DrinkDefaultMax},
		ExceedMessage: dto.ExceedMessage,
	}

	for _, limit := range dto.ItemLimits {
		switch order.Category(limit.Category) {
		case order.CategoryDrink:
			if cfg.Drink.ItemLimits == nil {
				cfg.Drink.ItemLimits = make(map[string]int)
			}
			cfg.Drink.ItemLimits[limit.ItemID] = limit.MaxQuantity
		default:
			if cfg.Food.ItemLimits == nil {
				cfg.Food.ItemLimits = make(map[string]int)
			}
			cfg.Food.ItemLimits[limit.ItemID] = limit.MaxQuantity
		}
	}

	return cfg, nil
}

// Save replaces the configuration row and its item overrides.
func (r *GormLimitsProvider) Save(ctx context.Context, dto LimitsConfigDTO) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ItemLimitDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&LimitsConfigDTO{}).Error; err != nil {
			return err
		}
		return tx.Create(&dto).Error
	})
}
