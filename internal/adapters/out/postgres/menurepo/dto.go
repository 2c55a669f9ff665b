// Package menurepo persists the menu catalog and serves case-insensitive
// item lookups. Items are stored with a normalized name key so lookups hit
// an index instead of scanning with lower() per row.
package menurepo

import (
	"strings"

	"github.com/lib/pq"

	"fulfillment/internal/core/domain/model/menu"
)

// MenuItemDTO is the database row for one catalog item. NameKey is the
// lower-cased name and carries the unique lookup index.
type MenuItemDTO struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	NameKey      string `gorm:"uniqueIndex"`
	BasePrice    float64
	HasSize      bool
	Customizable bool
	Removable    pq.StringArray   `gorm:"type:text[]"`
	Addable      pq.StringArray   `gorm:"type:text[]"`
	Modifiable   pq.StringArray   `gorm:"type:text[]"`
	Sizes        []MenuItemSizeDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// MenuItemSizeDTO is one size label and its surcharge for a sized item.
type MenuItemSizeDTO struct {
	MenuItemID string `gorm:"primaryKey"`
	Label      string `gorm:"primaryKey"`
	Price      float64
}

// TableName overrides GORM's default naming to use "menu_item_sizes".
func (MenuItemSizeDTO) TableName() string {
	return "menu_item_sizes"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	dto := MenuItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		NameKey:   strings.ToLower(item.Name),
		BasePrice: item.BasePrice,
		HasSize:   item.HasSize,
	}

	for label, price := range item.Sizes {
		dto.Sizes = append(dto.Sizes, MenuItemSizeDTO{
			MenuItemID: item.ID,
			Label:      label,
			Price:      price,
		})
	}

	if item.Customizations != nil {
		dto.Customizable = true
		dto.Removable = item.Customizations.Removable
		dto.Addable = item.Customizations.Addable
		dto.Modifiable = item.Customizations.Modifiable
	}

	return dto
}

func toDomain(dto MenuItemDTO) *menu.Item {
	item := &menu.Item{
		ID:        dto.ID,
		Name:      dto.Name,
		BasePrice: dto.BasePrice,
		HasSize:   dto.HasSize,
	}

	if len(dto.Sizes) > 0 {
		item.Sizes = make(map[string]float64, len(dto.Sizes))
		for _, size := range dto.Sizes {
			item.Sizes[size.Label] = size.Price
		}
	}

	if dto.Customizable {
		item.Customizations = &menu.Customizations{
			Removable:  dto.Removable,
			Addable:    dto.Addable,
			Modifiable: dto.Modifiable,
		}
	}

	return item
}
