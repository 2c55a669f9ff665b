package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the catalog straight from the database,
// bypassing the domain model: read surfaces need rows, not aggregates.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns all catalog items sorted by name, each with its size
// surcharges attached.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)
	index := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.base_price,
			m.has_size,
			s.label,
			s.price
		FROM menu_items m
		LEFT JOIN menu_item_sizes s ON s.menu_item_id = m.id
		ORDER BY m.name, s.label
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  GetMenuQueryResponse
			label sql.NullString
			price sql.NullFloat64
		)

		if err = rows.Scan(&item.ID, &item.Name, &item.BasePrice, &item.HasSize, &label, &price); err != nil {
			return nil, err
		}

		pos, seen := index[item.ID]
		if !seen {
			pos = len(items)
			index[item.ID] = pos
			items = append(items, item)
		}

		if label.Valid {
			if items[pos].Sizes == nil {
				items[pos].Sizes = make(map[string]float64)
			}
			items[pos].Sizes[label.String] = price.Float64
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
