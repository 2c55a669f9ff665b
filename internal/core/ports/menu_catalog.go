package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/menu"
)

// MenuCatalog is the lookup contract for catalog item definitions.
// Implementations must match names case-insensitively; how they do it
// (index, scan) is their concern. A miss is reported as errs.ObjectNotFound.
type MenuCatalog interface {
	Lookup(ctx context.Context, name string) (*menu.Item, error)
}
