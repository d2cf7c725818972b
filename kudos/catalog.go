// Package kudos implements the recognition pipeline: the catalog of
// recognition types, submission validation, message formatting, and
// dispatch to the channel and the audit sinks.
package kudos

import (
	"fmt"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// Catalog is the immutable, ordered set of recognition types. It is built
// once at startup and safe for concurrent reads.
type Catalog struct {
	types []model.RecognitionType
	byID  map[string]model.RecognitionType
}

// NewCatalog builds a catalog from configuration, preserving order.
func NewCatalog(types []model.RecognitionType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("recognition catalog is empty")
	}
	byID := make(map[string]model.RecognitionType, len(types))
	for _, rt := range types {
		if _, dup := byID[rt.ID]; dup {
			return nil, fmt.Errorf("duplicate recognition id %q", rt.ID)
		}
		byID[rt.ID] = rt
	}
	return &Catalog{types: types, byID: byID}, nil
}

// All returns every recognition type in configuration order.
func (c *Catalog) All() []model.RecognitionType {
	return c.types
}

// Get looks up a recognition type by id.
func (c *Catalog) Get(id string) (model.RecognitionType, bool) {
	rt, ok := c.byID[id]
	return rt, ok
}
