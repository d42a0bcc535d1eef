package checkers

import (
	"context"
	"errors"

	"github.com/sabin7k/ukstudy/pkg/catalog"
)

// CatalogChecker reports unready when the university snapshot is empty,
// which usually means the data file failed to load at startup.
type CatalogChecker struct {
	snapshot *catalog.Snapshot
}

func NewCatalogChecker(snapshot *catalog.Snapshot) *CatalogChecker {
	return &CatalogChecker{snapshot: snapshot}
}

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(ctx context.Context) error {
	if c.snapshot == nil || c.snapshot.Len() == 0 {
		return errors.New("university catalog is empty")
	}
	return nil
}
