package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/catalog"
)

// CatalogHandler exposes the loaded university snapshot.
type CatalogHandler struct {
	snapshot catalog.Snapshot
}

func NewCatalogHandler(snapshot catalog.Snapshot) *CatalogHandler {
	return &CatalogHandler{snapshot: snapshot}
}

// List returns universities from the snapshot with limit/offset paging.
// @Summary List universities
// @Tags    catalog
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "page start"
// @Success 200 {object} map[string]any
// @Router  /universities [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)

	total := h.snapshot.Len()
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]fiber.Map, 0, end-offset)
	for _, u := range h.snapshot.Universities[offset:end] {
		item := fiber.Map{
			"name":     catalog.DisplayName(u.Name),
			"location": u.Location,
			"ranking":  u.Ranking,
		}
		if item["location"] == "" {
			item["location"] = catalog.LocationFromName(u.Name)
		}
		if fee, ok := catalog.FeeFor(u); ok {
			item["fee"] = fee
		}
		out = append(out, item)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"total":        total,
		"universities": out,
	})
}
