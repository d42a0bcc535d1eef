package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/advice"
)

// AdviceHandler serves static application guidance.
type AdviceHandler struct {
	checklist advice.Checklist
}

func NewAdviceHandler(checklist advice.Checklist) *AdviceHandler {
	return &AdviceHandler{checklist: checklist}
}

// Checklist returns the document checklist for UK applications.
// @Summary Application document checklist
// @Tags    advice
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /advice/checklist [get]
func (h *AdviceHandler) Checklist(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"documentChecklist": h.checklist.DocumentChecklist,
	})
}

// LivingCost returns UKVI living-cost estimates inside and outside London.
// @Summary Living-cost estimates
// @Tags    advice
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /advice/living-cost [get]
func (h *AdviceHandler) LivingCost(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"insideLondon": fiber.Map{
			"student9MonthsGbp": h.checklist.LivingCost.InsideLondon.Student9MonthsGBP,
			"studentMonthlyGbp": h.checklist.LivingCost.InsideLondon.StudentMonthlyGBP,
		},
		"outsideLondon": fiber.Map{
			"student9MonthsGbp": h.checklist.LivingCost.OutsideLondon.Student9MonthsGBP,
			"studentMonthlyGbp": h.checklist.LivingCost.OutsideLondon.StudentMonthlyGBP,
		},
	})
}
