package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/nlp"
	"github.com/sabin7k/ukstudy/pkg/profile"
	"github.com/sabin7k/ukstudy/pkg/recommend"
)

type RecommendHandler struct {
	svc      recommend.UseCase
	validate *validator.Validate
}

func NewRecommendHandler(svc recommend.UseCase) *RecommendHandler {
	return &RecommendHandler{svc: svc, validate: validator.New()}
}

type profileRequest struct {
	GPA      *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	GPAText  string   `json:"gpaText"`
	IELTS    *float64 `json:"ielts"`
	PTE      *float64 `json:"pte" validate:"omitempty,gte=0,lte=90"`
	TOEFL    *float64 `json:"toefl" validate:"omitempty,gte=0,lte=120"`
	Waiver   *bool    `json:"englishWaiver"`
	MOI      *bool    `json:"moiCertificate"`
	Budget   *float64 `json:"budget" validate:"omitempty,gt=0"`
	// BudgetText accepts "£20,000" style values when the numeric slot is absent.
	BudgetText string `json:"budgetText"`
	Location string   `json:"location"`
	Level    string   `json:"studyLevel"`
	Field    string   `json:"field"`
}

// toProfile builds the domain profile. A textual GPA takes priority over
// the numeric slot only when the slot is absent.
func (r profileRequest) toProfile() (profile.Profile, error) {
	if r.IELTS != nil {
		if err := profile.ValidateIELTS(*r.IELTS); err != nil {
			return profile.Profile{}, err
		}
	}
	p := profile.Profile{
		GPA:            r.GPA,
		IELTS:          r.IELTS,
		PTE:            r.PTE,
		TOEFL:          r.TOEFL,
		EnglishWaiver:  r.Waiver,
		MOICertificate: r.MOI,
		BudgetGBP:      r.Budget,
		LocationPref:   r.Location,
		FieldOfStudy:   r.Field,
	}
	if level, ok := profile.NormalizeStudyLevel(r.Level); ok {
		p.StudyLevel = level
	}
	// Free-text fields are mapped to a display name when recognized.
	if canonical, ok := nlp.CanonicalField(r.Field); ok {
		p.FieldOfStudy = canonical
	}
	if p.GPA == nil && r.GPAText != "" {
		res, err := profile.NormalizeGPA(r.GPAText, nil)
		if err != nil {
			return profile.Profile{}, err
		}
		gpa := res.GPA
		p.GPA = &gpa
	}
	if p.BudgetGBP == nil && r.BudgetText != "" {
		budget, err := profile.NormalizeBudget(r.BudgetText)
		if err != nil {
			return profile.Profile{}, err
		}
		p.BudgetGBP = &budget
	}
	return p, nil
}

type resultResponse struct {
	Name     string   `json:"name"`
	Fee      *float64 `json:"fee,omitempty"`
	Location string   `json:"location,omitempty"`
	Ranking  string   `json:"ranking,omitempty"`
	Note     string   `json:"note,omitempty"`
}

func toResponses(results []recommend.Result) []resultResponse {
	out := make([]resultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, resultResponse{
			Name:     r.Name,
			Fee:      r.Fee,
			Location: r.Location,
			Ranking:  r.Ranking,
			Note:     r.Note,
		})
	}
	return out
}

// parseProfile decodes and validates the request body. When ok is false the
// error response has already been written and the handler must return err.
func (h *RecommendHandler) parseProfile(c *fiber.Ctx) (p profile.Profile, ok bool, err error) {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.Profile{}, false, presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return profile.Profile{}, false, presenter.Error(c, http.StatusBadRequest, "profile values out of range")
	}
	p, convErr := req.toProfile()
	if convErr != nil {
		var ambiguous profile.AmbiguousValueError
		var outOfRange profile.OutOfRangeError
		switch {
		case errors.As(convErr, &ambiguous):
			return profile.Profile{}, false, presenter.Error(c, http.StatusUnprocessableEntity, ambiguous.Error())
		case errors.As(convErr, &outOfRange):
			return profile.Profile{}, false, presenter.Error(c, http.StatusUnprocessableEntity, outOfRange.Error())
		default:
			return profile.Profile{}, false, presenter.Error(c, http.StatusUnprocessableEntity, convErr.Error())
		}
	}
	return p, true, nil
}

// Strict returns universities matching every stated criterion.
// @Summary Strict recommendations
// @Tags    recommend
// @Accept  json
// @Produce json
// @Param   input body profileRequest true "student profile"
// @Security BearerAuth
// @Success 200 {array} resultResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /recommend/strict [post]
func (h *RecommendHandler) Strict(c *fiber.Ctx) error {
	p, ok, err := h.parseProfile(c)
	if !ok {
		return err
	}
	return presenter.JSON(c, http.StatusOK, toResponses(h.svc.Strict(p)))
}

// Relaxed returns universities under softened criteria with explanatory notes.
// @Summary Relaxed recommendations
// @Tags    recommend
// @Accept  json
// @Produce json
// @Param   input body profileRequest true "student profile"
// @Security BearerAuth
// @Success 200 {array} resultResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /recommend/relaxed [post]
func (h *RecommendHandler) Relaxed(c *fiber.Ctx) error {
	p, ok, err := h.parseProfile(c)
	if !ok {
		return err
	}
	return presenter.JSON(c, http.StatusOK, toResponses(h.svc.Relaxed(p)))
}

type budgetRequest struct {
	Budget float64 `json:"budget" validate:"required,gt=0"`
}

// ByBudget lists universities whose fee fits the given budget.
// @Summary Universities within a budget
// @Tags    recommend
// @Accept  json
// @Produce json
// @Param   input body budgetRequest true "budget in GBP"
// @Security BearerAuth
// @Success 200 {array} resultResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /recommend/by-budget [post]
func (h *RecommendHandler) ByBudget(c *fiber.Ctx) error {
	var req budgetRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "budget must be a positive number")
	}
	return presenter.JSON(c, http.StatusOK, toResponses(h.svc.ByBudget(req.Budget)))
}

// WaiverFriendly lists universities that mention English waiver options.
// @Summary Waiver-friendly universities
// @Tags    recommend
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resultResponse
// @Router  /recommend/waiver-friendly [get]
func (h *RecommendHandler) WaiverFriendly(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, toResponses(h.svc.WaiverFriendly()))
}

// Affordable lists the cheapest universities with a known fee.
// @Summary Most affordable universities
// @Tags    recommend
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resultResponse
// @Router  /recommend/affordable [get]
func (h *RecommendHandler) Affordable(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, toResponses(h.svc.Affordable()))
}
