package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/profile"
)

// ProfileHandler normalizes raw academic inputs into profile values.
type ProfileHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{maxBytes: 15 << 20} // 15MB
}

type normalizeGPARequest struct {
	Text string   `json:"text"`
	GPA  *float64 `json:"gpa"`
}

// NormalizeGPA resolves free text or a numeric slot into a GPA on the 4.0 scale.
// @Summary Normalize a GPA or percentage
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body normalizeGPARequest true "raw value"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /profile/normalize-gpa [post]
func (h *ProfileHandler) NormalizeGPA(c *fiber.Ctx) error {
	var req normalizeGPARequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	result, err := profile.NormalizeGPA(req.Text, req.GPA)
	if err != nil {
		return gpaError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, gpaResultMap(result))
}

// Transcript extracts a GPA from an uploaded transcript (PDF or DOCX).
// @Summary Extract GPA from a transcript
// @Tags    profile
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "transcript file (PDF or DOCX)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /profile/transcript [post]
func (h *ProfileHandler) Transcript(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := profile.ParseTranscriptText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to read transcript")
	}
	result, err := profile.NormalizeGPA(text, nil)
	if err != nil {
		return gpaError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, gpaResultMap(result))
}

func gpaError(c *fiber.Ctx, err error) error {
	var ambiguous profile.AmbiguousValueError
	var outOfRange profile.OutOfRangeError
	switch {
	case errors.As(err, &ambiguous):
		return presenter.Error(c, http.StatusUnprocessableEntity, ambiguous.Error())
	case errors.As(err, &outOfRange):
		return presenter.Error(c, http.StatusUnprocessableEntity, outOfRange.Error())
	default:
		return presenter.Error(c, http.StatusUnprocessableEntity, "could not read a gpa or percentage")
	}
}

func gpaResultMap(result profile.GPAResult) fiber.Map {
	out := fiber.Map{"gpa": result.GPA}
	if result.FromPercentage {
		out["percentage"] = result.Percentage
	} else {
		out["percentage"] = profile.GPAToPercentage(result.GPA)
	}
	return out
}

// readAtMost reads r fully but refuses inputs larger than max bytes.
func readAtMost(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, errors.New("file is too large")
	}
	return data, nil
}
