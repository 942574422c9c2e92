package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nhero-website/internal/pkg/i18n"
	"github.com/nhero-website/internal/pkg/utils"
	"github.com/nhero-website/internal/usecase"
	"github.com/nhero-website/internal/usecase/dto"
	"go.uber.org/zap"
)

// SubmissionHandler owns the two lead endpoints and the captcha issuer.
// Response shapes here are part of the public contract: flat
// {success,message} / {error} bodies, not the standard envelope.
type SubmissionHandler struct {
	submissionUC *usecase.SubmissionUsecase
	captchaUC    *usecase.CaptchaUsecase
	logger       *zap.Logger
}

func NewSubmissionHandler(
	submissionUC *usecase.SubmissionUsecase,
	captchaUC *usecase.CaptchaUsecase,
	logger *zap.Logger,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: submissionUC,
		captchaUC:    captchaUC,
		logger:       logger,
	}
}

// locale picks the response language from the optional ?locale= query.
func (h *SubmissionHandler) locale(c *fiber.Ctx) string {
	if locale := c.Query("locale"); i18n.IsSupported(locale) {
		return locale
	}
	return i18n.DefaultLocale
}

// Contact godoc
// @Summary Submit a contact message
// @Description Validates the lead (including the arithmetic captcha) and writes it into the CMS with status "new"
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact lead"
// @Success 200 {object} utils.SubmissionOK
// @Failure 400 {object} utils.SubmissionError
// @Failure 500 {object} utils.SubmissionError
// @Router /api/contact [post]
func (h *SubmissionHandler) Contact(c *fiber.Ctx) error {
	locale := h.locale(c)

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "errors.contactRequired"),
		})
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "errors.contactRequired"),
		})
	}

	if err := h.submissionUC.SubmitContact(c.Context(), locale, req); err != nil {
		var fieldErrs *usecase.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
				Error:  i18n.T(locale, "errors.checkFields"),
				Fields: fieldErrs.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "contacts.form.error"),
		})
	}

	return c.JSON(utils.SubmissionOK{
		Success: true,
		Message: i18n.T(locale, "contacts.form.success"),
	})
}

// BusinessQuote godoc
// @Summary Submit a business quote request
// @Description Validates the request and writes it into the CMS with status "new"; no captcha on this form
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.BusinessQuoteRequest true "Quote request"
// @Success 200 {object} utils.SubmissionOK
// @Failure 400 {object} utils.SubmissionError
// @Failure 500 {object} utils.SubmissionError
// @Router /api/business-quote [post]
func (h *SubmissionHandler) BusinessQuote(c *fiber.Ctx) error {
	locale := h.locale(c)

	var req dto.BusinessQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "errors.quoteRequired"),
		})
	}

	if req.Name == "" || req.Company == "" || req.Email == "" || req.EventType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "errors.quoteRequired"),
		})
	}

	if err := h.submissionUC.SubmitBusinessQuote(c.Context(), locale, req); err != nil {
		var fieldErrs *usecase.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.SubmissionError{
				Error:  i18n.T(locale, "errors.checkFields"),
				Fields: fieldErrs.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.SubmissionError{
			Error: i18n.T(locale, "business.form.error"),
		})
	}

	return c.JSON(utils.SubmissionOK{
		Success: true,
		Message: i18n.T(locale, "business.form.success"),
	})
}

// Captcha godoc
// @Summary Issue a fresh captcha challenge
// @Description A new challenge is requested each time the contact dialog opens and after every submission attempt
// @Tags Submissions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CaptchaResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/captcha [get]
func (h *SubmissionHandler) Captcha(c *fiber.Ctx) error {
	challenge, err := h.captchaUC.Generate(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, challenge, nil)
}
