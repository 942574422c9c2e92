package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nhero-website/internal/pkg/i18n"
	"github.com/nhero-website/internal/pkg/utils"
	"github.com/nhero-website/internal/usecase"
	"go.uber.org/zap"
)

// PageHandler serves the composed, localized page payloads. Every route
// here is locale-prefixed except /links.
type PageHandler struct {
	pageUC *usecase.PageUsecase
	logger *zap.Logger
}

func NewPageHandler(pageUC *usecase.PageUsecase, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		pageUC: pageUC,
		logger: logger,
	}
}

// locale validates the :locale path segment. ok=false means the request
// must resolve to the branded not-found page.
func (h *PageHandler) locale(c *fiber.Ctx) (string, bool) {
	locale := c.Params("locale")
	return locale, i18n.IsSupported(locale)
}

func (h *PageHandler) sendPage(c *fiber.Ctx, locale string, page interface{}) error {
	return utils.SendSuccess(c, page, &utils.Meta{Locale: locale})
}

// sendNotFound serves the branded not-found payload with a 404 status.
func (h *PageHandler) sendNotFound(c *fiber.Ctx, locale string) error {
	nf := h.pageUC.NotFound(locale)
	return c.Status(fiber.StatusNotFound).JSON(utils.SuccessResponse{
		Data: nf,
		Meta: &utils.Meta{Locale: nf.Locale},
	})
}

// Home godoc
// @Summary Home page payload
// @Description Hero, experience cards and the announcement stack for the landing page
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Success 200 {object} utils.SuccessResponse{data=dto.HomePage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale} [get]
func (h *PageHandler) Home(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, h.pageUC.Home(c.Context(), locale))
}

// Experiences godoc
// @Summary Experiences listing payload
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Success 200 {object} utils.SuccessResponse{data=dto.ExperiencesPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/esperienze [get]
func (h *PageHandler) Experiences(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, h.pageUC.Experiences(c.Context(), locale))
}

// Experience godoc
// @Summary Experience detail payload
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Param slug path string true "Experience slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.ExperiencePage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/esperienze/{slug} [get]
func (h *PageHandler) Experience(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	page := h.pageUC.ExperienceBySlug(c.Context(), locale, c.Params("slug"))
	if page == nil {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, page)
}

// Menu godoc
// @Summary Menu payload
// @Description Published menu categories and items; filterable by category id and free text
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Param category query string false "Category id filter"
// @Param q query string false "Free-text search over name and description"
// @Success 200 {object} utils.SuccessResponse{data=dto.MenuPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/menu [get]
func (h *PageHandler) Menu(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, h.pageUC.Menu(c.Context(), locale, c.Query("category"), c.Query("q")))
}

// Events godoc
// @Summary Events listing payload
// @Description Upcoming events newest first; ?past=true includes past events
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Param past query bool false "Include past events"
// @Success 200 {object} utils.SuccessResponse{data=dto.EventsPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/eventi [get]
func (h *PageHandler) Events(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	includePast := c.QueryBool("past", false)
	return h.sendPage(c, locale, h.pageUC.Events(c.Context(), locale, includePast))
}

// Event godoc
// @Summary Event detail payload
// @Description Accessible by slug regardless of past/future
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Param slug path string true "Event slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.EventPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/eventi/{slug} [get]
func (h *PageHandler) Event(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	page := h.pageUC.EventBySlug(c.Context(), locale, c.Params("slug"))
	if page == nil {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, page)
}

// Business godoc
// @Summary Business page payload
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusinessPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/business [get]
func (h *PageHandler) Business(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, h.pageUC.Business(c.Context(), locale))
}

// Contacts godoc
// @Summary Contacts page payload
// @Tags Pages
// @Produce json
// @Param locale path string true "Locale (it, en)"
// @Success 200 {object} utils.SuccessResponse{data=dto.ContactsPage}
// @Failure 404 {object} utils.SuccessResponse{data=dto.NotFoundPage}
// @Router /{locale}/contatti [get]
func (h *PageHandler) Contacts(c *fiber.Ctx) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.sendNotFound(c, locale)
	}
	return h.sendPage(c, locale, h.pageUC.Contacts(c.Context(), locale))
}

// Static serves an editor-managed page by slug (privacy, cookie).
func (h *PageHandler) Static(slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := h.locale(c)
		if !ok {
			return h.sendNotFound(c, locale)
		}
		page := h.pageUC.Static(c.Context(), locale, slug)
		if page == nil {
			return h.sendNotFound(c, locale)
		}
		return h.sendPage(c, locale, page)
	}
}

// Links godoc
// @Summary Link-in-bio payload
// @Description Intentionally exempt from locale prefixing and page chrome
// @Tags Pages
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LinksPage}
// @Router /links [get]
func (h *PageHandler) Links(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.pageUC.Links(c.Context()), nil)
}
