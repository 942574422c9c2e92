package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	"github.com/nhero-website/internal/infrastructure/directus"
	"github.com/nhero-website/internal/pkg/i18n"
	"github.com/nhero-website/internal/usecase/dto"
)

// Image widths requested from the asset endpoint, matching what the
// frontend layouts render.
const (
	heroImageWidth    = 1920
	galleryImageWidth = 1200
	cardImageWidth    = 600
)

// PageUsecase composes per-route payloads: it pulls the content each
// route needs (concurrently, the reads are independent), rewrites image
// references into asset URLs and decides empty/fallback states. All
// degradation already happened in the content layer, so composition
// itself cannot fail; detail routes return nil on a slug miss.
type PageUsecase struct {
	content *ContentUsecase
	assets  *directus.AssetResolver
	logger  *zap.Logger
}

func NewPageUsecase(content *ContentUsecase, assets *directus.AssetResolver, logger *zap.Logger) *PageUsecase {
	return &PageUsecase{
		content: content,
		assets:  assets,
		logger:  logger,
	}
}

// chrome builds the shared frame: nav labels in the active locale with
// locale-prefixed hrefs, plus footer globals.
func (uc *PageUsecase) chrome(locale string, globals *domain.Globals) dto.Chrome {
	nav := []dto.Link{
		{Label: i18n.T(locale, "nav.home"), Href: i18n.Path(locale, "")},
		{Label: i18n.T(locale, "nav.experiences"), Href: i18n.Path(locale, "esperienze")},
		{Label: i18n.T(locale, "nav.menu"), Href: i18n.Path(locale, "menu")},
		{Label: i18n.T(locale, "nav.events"), Href: i18n.Path(locale, "eventi")},
		{Label: i18n.T(locale, "nav.business"), Href: i18n.Path(locale, "business")},
		{Label: i18n.T(locale, "nav.contacts"), Href: i18n.Path(locale, "contatti")},
	}
	return dto.Chrome{
		Locale:  locale,
		Nav:     nav,
		Globals: uc.globalsDTO(globals),
	}
}

func (uc *PageUsecase) globalsDTO(g *domain.Globals) *dto.Globals {
	if g == nil {
		return nil
	}
	hours := make([]dto.OpeningHour, 0, len(g.OpeningHours))
	for _, h := range g.OpeningHours {
		hours = append(hours, dto.OpeningHour{Day: h.Day, Hours: h.Hours})
	}
	return &dto.Globals{
		SiteName:       g.SiteName,
		Tagline:        g.Tagline,
		Address:        g.Address,
		Phone:          g.Phone,
		Email:          g.Email,
		GoogleMapsURL:  g.GoogleMapsURL,
		OpeningHours:   hours,
		Instagram:      g.Instagram,
		Facebook:       g.Facebook,
		TikTok:         g.TikTok,
		LinkedIn:       g.LinkedIn,
		ReservationURL: g.ReservationURL,
		DeliveryURL:    g.DeliveryURL,
		MenuURL:        g.MenuURL,
	}
}

func (uc *PageUsecase) imageURL(ref domain.ImageRef, width int) string {
	return uc.assets.ImageURL(ref.ID, width)
}

func (uc *PageUsecase) galleryURLs(refs []domain.ImageRef) []string {
	if len(refs) == 0 {
		return nil
	}
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if url := uc.imageURL(ref, galleryImageWidth); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// heroFromPage prefers editor-managed hero fields, falling back to the
// given defaults when the page record is missing.
func (uc *PageUsecase) heroFromPage(page *domain.Page, fallbackTitle, fallbackSubtitle string) dto.Hero {
	hero := dto.Hero{Title: fallbackTitle, Subtitle: fallbackSubtitle}
	if page == nil {
		return hero
	}
	if page.HeroTitle != "" {
		hero.Title = page.HeroTitle
	}
	if page.HeroSubtitle != "" {
		hero.Subtitle = page.HeroSubtitle
	}
	hero.ImageURL = uc.imageURL(page.HeroImage, heroImageWidth)
	return hero
}

func (uc *PageUsecase) experienceCards(locale string, experiences []domain.Experience) []dto.ExperienceCard {
	cards := make([]dto.ExperienceCard, 0, len(experiences))
	for _, exp := range experiences {
		cards = append(cards, dto.ExperienceCard{
			Slug:     exp.Slug,
			Title:    exp.Title,
			Subtitle: exp.Subtitle,
			Icon:     exp.Icon,
			Color:    exp.Color,
			ImageURL: uc.imageURL(exp.HeroImage, cardImageWidth),
			Href:     i18n.Path(locale, "esperienze/"+exp.Slug),
		})
	}
	return cards
}

func (uc *PageUsecase) faqItems(faqs []domain.FAQ) []dto.FAQItem {
	items := make([]dto.FAQItem, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, dto.FAQItem{
			Question: f.Question,
			Answer:   f.Answer,
			Category: f.Category,
		})
	}
	return items
}

// Home composes the landing page: hero from the "home" page record,
// experience cards and the announcement stack.
func (uc *PageUsecase) Home(ctx context.Context, locale string) *dto.HomePage {
	var (
		home        *domain.Page
		experiences []domain.Experience
		avvisi      []domain.Avviso
		globals     *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { home = uc.content.GetPageBySlug(gctx, "home"); return nil })
	g.Go(func() error { experiences = uc.content.GetExperiences(gctx); return nil })
	g.Go(func() error { avvisi = uc.content.GetAvvisi(gctx); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	avvisiDTO := make([]dto.AvvisoDTO, 0, len(avvisi))
	for _, a := range avvisi {
		avvisiDTO = append(avvisiDTO, dto.AvvisoDTO{
			Titolo:      a.Titolo,
			Descrizione: a.Descrizione,
			FotoURL:     uc.imageURL(a.Foto, cardImageWidth),
			CTALabel:    a.CTALabel,
			CTAURL:      a.CTAURL,
		})
	}

	return &dto.HomePage{
		Chrome:      uc.chrome(locale, globals),
		Hero:        uc.heroFromPage(home, "Nhero Milano", i18n.T(locale, "experiences.subtitle")),
		Experiences: uc.experienceCards(locale, experiences),
		Avvisi:      avvisiDTO,
	}
}

// Experiences composes the experiences listing.
func (uc *PageUsecase) Experiences(ctx context.Context, locale string) *dto.ExperiencesPage {
	var (
		experiences []domain.Experience
		globals     *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { experiences = uc.content.GetExperiences(gctx); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	page := &dto.ExperiencesPage{
		Chrome:      uc.chrome(locale, globals),
		Title:       i18n.T(locale, "experiences.title"),
		Experiences: uc.experienceCards(locale, experiences),
	}
	if len(page.Experiences) == 0 {
		page.EmptyMessage = i18n.T(locale, "experiences.empty")
	}
	return page
}

// ExperienceBySlug composes an experience detail page, nil on slug miss.
func (uc *PageUsecase) ExperienceBySlug(ctx context.Context, locale, slug string) *dto.ExperiencePage {
	var (
		exp     *domain.Experience
		globals *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { exp = uc.content.GetExperienceBySlug(gctx, slug); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	if exp == nil {
		return nil
	}

	categories := make([]dto.MenuCategory, 0, len(exp.MenuCategories))
	for _, cat := range exp.MenuCategories {
		categories = append(categories, dto.MenuCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Slug:        cat.Slug,
			Description: cat.Description,
		})
	}

	return &dto.ExperiencePage{
		Chrome: uc.chrome(locale, globals),
		Experience: dto.ExperienceDetail{
			Slug:           exp.Slug,
			Title:          exp.Title,
			Subtitle:       exp.Subtitle,
			Description:    exp.Description,
			HeroImageURL:   uc.imageURL(exp.HeroImage, heroImageWidth),
			GalleryURLs:    uc.galleryURLs(exp.Gallery),
			MenuCategories: categories,
		},
	}
}

// Menu composes the menu page with optional category and free-text
// filters. Categories and items are independent reads.
func (uc *PageUsecase) Menu(ctx context.Context, locale, categoryID, search string) *dto.MenuPage {
	var (
		categories []domain.MenuCategory
		items      []domain.MenuItem
		globals    *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { categories = uc.content.GetMenuCategories(gctx, ""); return nil })
	g.Go(func() error {
		items = uc.content.GetMenuItems(gctx, repository.MenuItemFilter{
			CategoryID: categoryID,
			Search:     search,
		})
		return nil
	})
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	categoriesDTO := make([]dto.MenuCategory, 0, len(categories))
	for _, cat := range categories {
		categoriesDTO = append(categoriesDTO, dto.MenuCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Slug:        cat.Slug,
			Description: cat.Description,
		})
	}

	itemsDTO := make([]dto.MenuItemDTO, 0, len(items))
	for _, item := range items {
		itemsDTO = append(itemsDTO, dto.MenuItemDTO{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price,
			Category:     item.Category,
			ImageURL:     uc.imageURL(item.Image, cardImageWidth),
			IsVegetarian: item.IsVegetarian,
			IsVegan:      item.IsVegan,
			IsGlutenFree: item.IsGlutenFree,
			Allergens:    item.Allergens,
			IsFeatured:   item.IsFeatured,
		})
	}

	page := &dto.MenuPage{
		Chrome:     uc.chrome(locale, globals),
		Title:      i18n.T(locale, "menu.title"),
		Categories: categoriesDTO,
		Items:      itemsDTO,
	}
	if len(itemsDTO) == 0 {
		page.EmptyMessage = i18n.T(locale, "menu.empty")
	}
	return page
}

// Events composes the events listing. An empty list is a neutral
// "nothing scheduled" state, never an error.
func (uc *PageUsecase) Events(ctx context.Context, locale string, includePast bool) *dto.EventsPage {
	var (
		events  []domain.Event
		globals *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { events = uc.content.GetEvents(gctx, includePast); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	cards := make([]dto.EventCard, 0, len(events))
	for _, ev := range events {
		cards = append(cards, uc.eventCard(locale, ev))
	}

	page := &dto.EventsPage{
		Chrome: uc.chrome(locale, globals),
		Title:  i18n.T(locale, "events.title"),
		Events: cards,
	}
	if len(cards) == 0 {
		page.EmptyMessage = i18n.T(locale, "events.empty")
	}
	return page
}

func (uc *PageUsecase) eventCard(locale string, ev domain.Event) dto.EventCard {
	card := dto.EventCard{
		Slug:         ev.Slug,
		Title:        ev.Title,
		DateEvent:    ev.DateEvent,
		TimeStart:    ev.TimeStart,
		TimeEnd:      ev.TimeEnd,
		CoverURL:     uc.imageURL(ev.CoverImage, cardImageWidth),
		IsPast:       ev.IsPast,
		ExternalLink: ev.ExternalLink,
	}
	if ev.Slug != "" {
		card.Href = i18n.Path(locale, "eventi/"+ev.Slug)
	}
	return card
}

// EventBySlug composes an event detail page, nil on slug miss. Past
// events remain reachable here.
func (uc *PageUsecase) EventBySlug(ctx context.Context, locale, slug string) *dto.EventPage {
	var (
		ev      *domain.Event
		globals *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { ev = uc.content.GetEventBySlug(gctx, slug); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	if ev == nil {
		return nil
	}

	return &dto.EventPage{
		Chrome: uc.chrome(locale, globals),
		Event: dto.EventDetail{
			EventCard:   uc.eventCard(locale, *ev),
			Description: ev.Description,
			GalleryURLs: uc.galleryURLs(ev.Gallery),
		},
	}
}

// Business composes the corporate page: hero, services and FAQ.
func (uc *PageUsecase) Business(ctx context.Context, locale string) *dto.BusinessPage {
	var (
		page     *domain.Page
		services []domain.BusinessService
		faqs     []domain.FAQ
		globals  *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { page = uc.content.GetPageBySlug(gctx, "business"); return nil })
	g.Go(func() error { services = uc.content.GetBusinessServices(gctx); return nil })
	g.Go(func() error { faqs = uc.content.GetFAQs(gctx, "business"); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	servicesDTO := make([]dto.ServiceCard, 0, len(services))
	for _, s := range services {
		servicesDTO = append(servicesDTO, dto.ServiceCard{
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			ImageURL:    uc.imageURL(s.Image, cardImageWidth),
		})
	}

	return &dto.BusinessPage{
		Chrome:   uc.chrome(locale, globals),
		Hero:     uc.heroFromPage(page, i18n.T(locale, "business.title"), ""),
		Services: servicesDTO,
		FAQs:     uc.faqItems(faqs),
	}
}

// Contacts composes the contacts page around the globals record.
func (uc *PageUsecase) Contacts(ctx context.Context, locale string) *dto.ContactsPage {
	var (
		page    *domain.Page
		faqs    []domain.FAQ
		globals *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { page = uc.content.GetPageBySlug(gctx, "contatti"); return nil })
	g.Go(func() error { faqs = uc.content.GetFAQs(gctx, "general"); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	return &dto.ContactsPage{
		Chrome: uc.chrome(locale, globals),
		Hero:   uc.heroFromPage(page, i18n.T(locale, "contacts.title"), ""),
		FAQs:   uc.faqItems(faqs),
	}
}

// Static composes an editor-managed page (privacy, cookie), nil on miss.
func (uc *PageUsecase) Static(ctx context.Context, locale, slug string) *dto.StaticPage {
	var (
		page    *domain.Page
		globals *domain.Globals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { page = uc.content.GetPageBySlug(gctx, slug); return nil })
	g.Go(func() error { globals = uc.content.GetGlobals(gctx); return nil })
	_ = g.Wait()

	if page == nil {
		return nil
	}

	return &dto.StaticPage{
		Chrome:  uc.chrome(locale, globals),
		Title:   page.Title,
		Content: page.Content,
	}
}

// Links composes the link-in-bio payload from globals alone. No locale
// prefix, no chrome.
func (uc *PageUsecase) Links(ctx context.Context) *dto.LinksPage {
	globals := uc.content.GetGlobals(ctx)

	page := &dto.LinksPage{Links: []dto.Link{}}
	if globals == nil {
		return page
	}

	page.SiteName = globals.SiteName
	page.Tagline = globals.Tagline

	add := func(label, href string) {
		if href != "" {
			page.Links = append(page.Links, dto.Link{Label: label, Href: href})
		}
	}
	add("Prenota", globals.ReservationURL)
	add("Delivery", globals.DeliveryURL)
	add("Menu", globals.MenuURL)
	add("Instagram", globals.Instagram)
	add("Facebook", globals.Facebook)
	add("TikTok", globals.TikTok)
	add("LinkedIn", globals.LinkedIn)
	add("Google Maps", globals.GoogleMapsURL)

	return page
}

// NotFound composes the branded not-found payload in the closest
// supported locale.
func (uc *PageUsecase) NotFound(locale string) *dto.NotFoundPage {
	if !i18n.IsSupported(locale) {
		locale = i18n.DefaultLocale
	}
	return &dto.NotFoundPage{
		Locale:   locale,
		Title:    i18n.T(locale, "notFound.title"),
		Message:  i18n.T(locale, "notFound.message"),
		BackHref: i18n.Path(locale, ""),
	}
}
