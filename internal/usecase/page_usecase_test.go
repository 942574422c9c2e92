package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/infrastructure/directus"
)

func newPageFixture(repo *mockContentRepo) *PageUsecase {
	content := NewContentUsecase(repo, newMemCache(), zap.NewNop(), time.Minute)
	assets := directus.NewAssetResolver("https://cms.example.com")
	return NewPageUsecase(content, assets, zap.NewNop())
}

func testGlobals() *domain.Globals {
	return &domain.Globals{
		SiteName:       "Nhero Milano",
		Tagline:        "Food & Mood",
		Address:        "Via Example 1, Milano",
		Phone:          "+39 02 1234567",
		Email:          "info@nheromilano.it",
		Instagram:      "https://instagram.com/nheromilano",
		ReservationURL: "https://booking.example.com/nhero",
		OpeningHours: []domain.OpeningHour{
			{Day: "Lun-Ven", Hours: "12:00-23:00"},
		},
	}
}

func TestPageUsecase_Home(t *testing.T) {
	repo := &mockContentRepo{
		globals: testGlobals(),
		experiences: []domain.Experience{
			{Slug: "ristorante", Title: "Ristorante", HeroImage: domain.ImageRef{ID: "img-1"}},
			{Slug: "cocktail-bar", Title: "Cocktail Bar"},
		},
		avvisi: []domain.Avviso{
			{Titolo: "Chiusura estiva", Descrizione: "<p>Dal 10 al 20 agosto</p>"},
		},
		pages: map[string]*domain.Page{
			"home": {Slug: "home", HeroTitle: "Benvenuti", HeroImage: domain.ImageRef{ID: "hero-1"}},
		},
	}
	uc := newPageFixture(repo)

	page := uc.Home(context.Background(), "it")
	require.NotNil(t, page)

	assert.Equal(t, "it", page.Chrome.Locale)
	require.NotNil(t, page.Chrome.Globals)
	assert.Equal(t, "Nhero Milano", page.Chrome.Globals.SiteName)
	assert.Len(t, page.Chrome.Nav, 6)
	assert.Equal(t, "/it/esperienze", page.Chrome.Nav[1].Href)

	assert.Equal(t, "Benvenuti", page.Hero.Title)
	assert.Contains(t, page.Hero.ImageURL, "/assets/hero-1?")
	assert.Contains(t, page.Hero.ImageURL, "width=1920")

	require.Len(t, page.Experiences, 2)
	assert.Equal(t, "/it/esperienze/ristorante", page.Experiences[0].Href)
	assert.Contains(t, page.Experiences[0].ImageURL, "width=600")
	assert.Empty(t, page.Experiences[1].ImageURL)

	require.Len(t, page.Avvisi, 1)
	assert.Equal(t, "Chiusura estiva", page.Avvisi[0].Titolo)
}

func TestPageUsecase_Home_DegradedContent(t *testing.T) {
	// Every upstream read fails; the page still composes with fallbacks.
	repo := &mockContentRepo{err: assert.AnError}
	uc := newPageFixture(repo)

	page := uc.Home(context.Background(), "en")
	require.NotNil(t, page)
	assert.Nil(t, page.Chrome.Globals)
	assert.Empty(t, page.Experiences)
	assert.Equal(t, "Nhero Milano", page.Hero.Title)
}

func TestPageUsecase_Events_EmptyState(t *testing.T) {
	repo := &mockContentRepo{globals: testGlobals()}
	uc := newPageFixture(repo)

	page := uc.Events(context.Background(), "it", false)
	require.NotNil(t, page)
	assert.Empty(t, page.Events)
	assert.Equal(t, "Nessun evento in programma", page.EmptyMessage)

	page = uc.Events(context.Background(), "en", false)
	assert.Equal(t, "No events scheduled", page.EmptyMessage)
}

func TestPageUsecase_Events_PastFilter(t *testing.T) {
	repo := &mockContentRepo{
		globals: testGlobals(),
		events: []domain.Event{
			{Slug: "dj-set", Title: "DJ Set", IsPast: false},
			{Slug: "capodanno", Title: "Capodanno", IsPast: true},
		},
	}
	uc := newPageFixture(repo)

	upcoming := uc.Events(context.Background(), "it", false)
	require.Len(t, upcoming.Events, 1)
	assert.Equal(t, "dj-set", upcoming.Events[0].Slug)
	assert.Empty(t, upcoming.EmptyMessage)

	all := uc.Events(context.Background(), "it", true)
	assert.Len(t, all.Events, 2)
	assert.Equal(t, "/it/eventi/capodanno", all.Events[1].Href)
}

func TestPageUsecase_EventBySlug(t *testing.T) {
	repo := &mockContentRepo{
		globals: testGlobals(),
		events: []domain.Event{
			{Slug: "dj-set", Title: "DJ Set", Gallery: []domain.ImageRef{{ID: "g-1"}}},
		},
	}
	uc := newPageFixture(repo)

	page := uc.EventBySlug(context.Background(), "it", "dj-set")
	require.NotNil(t, page)
	assert.Equal(t, "DJ Set", page.Event.Title)
	require.Len(t, page.Event.GalleryURLs, 1)
	assert.Contains(t, page.Event.GalleryURLs[0], "width=1200")

	assert.Nil(t, uc.EventBySlug(context.Background(), "it", "no-such-event"))
}

func TestPageUsecase_Menu(t *testing.T) {
	price := 14.5
	repo := &mockContentRepo{
		globals: testGlobals(),
		categories: []domain.MenuCategory{
			{ID: "cat-1", Name: "Antipasti", Slug: "antipasti"},
		},
		items: []domain.MenuItem{
			{ID: "item-1", Name: "Tartare", Price: &price, Category: "cat-1", IsGlutenFree: true},
		},
	}
	uc := newPageFixture(repo)

	page := uc.Menu(context.Background(), "it", "cat-1", "")
	require.NotNil(t, page)
	require.Len(t, page.Categories, 1)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Tartare", page.Items[0].Name)
	require.NotNil(t, page.Items[0].Price)
	assert.Equal(t, 14.5, *page.Items[0].Price)
	assert.True(t, page.Items[0].IsGlutenFree)
	assert.Empty(t, page.EmptyMessage)
}

func TestPageUsecase_Menu_NoMatches(t *testing.T) {
	repo := &mockContentRepo{globals: testGlobals()}
	uc := newPageFixture(repo)

	page := uc.Menu(context.Background(), "it", "", "introvabile")
	assert.Empty(t, page.Items)
	assert.NotEmpty(t, page.EmptyMessage)
}

func TestPageUsecase_ExperienceBySlug(t *testing.T) {
	repo := &mockContentRepo{
		globals: testGlobals(),
		experiences: []domain.Experience{
			{
				Slug:        "ristorante",
				Title:       "Ristorante",
				Description: "<p>Cucina mediterranea</p>",
				HeroImage:   domain.ImageRef{ID: "hero-2"},
				MenuCategories: []domain.MenuCategory{
					{ID: "cat-1", Name: "Antipasti"},
				},
			},
		},
	}
	uc := newPageFixture(repo)

	page := uc.ExperienceBySlug(context.Background(), "it", "ristorante")
	require.NotNil(t, page)
	assert.Equal(t, "Ristorante", page.Experience.Title)
	assert.Contains(t, page.Experience.HeroImageURL, "width=1920")
	require.Len(t, page.Experience.MenuCategories, 1)

	assert.Nil(t, uc.ExperienceBySlug(context.Background(), "it", "spa"))
}

func TestPageUsecase_Static(t *testing.T) {
	repo := &mockContentRepo{
		globals: testGlobals(),
		pages: map[string]*domain.Page{
			"privacy": {Slug: "privacy", Title: "Privacy Policy", Content: "<p>GDPR</p>"},
		},
	}
	uc := newPageFixture(repo)

	page := uc.Static(context.Background(), "it", "privacy")
	require.NotNil(t, page)
	assert.Equal(t, "Privacy Policy", page.Title)

	assert.Nil(t, uc.Static(context.Background(), "it", "termini"))
}

func TestPageUsecase_Links(t *testing.T) {
	repo := &mockContentRepo{globals: testGlobals()}
	uc := newPageFixture(repo)

	page := uc.Links(context.Background())
	require.NotNil(t, page)
	assert.Equal(t, "Nhero Milano", page.SiteName)

	// Only populated URLs become links, in a fixed order.
	require.Len(t, page.Links, 2)
	assert.Equal(t, "Prenota", page.Links[0].Label)
	assert.Equal(t, "Instagram", page.Links[1].Label)
}

func TestPageUsecase_Links_NoGlobals(t *testing.T) {
	repo := &mockContentRepo{err: assert.AnError}
	uc := newPageFixture(repo)

	page := uc.Links(context.Background())
	require.NotNil(t, page)
	assert.Empty(t, page.Links)
}

func TestPageUsecase_NotFound(t *testing.T) {
	page := (&PageUsecase{}).NotFound("en")
	assert.Equal(t, "en", page.Locale)
	assert.Equal(t, "/en", page.BackHref)
	assert.NotEmpty(t, page.Title)

	// Unsupported locales fall back to the default.
	page = (&PageUsecase{}).NotFound("de")
	assert.Equal(t, "it", page.Locale)
	assert.Equal(t, "/it", page.BackHref)
}
