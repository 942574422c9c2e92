package repository

import (
	"context"

	"github.com/nhero-website/internal/domain"
)

// MenuItemFilter narrows the menu-items listing. Zero values mean
// "no filtering" for that dimension.
type MenuItemFilter struct {
	CategoryID string
	// Search is a free-text filter over name and description.
	Search string
}

// ContentRepository is the read contract against the CMS. Implementations
// return only published records, already sorted; errors are reported
// honestly here and absorbed one layer up.
type ContentRepository interface {
	GetGlobals(ctx context.Context) (*domain.Globals, error)

	GetExperiences(ctx context.Context) ([]domain.Experience, error)
	GetExperienceBySlug(ctx context.Context, slug string) (*domain.Experience, error)

	GetMenuCategories(ctx context.Context, experienceID string) ([]domain.MenuCategory, error)
	GetMenuItems(ctx context.Context, filter MenuItemFilter) ([]domain.MenuItem, error)

	GetEvents(ctx context.Context, includePast bool) ([]domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)

	GetBusinessServices(ctx context.Context) ([]domain.BusinessService, error)

	GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error)

	GetAvvisi(ctx context.Context) ([]domain.Avviso, error)

	GetFAQs(ctx context.Context, category string) ([]domain.FAQ, error)
}
