package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	"github.com/nhero-website/internal/pkg/sanitize"
)

// ContentUsecase is the typed read façade over the CMS. It owns two
// policies the rest of the system relies on:
//
//   - fetch failures never escape: collections degrade to empty, detail
//     lookups to nil, with the real cause logged here;
//   - successful reads are served from Redis for the revalidation window
//     before the CMS is queried again.
//
// Rich-text fields are sanitized before anything is cached or returned.
type ContentUsecase struct {
	contentRepo repository.ContentRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewContentUsecase creates a new ContentUsecase. cacheRepo may be nil,
// which disables the revalidation cache (every read hits the CMS).
func NewContentUsecase(
	contentRepo repository.ContentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ContentUsecase {
	return &ContentUsecase{
		contentRepo: contentRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// fetchCached implements the cache-aside revalidation window. ok is false
// only when the underlying fetch failed and nothing usable was cached.
// Cache failures themselves are non-fatal: the fetch proceeds regardless.
func fetchCached[T any](
	ctx context.Context,
	uc *ContentUsecase,
	key string,
	fetch func(context.Context) (T, error),
) (T, bool) {
	var zero T

	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
			var cached T
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true
			}
			uc.logger.Warn("Discarding malformed cache entry", zap.String("key", key))
		}
	}

	val, err := fetch(ctx)
	if err != nil {
		uc.logger.Error("Content fetch failed", zap.String("key", key), zap.Error(err))
		return zero, false
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(val); err == nil {
			_ = uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL)
		}
	}

	return val, true
}

// GetGlobals returns the site singleton or nil on failure.
func (uc *ContentUsecase) GetGlobals(ctx context.Context) *domain.Globals {
	val, ok := fetchCached(ctx, uc, "content:globals", uc.contentRepo.GetGlobals)
	if !ok {
		return nil
	}
	return val
}

// GetExperiences returns published experiences in sort order, empty on
// failure.
func (uc *ContentUsecase) GetExperiences(ctx context.Context) []domain.Experience {
	val, ok := fetchCached(ctx, uc, "content:experiences",
		func(ctx context.Context) ([]domain.Experience, error) {
			items, err := uc.contentRepo.GetExperiences(ctx)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Description = sanitize.HTML(items[i].Description)
			}
			return items, nil
		})
	if !ok {
		return []domain.Experience{}
	}
	return val
}

// GetExperienceBySlug returns a published experience or nil, both on
// genuine absence and on fetch failure. Its expanded menu categories are
// reduced to published ones.
func (uc *ContentUsecase) GetExperienceBySlug(ctx context.Context, slug string) *domain.Experience {
	key := "content:experience:" + slug
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) (*domain.Experience, error) {
			exp, err := uc.contentRepo.GetExperienceBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			if exp == nil {
				return nil, nil
			}
			exp.Description = sanitize.HTML(exp.Description)
			published := exp.MenuCategories[:0]
			for _, cat := range exp.MenuCategories {
				if cat.Status == "" || cat.Status == domain.StatusPublished {
					published = append(published, cat)
				}
			}
			exp.MenuCategories = published
			return exp, nil
		})
	if !ok {
		return nil
	}
	return val
}

// GetMenuCategories returns published categories, empty on failure.
func (uc *ContentUsecase) GetMenuCategories(ctx context.Context, experienceID string) []domain.MenuCategory {
	key := fmt.Sprintf("content:menu_categories:exp=%s", experienceID)
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) ([]domain.MenuCategory, error) {
			return uc.contentRepo.GetMenuCategories(ctx, experienceID)
		})
	if !ok {
		return []domain.MenuCategory{}
	}
	return val
}

// GetMenuItems returns published menu items matching the filter, empty on
// failure.
func (uc *ContentUsecase) GetMenuItems(ctx context.Context, filter repository.MenuItemFilter) []domain.MenuItem {
	key := fmt.Sprintf("content:menu_items:cat=%s:q=%s", filter.CategoryID, filter.Search)
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) ([]domain.MenuItem, error) {
			return uc.contentRepo.GetMenuItems(ctx, filter)
		})
	if !ok {
		return []domain.MenuItem{}
	}
	return val
}

// GetEvents returns published events newest-first, excluding past events
// unless asked otherwise. Empty on failure.
func (uc *ContentUsecase) GetEvents(ctx context.Context, includePast bool) []domain.Event {
	key := fmt.Sprintf("content:events:past=%t", includePast)
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) ([]domain.Event, error) {
			items, err := uc.contentRepo.GetEvents(ctx, includePast)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Description = sanitize.HTML(items[i].Description)
			}
			return items, nil
		})
	if !ok {
		return []domain.Event{}
	}
	return val
}

// GetEventBySlug returns a published event or nil. Past events stay
// reachable by slug.
func (uc *ContentUsecase) GetEventBySlug(ctx context.Context, slug string) *domain.Event {
	key := "content:event:" + slug
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) (*domain.Event, error) {
			ev, err := uc.contentRepo.GetEventBySlug(ctx, slug)
			if err != nil || ev == nil {
				return ev, err
			}
			ev.Description = sanitize.HTML(ev.Description)
			return ev, nil
		})
	if !ok {
		return nil
	}
	return val
}

// GetBusinessServices returns published services, empty on failure.
func (uc *ContentUsecase) GetBusinessServices(ctx context.Context) []domain.BusinessService {
	val, ok := fetchCached(ctx, uc, "content:business_services",
		func(ctx context.Context) ([]domain.BusinessService, error) {
			items, err := uc.contentRepo.GetBusinessServices(ctx)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Description = sanitize.HTML(items[i].Description)
			}
			return items, nil
		})
	if !ok {
		return []domain.BusinessService{}
	}
	return val
}

// GetPageBySlug returns a published static page or nil.
func (uc *ContentUsecase) GetPageBySlug(ctx context.Context, slug string) *domain.Page {
	key := "content:page:" + slug
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) (*domain.Page, error) {
			page, err := uc.contentRepo.GetPageBySlug(ctx, slug)
			if err != nil || page == nil {
				return page, err
			}
			page.Content = sanitize.HTML(page.Content)
			return page, nil
		})
	if !ok {
		return nil
	}
	return val
}

// GetAvvisi returns published announcements in sort order, empty on
// failure.
func (uc *ContentUsecase) GetAvvisi(ctx context.Context) []domain.Avviso {
	val, ok := fetchCached(ctx, uc, "content:avvisi",
		func(ctx context.Context) ([]domain.Avviso, error) {
			items, err := uc.contentRepo.GetAvvisi(ctx)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Descrizione = sanitize.HTML(items[i].Descrizione)
			}
			return items, nil
		})
	if !ok {
		return []domain.Avviso{}
	}
	return val
}

// GetFAQs returns published FAQs, optionally by category, empty on
// failure.
func (uc *ContentUsecase) GetFAQs(ctx context.Context, category string) []domain.FAQ {
	key := fmt.Sprintf("content:faqs:cat=%s", category)
	val, ok := fetchCached(ctx, uc, key,
		func(ctx context.Context) ([]domain.FAQ, error) {
			items, err := uc.contentRepo.GetFAQs(ctx, category)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Answer = sanitize.HTML(items[i].Answer)
			}
			return items, nil
		})
	if !ok {
		return []domain.FAQ{}
	}
	return val
}
