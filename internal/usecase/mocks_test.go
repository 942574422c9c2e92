package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
)

// mockContentRepo serves canned data or a fixed error, counting calls so
// tests can observe the revalidation cache.
type mockContentRepo struct {
	err error

	globals     *domain.Globals
	experiences []domain.Experience
	categories  []domain.MenuCategory
	items       []domain.MenuItem
	events      []domain.Event
	services    []domain.BusinessService
	pages       map[string]*domain.Page
	avvisi      []domain.Avviso
	faqs        []domain.FAQ

	mu    sync.Mutex
	calls int
}

func (m *mockContentRepo) count() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *mockContentRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockContentRepo) GetGlobals(ctx context.Context) (*domain.Globals, error) {
	m.count()
	return m.globals, m.err
}

func (m *mockContentRepo) GetExperiences(ctx context.Context) ([]domain.Experience, error) {
	m.count()
	return m.experiences, m.err
}

func (m *mockContentRepo) GetExperienceBySlug(ctx context.Context, slug string) (*domain.Experience, error) {
	m.count()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.experiences {
		if m.experiences[i].Slug == slug {
			exp := m.experiences[i]
			return &exp, nil
		}
	}
	return nil, nil
}

func (m *mockContentRepo) GetMenuCategories(ctx context.Context, experienceID string) ([]domain.MenuCategory, error) {
	m.count()
	return m.categories, m.err
}

func (m *mockContentRepo) GetMenuItems(ctx context.Context, filter repository.MenuItemFilter) ([]domain.MenuItem, error) {
	m.count()
	return m.items, m.err
}

func (m *mockContentRepo) GetEvents(ctx context.Context, includePast bool) ([]domain.Event, error) {
	m.count()
	if m.err != nil {
		return nil, m.err
	}
	if includePast {
		return m.events, nil
	}
	upcoming := make([]domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		if !ev.IsPast {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming, nil
}

func (m *mockContentRepo) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	m.count()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.events {
		if m.events[i].Slug == slug {
			ev := m.events[i]
			return &ev, nil
		}
	}
	return nil, nil
}

func (m *mockContentRepo) GetBusinessServices(ctx context.Context) ([]domain.BusinessService, error) {
	m.count()
	return m.services, m.err
}

func (m *mockContentRepo) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	m.count()
	if m.err != nil {
		return nil, m.err
	}
	return m.pages[slug], nil
}

func (m *mockContentRepo) GetAvvisi(ctx context.Context) ([]domain.Avviso, error) {
	m.count()
	return m.avvisi, m.err
}

func (m *mockContentRepo) GetFAQs(ctx context.Context, category string) ([]domain.FAQ, error) {
	m.count()
	return m.faqs, m.err
}

// memCache is an in-memory CacheRepository. TTLs are recorded, not
// enforced; eviction is exercised through Delete.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.ttls, key)
	return nil
}

// GetChallenge peeks at a stored challenge without consuming it. Not
// part of the repository contract; tests use it to answer their own
// captchas.
func (c *memCache) GetChallenge(ctx context.Context, id string) (*domain.CaptchaChallenge, error) {
	data, _ := c.Get(ctx, "captcha:"+id)
	if data == nil {
		return nil, nil
	}
	var ch domain.CaptchaChallenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *memCache) SetChallenge(ctx context.Context, challenge *domain.CaptchaChallenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return c.Set(ctx, "captcha:"+challenge.ID, data, ttl)
}

func (c *memCache) ConsumeChallenge(ctx context.Context, id string) (*domain.CaptchaChallenge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := "captcha:" + id
	data := c.data[key]
	if data == nil {
		return nil, nil
	}
	delete(c.data, key)
	delete(c.ttls, key)
	var ch domain.CaptchaChallenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// mockSubmissionRepo records writes and optionally fails them.
type mockSubmissionRepo struct {
	err error

	mu       sync.Mutex
	contacts []domain.ContactSubmission
	quotes   []domain.BusinessQuoteSubmission
}

func (m *mockSubmissionRepo) CreateContactSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, *sub)
	return nil
}

func (m *mockSubmissionRepo) CreateBusinessQuoteSubmission(ctx context.Context, sub *domain.BusinessQuoteSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = append(m.quotes, *sub)
	return nil
}
