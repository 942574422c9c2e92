package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nhero-website/internal/config"
	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	apperrors "github.com/nhero-website/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the Directus REST API. It implements both the read
// contract (ContentRepository) and the write contract
// (SubmissionRepository).
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

// NewClient creates a new Directus API client.
func NewClient(cfg *config.DirectusConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		logger:  logger,
	}
}

var (
	_ repository.ContentRepository    = (*Client)(nil)
	_ repository.SubmissionRepository = (*Client)(nil)
)

// listResponse wraps Directus collection reads: {"data": [...]}.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// itemResponse wraps singleton and create reads: {"data": {...}}.
type itemResponse[T any] struct {
	Data T `json:"data"`
}

func publishedQuery() url.Values {
	q := url.Values{}
	q.Set("filter[status][_eq]", domain.StatusPublished)
	return q
}

func (c *Client) getItems(ctx context.Context, collection string, query url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s/items/%s", c.baseURL, collection)
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("collection", collection), zap.Error(err))
		return apperrors.ErrCMSError
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("collection", collection), zap.Error(err))
		return apperrors.ErrCMSError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directus API returned error",
			zap.String("collection", collection),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return apperrors.ErrCMSError
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("collection", collection), zap.Error(err))
		return apperrors.ErrCMSError
	}

	return nil
}

func (c *Client) createItem(ctx context.Context, collection string, payload interface{}) error {
	endpoint := fmt.Sprintf("%s/items/%s", c.baseURL, collection)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("collection", collection), zap.Error(err))
		return apperrors.ErrCMSError
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("collection", collection), zap.Error(err))
		return apperrors.ErrCMSError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directus API rejected write",
			zap.String("collection", collection),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return apperrors.ErrCMSError
	}

	c.logger.Debug("Directus item created", zap.String("collection", collection))
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// GetGlobals reads the site-wide singleton. Not status-filtered by contract.
func (c *Client) GetGlobals(ctx context.Context) (*domain.Globals, error) {
	var resp itemResponse[domain.Globals]
	q := url.Values{}
	q.Set("fields", "*")
	if err := c.getItems(ctx, "globals", q, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetExperiences returns published experiences ordered by sort.
func (c *Client) GetExperiences(ctx context.Context) ([]domain.Experience, error) {
	q := publishedQuery()
	q.Set("sort", "sort")
	q.Set("fields", "*,hero_image.*,gallery.*")

	var resp listResponse[domain.Experience]
	if err := c.getItems(ctx, "experiences", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetExperienceBySlug returns the published experience with the given slug,
// with its published menu categories expanded, or nil when absent.
func (c *Client) GetExperienceBySlug(ctx context.Context, slug string) (*domain.Experience, error) {
	q := publishedQuery()
	q.Set("filter[slug][_eq]", slug)
	q.Set("limit", "1")
	q.Set("fields", "*,hero_image.*,gallery.*,menu_categories.id,menu_categories.name,menu_categories.slug,menu_categories.status,menu_categories.sort")

	var resp listResponse[domain.Experience]
	if err := c.getItems(ctx, "experiences", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// GetMenuCategories returns published categories sorted by sort then name,
// optionally restricted to one experience.
func (c *Client) GetMenuCategories(ctx context.Context, experienceID string) ([]domain.MenuCategory, error) {
	q := publishedQuery()
	q.Set("sort", "sort,name")
	if experienceID != "" {
		q.Set("filter[experience][_eq]", experienceID)
	}

	var resp listResponse[domain.MenuCategory]
	if err := c.getItems(ctx, "menu_categories", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetMenuItems returns published menu items sorted by sort then name.
// The filter narrows by category and by free-text search over
// name and description.
func (c *Client) GetMenuItems(ctx context.Context, filter repository.MenuItemFilter) ([]domain.MenuItem, error) {
	q := publishedQuery()
	q.Set("sort", "sort,name")
	q.Set("fields", "*,image.*")
	if filter.CategoryID != "" {
		q.Set("filter[category][_eq]", filter.CategoryID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var resp listResponse[domain.MenuItem]
	if err := c.getItems(ctx, "menu_items", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetEvents returns published events, newest first. Past events are
// excluded from listings unless includePast is set.
func (c *Client) GetEvents(ctx context.Context, includePast bool) ([]domain.Event, error) {
	q := publishedQuery()
	q.Set("sort", "-date_event")
	q.Set("fields", "*,cover_image.*,gallery.*")
	if !includePast {
		q.Set("filter[is_past][_neq]", "true")
	}

	var resp listResponse[domain.Event]
	if err := c.getItems(ctx, "events", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetEventBySlug returns a published event regardless of past/future.
func (c *Client) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	q := publishedQuery()
	q.Set("filter[slug][_eq]", slug)
	q.Set("limit", "1")
	q.Set("fields", "*,cover_image.*,gallery.*")

	var resp listResponse[domain.Event]
	if err := c.getItems(ctx, "events", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// GetBusinessServices returns published services ordered by sort.
func (c *Client) GetBusinessServices(ctx context.Context) ([]domain.BusinessService, error) {
	q := publishedQuery()
	q.Set("sort", "sort")
	q.Set("fields", "*,image.*")

	var resp listResponse[domain.BusinessService]
	if err := c.getItems(ctx, "business_services", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetPageBySlug returns the published page with the given slug or nil.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	q := publishedQuery()
	q.Set("filter[slug][_eq]", slug)
	q.Set("limit", "1")
	q.Set("fields", "*,hero_image.*")

	var resp listResponse[domain.Page]
	if err := c.getItems(ctx, "pages", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// GetAvvisi returns published announcements ordered by sort.
func (c *Client) GetAvvisi(ctx context.Context) ([]domain.Avviso, error) {
	q := publishedQuery()
	q.Set("sort", "sort")
	q.Set("fields", "*,foto.*")

	var resp listResponse[domain.Avviso]
	if err := c.getItems(ctx, "avvisi", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetFAQs returns published FAQs ordered by sort, optionally by category.
func (c *Client) GetFAQs(ctx context.Context, category string) ([]domain.FAQ, error) {
	q := publishedQuery()
	q.Set("sort", "sort")
	if category != "" {
		q.Set("filter[category][_eq]", category)
	}

	var resp listResponse[domain.FAQ]
	if err := c.getItems(ctx, "faqs", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateContactSubmission writes a contact lead with status "new".
func (c *Client) CreateContactSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	sub.Status = domain.SubmissionStatusNew
	return c.createItem(ctx, "contact_submissions", sub)
}

// CreateBusinessQuoteSubmission writes a quote request with status "new".
func (c *Client) CreateBusinessQuoteSubmission(ctx context.Context, sub *domain.BusinessQuoteSubmission) error {
	sub.Status = domain.SubmissionStatusNew
	return c.createItem(ctx, "business_quote_submissions", sub)
}
