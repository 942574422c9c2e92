package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nhero-website/internal/config"
	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	apperrors "github.com/nhero-website/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.DirectusConfig{
		BaseURL:        server.URL,
		Token:          "test_token",
		RequestTimeout: 5,
	}, zap.NewNop())
	return client, server
}

func TestClient_GetExperiences(t *testing.T) {
	t.Run("published filter and sort applied", func(t *testing.T) {
		var captured *http.Request
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": "1", "status": "published", "sort": 1, "slug": "bar", "title": "Bar", "hero_image": "file-1"},
					{"id": "2", "status": "published", "sort": 2, "slug": "pizzeria", "title": "Pizzeria", "hero_image": map[string]interface{}{"id": "file-2"}},
				},
			})
		})

		experiences, err := client.GetExperiences(context.Background())
		require.NoError(t, err)
		require.Len(t, experiences, 2)

		assert.Equal(t, "/items/experiences", captured.URL.Path)
		assert.Equal(t, "published", captured.URL.Query().Get("filter[status][_eq]"))
		assert.Equal(t, "sort", captured.URL.Query().Get("sort"))
		assert.Equal(t, "Bearer test_token", captured.Header.Get("Authorization"))

		// Both image reference shapes normalized to an id
		assert.Equal(t, "file-1", experiences[0].HeroImage.ID)
		assert.Equal(t, "file-2", experiences[1].HeroImage.ID)
	})

	t.Run("API error surfaces", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"errors":[{"message":"forbidden"}]}`))
		})

		experiences, err := client.GetExperiences(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrCMSError)
		assert.Nil(t, experiences)
	})
}

func TestClient_GetExperienceBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var captured *http.Request
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": "1", "status": "published", "slug": "bar", "title": "Bar"},
				},
			})
		})

		exp, err := client.GetExperienceBySlug(context.Background(), "bar")
		require.NoError(t, err)
		require.NotNil(t, exp)
		assert.Equal(t, "bar", exp.Slug)
		assert.Equal(t, "bar", captured.URL.Query().Get("filter[slug][_eq]"))
		assert.Equal(t, "published", captured.URL.Query().Get("filter[status][_eq]"))
		assert.Equal(t, "1", captured.URL.Query().Get("limit"))
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		})

		exp, err := client.GetExperienceBySlug(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, exp)
	})
}

func TestClient_GetEvents(t *testing.T) {
	t.Run("listing excludes past events", func(t *testing.T) {
		var captured *http.Request
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		})

		_, err := client.GetEvents(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, "true", captured.URL.Query().Get("filter[is_past][_neq]"))
		assert.Equal(t, "-date_event", captured.URL.Query().Get("sort"))
	})

	t.Run("includePast drops the exclusion", func(t *testing.T) {
		var captured *http.Request
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		})

		_, err := client.GetEvents(context.Background(), true)
		require.NoError(t, err)
		assert.Empty(t, captured.URL.Query().Get("filter[is_past][_neq]"))
	})
}

func TestClient_GetMenuItems(t *testing.T) {
	var captured *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": "1", "status": "published", "name": "Margherita", "category": "cat-1", "price": 9.5},
			},
		})
	})

	items, err := client.GetMenuItems(context.Background(), repository.MenuItemFilter{
		CategoryID: "cat-1",
		Search:     "margherita",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, 9.5, *items[0].Price)

	assert.Equal(t, "cat-1", captured.URL.Query().Get("filter[category][_eq]"))
	assert.Equal(t, "margherita", captured.URL.Query().Get("search"))
	assert.Equal(t, "sort,name", captured.URL.Query().Get("sort"))
}

func TestClient_GetGlobals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/globals", r.URL.Path)
		// Singleton read carries no status filter
		assert.Empty(t, r.URL.Query().Get("filter[status][_eq]"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id":    "1",
				"phone": "+39 02 1234567",
				"opening_hours": []map[string]string{
					{"day": "monday", "hours": "12:00 - 23:00"},
				},
			},
		})
	})

	globals, err := client.GetGlobals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+39 02 1234567", globals.Phone)
	require.Len(t, globals.OpeningHours, 1)
	assert.Equal(t, "monday", globals.OpeningHours[0].Day)
}

func TestClient_CreateContactSubmission(t *testing.T) {
	t.Run("writes with status new", func(t *testing.T) {
		var body map[string]interface{}
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/items/contact_submissions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"data":{"id":"s1"}}`))
		})

		err := client.CreateContactSubmission(context.Background(), &domain.ContactSubmission{
			Name:    "Mario Rossi",
			Email:   "mario@example.com",
			Message: "Vorrei prenotare un tavolo",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", body["status"])
		assert.Equal(t, "mario@example.com", body["email"])
	})

	t.Run("CMS rejection surfaces", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := client.CreateContactSubmission(context.Background(), &domain.ContactSubmission{
			Name: "Mario", Email: "m@x.com", Message: "hello hello",
		})
		assert.Error(t, err)
	})
}

func TestClient_CreateBusinessQuoteSubmission(t *testing.T) {
	var body map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/business_quote_submissions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	})

	guests := 40
	err := client.CreateBusinessQuoteSubmission(context.Background(), &domain.BusinessQuoteSubmission{
		Name:         "Mario Rossi",
		Company:      "ACME Srl",
		Email:        "mario@acme.it",
		EventType:    "corporate_dinner",
		GuestsNumber: &guests,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", body["status"])
	assert.Equal(t, "ACME Srl", body["company"])
	assert.Equal(t, float64(40), body["guests_number"])
}
