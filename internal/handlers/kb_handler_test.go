package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
)

func TestSearchFAQ_Endpoint(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	tests := []struct {
		name     string
		req      FAQSearchRequest
		validate func(t *testing.T, results []knowledge.FAQMatch)
	}{
		{
			name: "category filter",
			req:  FAQSearchRequest{Question: "pricing", Category: "Pricing"},
			validate: func(t *testing.T, results []knowledge.FAQMatch) {
				require.NotEmpty(t, results)
				for _, match := range results {
					assert.Equal(t, "Pricing", match.Category)
				}
			},
		},
		{
			name: "unknown category yields empty list",
			req:  FAQSearchRequest{Question: "pricing", Category: "Nonexistent"},
			validate: func(t *testing.T, results []knowledge.FAQMatch) {
				assert.Empty(t, results)
			},
		},
		{
			name: "no filter searches everything",
			req:  FAQSearchRequest{Question: "free trial"},
			validate: func(t *testing.T, results []knowledge.FAQMatch) {
				require.NotEmpty(t, results)
				assert.Equal(t, "Is there a free trial available?", results[0].Question)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postJSON(t, app, "/search-faq", tt.req)
			require.Equal(t, fiber.StatusOK, status)

			var payload struct {
				Results []knowledge.FAQMatch `json:"results"`
			}
			require.NoError(t, json.Unmarshal(body, &payload))
			tt.validate(t, payload.Results)
		})
	}
}

func TestGetFAQCategories(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	status, body := getJSON(t, app, "/faq-categories")
	require.Equal(t, fiber.StatusOK, status)

	var payload struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, []string{"General", "Services", "Pricing", "Support", "Security"}, payload.Categories)
}

func TestGetFAQByCategory(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	t.Run("known category", func(t *testing.T) {
		status, body := getJSON(t, app, "/faq/pricing")
		require.Equal(t, fiber.StatusOK, status)

		var payload struct {
			Category  string               `json:"category"`
			Questions []knowledge.FAQEntry `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "pricing", payload.Category)
		assert.Len(t, payload.Questions, 4)
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		status, _ := getJSON(t, app, "/faq/Shipping")
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestGetServiceByName(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	t.Run("substring lookup", func(t *testing.T) {
		status, body := getJSON(t, app, "/services/chatbot")
		require.Equal(t, fiber.StatusOK, status)

		var info knowledge.ServiceInfo
		require.NoError(t, json.Unmarshal(body, &info))
		assert.Equal(t, "Customer Engagement", info.Category)
		assert.Equal(t, "AI Chatbots", info.Service.Name)
	})

	t.Run("unknown service is 404", func(t *testing.T) {
		status, _ := getJSON(t, app, "/services/zzz")
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestKnowledgeProjections(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	t.Run("services", func(t *testing.T) {
		status, body := getJSON(t, app, "/services")
		require.Equal(t, fiber.StatusOK, status)

		var payload struct {
			Services []knowledge.ServiceCategory `json:"services"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Len(t, payload.Services, 5)
	})

	t.Run("pricing", func(t *testing.T) {
		status, body := getJSON(t, app, "/pricing")
		require.Equal(t, fiber.StatusOK, status)

		var payload struct {
			Pricing []knowledge.PricingPlan `json:"pricing"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload.Pricing, 3)
		assert.Equal(t, "Starter", payload.Pricing[0].Name)
	})

	t.Run("contact", func(t *testing.T) {
		status, body := getJSON(t, app, "/contact")
		require.Equal(t, fiber.StatusOK, status)

		var payload struct {
			Contact knowledge.ContactInfo `json:"contact"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "hello@readyreserve.ai", payload.Contact.Email)
	})

	t.Run("how it works", func(t *testing.T) {
		status, body := getJSON(t, app, "/how-it-works")
		require.Equal(t, fiber.StatusOK, status)

		var payload struct {
			Steps []knowledge.Step `json:"how_it_works"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Len(t, payload.Steps, 3)
	})
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubProvider{reply: "ok"})

	status, body := getJSON(t, app, "/health")
	require.Equal(t, fiber.StatusOK, status)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "Stub", payload["provider"])
}
