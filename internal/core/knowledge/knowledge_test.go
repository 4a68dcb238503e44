package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CorpusShape(t *testing.T) {
	kb := Default()

	assert.Equal(t, "ReadyReserve AI", kb.Company.Name)
	assert.Len(t, kb.Categories, 5)
	assert.Len(t, kb.HowItWorks, 3)
	assert.Len(t, kb.Pricing, 3)
	assert.Len(t, kb.FAQ, 5)

	for _, cat := range kb.Categories {
		assert.NotEmpty(t, cat.Key)
		assert.Len(t, cat.Services, 3, "category %s", cat.Name)
	}
	for _, cat := range kb.FAQ {
		assert.Len(t, cat.Entries, 4, "FAQ category %s", cat.Category)
	}
}

func TestFindService(t *testing.T) {
	kb := Default()

	tests := []struct {
		name         string
		query        string
		wantCategory string
		wantService  string
	}{
		{
			name:         "substring match is case-insensitive",
			query:        "chatbot",
			wantCategory: "Customer Engagement",
			wantService:  "AI Chatbots",
		},
		{
			name:         "exact name",
			query:        "Predictive Forecasting",
			wantCategory: "Data & Insights",
			wantService:  "Predictive Forecasting",
		},
		{
			name:         "first match wins on shared substring",
			query:        "automation",
			wantCategory: "Customer Engagement",
			wantService:  "WhatsApp/SMS Automation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := kb.FindService(tt.query)
			require.NotNil(t, info)
			assert.Equal(t, tt.wantCategory, info.Category)
			assert.Equal(t, tt.wantService, info.Service.Name)
		})
	}
}

func TestFindService_NotFound(t *testing.T) {
	kb := Default()
	assert.Nil(t, kb.FindService("zzz"))
}

func TestFAQCategories(t *testing.T) {
	kb := Default()
	assert.Equal(t,
		[]string{"General", "Services", "Pricing", "Support", "Security"},
		kb.FAQCategories())
}

func TestFAQByCategory(t *testing.T) {
	kb := Default()

	entries := kb.FAQByCategory("pricing")
	require.Len(t, entries, 4)
	assert.Equal(t, "What are your pricing plans?", entries[0].Question)

	assert.Nil(t, kb.FAQByCategory("Nonexistent"))
}
