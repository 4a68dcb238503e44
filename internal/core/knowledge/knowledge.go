package knowledge

import "strings"

// CompanyInfo describes the company identity shown to the assistant.
type CompanyInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Founded     string `json:"founded"`
	Mission     string `json:"mission"`
}

// Service is a single offering inside a ServiceCategory.
type Service struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	UseCases    []string `json:"use_cases"`
}

// ServiceCategory groups related services. Key is the stable identifier
// (e.g. "customer_engagement"), Name the display name.
type ServiceCategory struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Services    []Service `json:"services"`
}

// Step is one step of the onboarding process.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// Integrations lists supported third-party platforms.
type Integrations struct {
	AIPlatforms   []string `json:"ai_platforms"`
	WorkflowTools []string `json:"workflow_tools"`
	BusinessTools []string `json:"business_tools"`
}

// PricingPlan describes one subscription tier. Price is a display string
// ("$99/month", "Custom"), not an amount.
type PricingPlan struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// FAQEntry is a single question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCategory groups FAQ entries under a category name. Category names are
// unique case-insensitively; entries keep their stored order.
type FAQCategory struct {
	Category string     `json:"category"`
	Entries  []FAQEntry `json:"questions"`
}

// ContactInfo holds the public contact channels.
type ContactInfo struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Hours        string `json:"hours"`
	SupportEmail string `json:"support_email"`
	SalesEmail   string `json:"sales_email"`
}

// SocialMedia holds the social handles.
type SocialMedia struct {
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// Base is the full website knowledge corpus. It is built once at startup
// and read-only afterwards; nothing in this package mutates it. Categories,
// plans and FAQ keep their declaration order, which is the order every
// consumer (search, prompt, projections) iterates in.
type Base struct {
	Company      CompanyInfo       `json:"website_info"`
	Categories   []ServiceCategory `json:"service_categories"`
	HowItWorks   []Step            `json:"how_it_works"`
	Integrations Integrations      `json:"integrations"`
	Pricing      []PricingPlan     `json:"pricing"`
	FAQ          []FAQCategory     `json:"faq"`
	Contact      ContactInfo       `json:"contact_info"`
	Social       SocialMedia       `json:"social_media"`
}

// ServiceInfo pairs a service with the display name of its owning category.
type ServiceInfo struct {
	Category string  `json:"category"`
	Service  Service `json:"service"`
}

// FindService returns the first service whose name contains name as a
// case-insensitive substring, together with its category. Returns nil when
// nothing matches; an unknown service is not an error.
func (b *Base) FindService(name string) *ServiceInfo {
	needle := strings.ToLower(name)
	for _, cat := range b.Categories {
		for _, svc := range cat.Services {
			if strings.Contains(strings.ToLower(svc.Name), needle) {
				return &ServiceInfo{Category: cat.Name, Service: svc}
			}
		}
	}
	return nil
}

// FAQCategories returns the distinct FAQ category names in stored order.
func (b *Base) FAQCategories() []string {
	seen := make(map[string]bool, len(b.FAQ))
	names := make([]string, 0, len(b.FAQ))
	for _, cat := range b.FAQ {
		key := strings.ToLower(cat.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, cat.Category)
	}
	return names
}

// FAQByCategory returns all entries of the named category
// (case-insensitive). Returns nil when the category does not exist.
func (b *Base) FAQByCategory(category string) []FAQEntry {
	var entries []FAQEntry
	for _, cat := range b.FAQ {
		if strings.EqualFold(cat.Category, category) {
			entries = append(entries, cat.Entries...)
		}
	}
	return entries
}
