package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
)

// KBHandler serves read-only projections of the knowledge base.
type KBHandler struct {
	kb *knowledge.Base
}

func NewKBHandler(kb *knowledge.Base) *KBHandler {
	return &KBHandler{kb: kb}
}

// FAQSearchRequest represents request body for FAQ search
type FAQSearchRequest struct {
	Question string `json:"question" example:"free trial"`
	Category string `json:"category,omitempty" example:"Pricing"`
}

// SearchFAQ godoc
// @Summary Search the FAQ
// @Description Substring search over FAQ questions and answers, optionally restricted to one category
// @Tags FAQ
// @Accept json
// @Produce json
// @Param data body FAQSearchRequest true "Search query"
// @Success 200 {object} map[string][]knowledge.FAQMatch
// @Failure 400 {object} map[string]string
// @Router /search-faq [post]
func (h *KBHandler) SearchFAQ(c *fiber.Ctx) error {
	var req FAQSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	results := h.kb.SearchFAQ(req.Question, req.Category)
	return c.JSON(fiber.Map{
		"results": results,
	})
}

// GetFAQCategories godoc
// @Summary List FAQ categories
// @Tags FAQ
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /faq-categories [get]
func (h *KBHandler) GetFAQCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": h.kb.FAQCategories(),
	})
}

// GetFAQByCategory godoc
// @Summary Get FAQ entries of one category
// @Tags FAQ
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /faq/{category} [get]
func (h *KBHandler) GetFAQByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	entries := h.kb.FAQByCategory(category)
	if entries == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "category not found",
		})
	}

	return c.JSON(fiber.Map{
		"category":  category,
		"questions": entries,
	})
}

// GetServices godoc
// @Summary Get the full service catalog
// @Tags Services
// @Produce json
// @Success 200 {object} map[string][]knowledge.ServiceCategory
// @Router /services [get]
func (h *KBHandler) GetServices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services": h.kb.Categories,
	})
}

// GetServiceByName godoc
// @Summary Get one service by name
// @Description Case-insensitive substring lookup over service names
// @Tags Services
// @Produce json
// @Param name path string true "Service name"
// @Success 200 {object} knowledge.ServiceInfo
// @Failure 404 {object} map[string]string
// @Router /services/{name} [get]
func (h *KBHandler) GetServiceByName(c *fiber.Ctx) error {
	info := h.kb.FindService(c.Params("name"))
	if info == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "service not found",
		})
	}
	return c.JSON(info)
}

// GetPricing godoc
// @Summary Get pricing plans
// @Tags Pricing
// @Produce json
// @Success 200 {object} map[string][]knowledge.PricingPlan
// @Router /pricing [get]
func (h *KBHandler) GetPricing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"pricing": h.kb.Pricing,
	})
}

// GetContact godoc
// @Summary Get contact information
// @Tags Contact
// @Produce json
// @Success 200 {object} map[string]knowledge.ContactInfo
// @Router /contact [get]
func (h *KBHandler) GetContact(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"contact": h.kb.Contact,
	})
}

// GetHowItWorks godoc
// @Summary Get the onboarding process steps
// @Tags HowItWorks
// @Produce json
// @Success 200 {object} map[string][]knowledge.Step
// @Router /how-it-works [get]
func (h *KBHandler) GetHowItWorks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"how_it_works": h.kb.HowItWorks,
	})
}
