package llm

import (
	"fmt"
	"strings"

	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
)

// DefaultFAQLimit caps how many FAQ matches are appended to the prompt.
const DefaultFAQLimit = 3

// BuildSystemPrompt renders the knowledge base into the system instruction
// for the completion provider. Output is a pure function of its inputs:
// section order is fixed and every collection is iterated in stored order,
// so the same base and matches always produce the same bytes. It is rebuilt
// on every request so knowledge edits take effect without restart.
//
// When matches is non-empty, up to limit Q/A pairs are appended as
// retrieval context (limit <= 0 falls back to DefaultFAQLimit).
func BuildSystemPrompt(kb *knowledge.Base, matches []knowledge.FAQMatch, limit int) string {
	if limit <= 0 {
		limit = DefaultFAQLimit
	}

	var sb strings.Builder

	sb.WriteString("You are a Ready Assistant for ReadyReserve AI, a company that provides AI-driven digital transformation services for medium-sized businesses.\n\n")

	sb.WriteString("COMPANY INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", kb.Company.Name))
	sb.WriteString(fmt.Sprintf("- Tagline: %s\n", kb.Company.Tagline))
	sb.WriteString(fmt.Sprintf("- Description: %s\n", kb.Company.Description))
	sb.WriteString(fmt.Sprintf("- Mission: %s\n", kb.Company.Mission))

	sb.WriteString("\nSERVICE CATEGORIES:\n")
	for _, cat := range kb.Categories {
		sb.WriteString(fmt.Sprintf("\n%s: %s\n", cat.Name, cat.Description))
		for _, svc := range cat.Services {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", svc.Name, svc.Description))
			sb.WriteString(fmt.Sprintf("    Features: %s\n", strings.Join(svc.Features, ", ")))
			sb.WriteString(fmt.Sprintf("    Use Cases: %s\n", strings.Join(svc.UseCases, ", ")))
		}
	}

	sb.WriteString("\nHOW IT WORKS:\n")
	for i, step := range kb.HowItWorks {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, step.Title, step.Description))
	}

	sb.WriteString("\nINTEGRATIONS:\n")
	sb.WriteString(fmt.Sprintf("- AI Platforms: %s\n", strings.Join(kb.Integrations.AIPlatforms, ", ")))
	sb.WriteString(fmt.Sprintf("- Workflow Tools: %s\n", strings.Join(kb.Integrations.WorkflowTools, ", ")))
	sb.WriteString(fmt.Sprintf("- Business Tools: %s\n", strings.Join(kb.Integrations.BusinessTools, ", ")))

	sb.WriteString("\nPRICING PLANS:\n")
	for _, plan := range kb.Pricing {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", plan.Name, plan.Price, plan.Description))
		sb.WriteString(fmt.Sprintf("  Features: %s\n", strings.Join(plan.Features, ", ")))
	}

	sb.WriteString("\nCONTACT INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Email: %s\n", kb.Contact.Email))
	sb.WriteString(fmt.Sprintf("- Phone: %s\n", kb.Contact.Phone))
	sb.WriteString(fmt.Sprintf("- Support: %s\n", kb.Contact.SupportEmail))
	sb.WriteString(fmt.Sprintf("- Sales: %s\n", kb.Contact.SalesEmail))
	sb.WriteString(fmt.Sprintf("- Hours: %s\n", kb.Contact.Hours))

	sb.WriteString("\nSOCIAL MEDIA:\n")
	sb.WriteString(fmt.Sprintf("- Twitter: %s\n", kb.Social.Twitter))
	sb.WriteString(fmt.Sprintf("- LinkedIn: %s\n", kb.Social.LinkedIn))

	sb.WriteString(`
INSTRUCTIONS:
1. Be helpful, friendly, and professional
2. Provide accurate information based on the knowledge above
3. If asked about specific services, provide detailed information including features and use cases
4. If asked about pricing, explain the different plans and their benefits
5. If asked about how it works, explain the 3-step process
6. Always encourage users to book a consultation for personalized solutions
7. If you don't know something specific, offer to connect them with our team
8. Use the FAQ data to provide comprehensive answers to common questions
9. Be conversational but informative
10. Focus on the value and benefits for the user's business

Remember: You are representing ReadyReserve AI and should always maintain a professional, helpful tone while being enthusiastic about how AI can transform their business.`)

	if len(matches) > 0 {
		sb.WriteString("\n\nRELEVANT FAQ INFORMATION:\n")
		for i, match := range matches {
			if i >= limit {
				break
			}
			sb.WriteString(fmt.Sprintf("Q: %s\nA: %s\n\n", match.Question, match.Answer))
		}
	}

	return sb.String()
}
