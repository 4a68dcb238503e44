package services

import (
	"context"
	"fmt"

	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
	"github.com/readyreserve/chatbot-be/internal/core/llm"
)

// ProviderError wraps a failed completion-provider call. The chat pipeline
// either returns a full response or this error, never both.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("chat provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ChatMessage is one turn of the inbound conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ChatResponse is the shaped chat result: the completion text plus the FAQ
// entries (at most three) that were injected as context.
type ChatResponse struct {
	Content    string               `json:"content"`
	Sources    []string             `json:"sources"`
	FAQMatches []knowledge.FAQMatch `json:"faq_matches"`
}

// ChatService runs the chat pipeline: FAQ retrieval, prompt composition and
// the completion call. The knowledge base is shared and read-only; all other
// state is request-scoped.
type ChatService struct {
	kb       *knowledge.Base
	provider llm.Provider
}

func NewChatService(kb *knowledge.Base, provider llm.Provider) *ChatService {
	return &ChatService{
		kb:       kb,
		provider: provider,
	}
}

// HandleChat answers the conversation's active query. The query is the
// content of the last history entry regardless of its role, matching the
// original service contract; an empty history degrades to an empty query,
// which the FAQ search treats as match-all.
func (s *ChatService) HandleChat(ctx context.Context, history []ChatMessage) (*ChatResponse, error) {
	query := ""
	if len(history) > 0 {
		query = history[len(history)-1].Content
	}

	matches := s.kb.SearchFAQ(query, "")
	top := matches
	if len(top) > llm.DefaultFAQLimit {
		top = top[:llm.DefaultFAQLimit]
	}

	systemPrompt := llm.BuildSystemPrompt(s.kb, matches, llm.DefaultFAQLimit)

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	content, err := s.provider.CompleteChat(ctx, messages)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	sources := make([]string, 0, len(top))
	for _, match := range top {
		sources = append(sources, "FAQ: "+match.Question)
	}

	return &ChatResponse{
		Content:    content,
		Sources:    sources,
		FAQMatches: top,
	}, nil
}
