package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
	"github.com/readyreserve/chatbot-be/internal/core/llm"
)

// stubProvider returns a canned completion and records the outbound messages.
type stubProvider struct {
	reply    string
	err      error
	received []llm.Message
}

func (p *stubProvider) CompleteChat(_ context.Context, messages []llm.Message) (string, error) {
	p.received = messages
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *stubProvider) GetProviderName() string { return "Stub" }

// fixtureBase is a minimal corpus so retrieval behavior is easy to reason
// about in isolation from the real website data.
func fixtureBase() *knowledge.Base {
	return &knowledge.Base{
		Company: knowledge.CompanyInfo{Name: "ReadyReserve AI"},
		FAQ: []knowledge.FAQCategory{
			{
				Category: "General",
				Entries: []knowledge.FAQEntry{
					{Question: "What is the widget?", Answer: "A widget."},
					{Question: "How do refunds work?", Answer: "Refunds take 5 days."},
					{Question: "Is there a widget trial?", Answer: "Yes, 14 days."},
					{Question: "Widget colors?", Answer: "Blue widget only."},
				},
			},
		},
	}
}

func TestHandleChat_ShapesResponse(t *testing.T) {
	provider := &stubProvider{reply: "Happy to help!"}
	svc := NewChatService(knowledge.Default(), provider)

	resp, err := svc.HandleChat(context.Background(), []ChatMessage{
		{Role: "user", Content: "What is ReadyReserve AI?"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Happy to help!", resp.Content)
	require.NotEmpty(t, resp.FAQMatches)
	assert.Equal(t, "What is ReadyReserve AI?", resp.FAQMatches[0].Question)
	assert.Equal(t, "General", resp.FAQMatches[0].Category)
	assert.Contains(t, resp.Sources, "FAQ: What is ReadyReserve AI?")
	assert.Len(t, resp.Sources, len(resp.FAQMatches))
}

func TestHandleChat_MessageAssembly(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	svc := NewChatService(fixtureBase(), provider)

	history := []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{Role: "user", Content: "refunds"},
	}
	_, err := svc.HandleChat(context.Background(), history)
	require.NoError(t, err)

	require.Len(t, provider.received, len(history)+1)
	assert.Equal(t, llm.RoleSystem, provider.received[0].Role)
	assert.Contains(t, provider.received[0].Content, "ReadyReserve AI")

	// Retrieval context for the active query rides in the system prompt.
	assert.Contains(t, provider.received[0].Content, "Refunds take 5 days.")

	// History is forwarded verbatim, roles and order preserved.
	for i, msg := range history {
		assert.Equal(t, msg.Role, provider.received[i+1].Role)
		assert.Equal(t, msg.Content, provider.received[i+1].Content)
	}
}

// The active query is the last history entry no matter its role. Malformed
// histories ending on an assistant turn therefore still drive retrieval;
// that mirrors the original service and is deliberate.
func TestHandleChat_LastEntryIsQueryRegardlessOfRole(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	svc := NewChatService(fixtureBase(), provider)

	resp, err := svc.HandleChat(context.Background(), []ChatMessage{
		{Role: "user", Content: "something else"},
		{Role: "assistant", Content: "refunds"},
	})
	require.NoError(t, err)
	require.Len(t, resp.FAQMatches, 1)
	assert.Equal(t, "How do refunds work?", resp.FAQMatches[0].Question)
}

func TestHandleChat_EmptyHistoryMatchesEverything(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	svc := NewChatService(fixtureBase(), provider)

	resp, err := svc.HandleChat(context.Background(), []ChatMessage{})
	require.NoError(t, err)

	// An empty history degrades to the match-all query over all 4 fixture
	// entries; the response cap of 3 still applies, in stored order.
	assert.Len(t, resp.FAQMatches, 3)
	assert.Len(t, resp.Sources, 3)
	assert.Equal(t, "What is the widget?", resp.FAQMatches[0].Question)
	require.Len(t, provider.received, 1)
	assert.Equal(t, llm.RoleSystem, provider.received[0].Role)
}

func TestHandleChat_NoMatches(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	svc := NewChatService(fixtureBase(), provider)

	resp, err := svc.HandleChat(context.Background(), []ChatMessage{
		{Role: "user", Content: "xyzzy-quux"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.FAQMatches)
	assert.Empty(t, resp.Sources)
	assert.False(t, strings.Contains(provider.received[0].Content, "RELEVANT FAQ INFORMATION:"))
}

func TestHandleChat_ProviderFailure(t *testing.T) {
	upstream := errors.New("429 quota exceeded")
	provider := &stubProvider{err: upstream}
	svc := NewChatService(fixtureBase(), provider)

	resp, err := svc.HandleChat(context.Background(), []ChatMessage{
		{Role: "user", Content: "refunds"},
	})

	// No partial response: the result is nil and the error is typed.
	assert.Nil(t, resp)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.ErrorIs(t, err, upstream)
	assert.Contains(t, provErr.Error(), "quota exceeded")
}
