package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are the Auto GAAP accounting assistant. You answer questions about
double-entry bookkeeping, GAAP policy, journal entries, financial statements
and the month-end close. Always name the debit and credit side of any entry
you suggest, and keep answers short and practical. The user's current ledger
summary is provided below; ground your answers in it when relevant.
`

// Gemini answers questions through a Gemini chat session, seeded with the
// current ledger summary so answers can reference the user's own figures.
type Gemini struct {
	client  *genai.Client
	context string
	chat    *genai.Chat
}

// NewGemini creates a Gemini-backed responder. ledgerContext should be the
// rendered ledger summary, or empty when no entries exist.
func NewGemini(client *genai.Client, ledgerContext string) *Gemini {
	return &Gemini{client: client, context: ledgerContext}
}

func (g *Gemini) Primers() []string {
	return []string{
		"Hi, I'm the Auto GAAP accounting assistant (Gemini mode). Ask me about ledger entries, GAAP policy, or how to keep the close on track.",
	}
}

// Start creates the chat session. Respond calls it lazily.
func (g *Gemini) Start(ctx context.Context) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemInstruction + "\n" + g.context},
		}},
	}
	chat, err := g.client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	g.chat = chat
	return nil
}

func (g *Gemini) Respond(ctx context.Context, question string) (string, error) {
	if g.chat == nil {
		if err := g.Start(ctx); err != nil {
			return "", err
		}
	}
	resp, err := g.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
