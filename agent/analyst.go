// Package agent implements the Gemini-backed research assistant. It opens a
// chat seeded with the analysis reports so the model answers questions about
// the actual numbers on screen instead of hallucinating them.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a research assistant for Brazilian retail
stock investors. You answer questions about B3-listed companies using the
analysis reports provided in the conversation: fundamentals, performance
statistics, fair-price estimates (Graham, Bazin, Gordon) and macro indicators.
Stick to the figures in the reports, say so when a figure is missing, and
always remind the user that this is study material, not an investment
recommendation. Answer in the language of the question.`

// Analyst is a chat session with the research assistant.
type Analyst struct {
	ModelName string
	chat      *genai.Chat
}

// NewAnalyst returns an analyst on the given model ("" picks the default).
func NewAnalyst(model string) *Analyst {
	if model == "" {
		model = DefaultModel
	}
	return &Analyst{ModelName: model}
}

// Start opens the chat session and feeds the context reports to it.
func (a *Analyst) Start(ctx context.Context, client *genai.Client, reports ...string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return fmt.Errorf("starting analyst chat: %w", err)
	}
	a.chat = chat

	if len(reports) > 0 {
		parts := make([]*genai.Part, 0, len(reports)+1)
		parts = append(parts, &genai.Part{Text: "Here are the analysis reports to ground your answers on:"})
		for _, r := range reports {
			parts = append(parts, &genai.Part{Text: r})
		}
		if _, err := a.chat.Send(ctx, parts...); err != nil {
			return fmt.Errorf("seeding analyst context: %w", err)
		}
	}
	return nil
}

// Ask sends a question and returns the text of the answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("analyst chat not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
