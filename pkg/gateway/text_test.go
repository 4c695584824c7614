package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/fitflow/ai-gateway/pkg/render"
)

func TestTextGateway_MissingPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   "} {
		llm := &mockChatCompleter{}
		gw := NewTextGateway(llm, nil)

		_, err := gw.Generate(context.Background(), domain.GenerationRequest{Prompt: prompt})
		if !domain.IsInvalidRequest(err) {
			t.Errorf("prompt %q: got %v, want InvalidRequestError", prompt, err)
		}
		if llm.calls != 0 {
			t.Errorf("prompt %q: provider called %d times, want 0", prompt, llm.calls)
		}
	}
}

func TestTextGateway_NutritionScenario(t *testing.T) {
	llm := &mockChatCompleter{
		CreateChatCompletionFunc: func(ctx context.Context, params domain.ChatParams) (string, error) {
			return "Coma mais vegetais.", nil
		},
	}
	gw := NewTextGateway(llm, nil)

	resp, err := gw.Generate(context.Background(), domain.GenerationRequest{
		Prompt: "Uma salada colorida",
		Type:   domain.TaskNutrition,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if llm.calls != 1 {
		t.Errorf("provider called %d times, want exactly 1", llm.calls)
	}
	if llm.lastParams.System != domain.PersonaFor(domain.TaskNutrition) {
		t.Errorf("system instruction is not the nutrition persona: %q", llm.lastParams.System)
	}
	if llm.lastParams.User != "Uma salada colorida" {
		t.Errorf("user content = %q", llm.lastParams.User)
	}
	if resp.Text == "" {
		t.Error("response text is empty")
	}
	if resp.Type != domain.TaskNutrition {
		t.Errorf("response type = %q, want nutrition", resp.Type)
	}
}

func TestTextGateway_ContextIsLabeled(t *testing.T) {
	llm := &mockChatCompleter{}
	gw := NewTextGateway(llm, nil)

	_, err := gw.Generate(context.Background(), domain.GenerationRequest{
		Prompt:  "monte meu treino",
		Context: "iniciante, 3x por semana",
		Type:    domain.TaskWorkout,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Contexto: iniciante, 3x por semana\n\nmonte meu treino"
	if llm.lastParams.User != want {
		t.Errorf("user content = %q, want %q", llm.lastParams.User, want)
	}
}

func TestTextGateway_TypeDefaultsToGeneral(t *testing.T) {
	llm := &mockChatCompleter{}
	gw := NewTextGateway(llm, nil)

	resp, err := gw.Generate(context.Background(), domain.GenerationRequest{Prompt: "oi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != domain.TaskGeneral {
		t.Errorf("response type = %q, want general", resp.Type)
	}
}

func TestTextGateway_ProviderErrorPassesThrough(t *testing.T) {
	llm := &mockChatCompleter{
		CreateChatCompletionFunc: func(ctx context.Context, params domain.ChatParams) (string, error) {
			return "", &domain.ProviderError{Provider: "groq", Status: 503, Message: "overloaded"}
		},
	}
	gw := NewTextGateway(llm, nil)

	_, err := gw.Generate(context.Background(), domain.GenerationRequest{Prompt: "oi"})
	if !domain.IsProviderError(err) {
		t.Errorf("got %v, want ProviderError", err)
	}
}

func TestTextGateway_RenderHTML(t *testing.T) {
	llm := &mockChatCompleter{
		CreateChatCompletionFunc: func(ctx context.Context, params domain.ChatParams) (string, error) {
			return "**importante**: beba água", nil
		},
	}
	gw := NewTextGateway(llm, render.Markdown{})

	resp, err := gw.Generate(context.Background(), domain.GenerationRequest{Prompt: "dica", RenderHTML: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.HTML, "<strong>") {
		t.Errorf("HTML = %q, want rendered markdown", resp.HTML)
	}
}
