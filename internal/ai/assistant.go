// Package ai wraps the OpenAI chat API behind the writing-assistant
// actions the editor offers: polish, suggest-title, clarify and concise,
// plus topic-based question suggestions.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Assist actions accepted by Improve.
const (
	ActionPolish       = "polish"
	ActionSuggestTitle = "suggest-title"
	ActionClarify      = "clarify"
	ActionConcise      = "concise"
)

type AssistRequest struct {
	Content string `json:"content"`
	Action  string `json:"action"`
	Context string `json:"context"` // "question" or "answer"
}

type AssistResponse struct {
	OriginalContent string   `json:"original_content"`
	ImprovedContent string   `json:"improved_content"`
	Suggestions     []string `json:"suggestions"`
	Reasoning       string   `json:"reasoning"`
}

// chatClient is the slice of the OpenAI client the assistant needs;
// tests substitute a stub.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Assistant struct {
	client chatClient
	model  string
}

func NewAssistant() *Assistant {
	return &Assistant{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  openai.GPT4oMini,
	}
}

// Improve rewrites content according to the requested action and returns
// the improved text with the model's reasoning.
func (a *Assistant) Improve(ctx context.Context, req AssistRequest) (*AssistResponse, error) {
	kind := req.Context
	if kind != "answer" {
		kind = "question"
	}

	var systemPrompt, userPrompt string
	switch req.Action {
	case ActionPolish:
		systemPrompt = fmt.Sprintf("You are a writing assistant that helps improve the quality of %ss on a Q&A platform. Focus on grammar, clarity, tone, and structure while maintaining the original meaning and technical accuracy. Return your response in JSON format.", kind)
		userPrompt = fmt.Sprintf("Please polish and improve this %s:\n\n%s\n\nReturn as JSON: {\"improved_content\": \"improved text\", \"reasoning\": \"explanation of changes\"}", kind, req.Content)
	case ActionSuggestTitle:
		systemPrompt = "You are a title optimization expert for Q&A platforms. Create clear, specific, and searchable titles that accurately reflect the question's content. Return your response in JSON format."
		userPrompt = fmt.Sprintf("Based on this question content, suggest 3 better titles:\n\n%s\n\nMake titles specific, searchable, and clear about what the person is asking. Return as JSON: {\"titles\": [\"title1\", \"title2\", \"title3\"], \"reasoning\": \"explanation\"}", req.Content)
	case ActionClarify:
		systemPrompt = "You are a clarity expert who helps make technical content more understandable. Focus on structure, explanation, and removing ambiguity while keeping technical accuracy. Return your response in JSON format."
		userPrompt = fmt.Sprintf("Please make this %s clearer and easier to understand:\n\n%s\n\nReturn as JSON: {\"improved_content\": \"clearer text\", \"reasoning\": \"explanation of improvements\"}", kind, req.Content)
	case ActionConcise:
		systemPrompt = "You are an editing expert who makes content more concise while preserving all important information and technical details. Return your response in JSON format."
		userPrompt = fmt.Sprintf("Please make this %s more concise and to-the-point:\n\n%s\n\nReturn as JSON: {\"improved_content\": \"concise text\", \"reasoning\": \"explanation of changes\"}", kind, req.Content)
	default:
		return nil, fmt.Errorf("unknown action: %s", req.Action)
	}

	raw, err := a.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("ai assist: %w", err)
	}

	var parsed struct {
		ImprovedContent string   `json:"improved_content"`
		Titles          []string `json:"titles"`
		Reasoning       string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("ai assist: decode response: %w", err)
	}

	resp := &AssistResponse{
		OriginalContent: req.Content,
		ImprovedContent: parsed.ImprovedContent,
		Suggestions:     []string{},
		Reasoning:       parsed.Reasoning,
	}
	if req.Action == ActionSuggestTitle {
		resp.Suggestions = parsed.Titles
		if len(parsed.Titles) > 0 {
			resp.ImprovedContent = parsed.Titles[0]
		}
	}
	if resp.ImprovedContent == "" {
		resp.ImprovedContent = req.Content
	}
	return resp, nil
}

// QuestionSuggestions generates follow-up questions for a topic. Errors
// degrade to an empty list so the editor stays usable.
func (a *Assistant) QuestionSuggestions(ctx context.Context, topic string) ([]string, error) {
	userPrompt := fmt.Sprintf("You are a helpful assistant that generates relevant follow-up questions for Q&A platforms. Generate questions that would be useful for learning and discussion.\n\nGenerate 5 relevant questions about: %s\n\nReturn as JSON with format: {\"questions\": [\"question1\", \"question2\", ...]}", topic)

	raw, err := a.complete(ctx, "", userPrompt)
	if err != nil {
		return []string{}, nil
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}, nil
	}
	if parsed.Questions == nil {
		parsed.Questions = []string{}
	}
	return parsed.Questions, nil
}

func (a *Assistant) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
