package openai

import (
	"context"
	"strings"
	"time"

	"mia-backend/internal/ports/completion"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// Respuestas cortas (2-3 oraciones según el system prompt).
const maxOutputTokens = 150

// Client implementa completion.Completer contra la Responses API de OpenAI.
type Client struct {
	client oai.Client
	model  string
}

// New crea el cliente. El timeout lo pone el caller; el turno de chat
// nunca se aborta por una falla acá (el orquestador tiene fallback).
func New(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		client: oai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(timeout),
		),
		model: model,
	}
}

func (c *Client) Complete(ctx context.Context, msgs []completion.Message) (string, error) {
	// El system prompt viaja como Instructions; el resto como input items
	// user/assistant en orden.
	var instructions string
	items := make([]responses.ResponseInputItemUnionParam, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case completion.RoleSystem:
			instructions = m.Content
		case completion.RoleAssistant:
			items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, responses.EasyInputMessageRoleAssistant))
		default:
			items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, responses.EasyInputMessageRoleUser))
		}
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: oai.Int(maxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: items,
		},
	}
	if instructions != "" {
		params.Instructions = oai.String(instructions)
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.OutputText()), nil
}
