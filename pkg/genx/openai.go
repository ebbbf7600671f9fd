package genx

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
)

var _ Generator = (*OpenAIGenerator)(nil)

const oaiFinishReasonStop = "stop"

// OpenAIGenerator implements Generator using an OpenAI-compatible chat
// completion API. It is text-only: inline blobs are rejected.
type OpenAIGenerator struct {
	Client *openai.Client

	Model string
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req *Request) (string, error) {
	params, err := g.chatCompletion(req)
	if err != nil {
		return "", err
	}
	return g.complete(ctx, params)
}

func (g *OpenAIGenerator) Invoke(ctx context.Context, req *Request, fn *FuncTool) (*FuncCall, error) {
	params, err := g.chatCompletion(req)
	if err != nil {
		return nil, err
	}
	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        fn.Name,
				Description: param.NewOpt(fn.Description),
				Schema:      fn.Argument,
				Strict:      param.NewOpt(true),
			},
		},
	}
	text, err := g.complete(ctx, params)
	if err != nil {
		return nil, err
	}
	return fn.NewFuncCall(text), nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := g.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("blocked: %s", choice.Message.Refusal)
	}
	if choice.FinishReason != oaiFinishReasonStop {
		return "", fmt.Errorf("unexpected finish reason: %s", choice.FinishReason)
	}
	return choice.Message.Content, nil
}

func (g *OpenAIGenerator) chatCompletion(req *Request) (openai.ChatCompletionNewParams, error) {
	var msgs []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, msg := range req.Messages {
		var text strings.Builder
		for _, p := range msg.Parts {
			switch v := p.(type) {
			case Text:
				text.WriteString(string(v))
			case *Blob:
				return openai.ChatCompletionNewParams{}, fmt.Errorf("inline %s not supported by chat completion backend", v.MIMEType)
			default:
				return openai.ChatCompletionNewParams{}, fmt.Errorf("unexpected part type: %T", p)
			}
		}
		switch msg.Role {
		case RoleModel:
			msgs = append(msgs, openai.AssistantMessage(text.String()))
		default:
			msgs = append(msgs, openai.UserMessage(text.String()))
		}
	}
	if len(msgs) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("no contents")
	}

	params := openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    g.Model,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = param.NewOpt(float64(*req.Temperature))
	}
	return params, nil
}
