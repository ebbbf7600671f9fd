package genx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/genai"
)

var _ Generator = (*GeminiGenerator)(nil)

// GeminiGenerator implements Generator using the Google Gemini API. Gemini
// accepts inline audio blobs, which makes it usable as a multimodal
// transcription backend as well as a text model.
type GeminiGenerator struct {
	Client *genai.Client

	// Model should not start with "models/".
	Model string
}

func (g *GeminiGenerator) Generate(ctx context.Context, req *Request) (string, error) {
	cfg, contents, err := g.convRequest(req)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, cfg, contents)
}

func (g *GeminiGenerator) Invoke(ctx context.Context, req *Request, fn *FuncTool) (*FuncCall, error) {
	cfg, contents, err := g.convRequest(req)
	if err != nil {
		return nil, err
	}
	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseSchema = geminiConvSchema(fn.Argument)
	text, err := g.generate(ctx, cfg, contents)
	if err != nil {
		return nil, err
	}
	return fn.NewFuncCall(text), nil
}

func (g *GeminiGenerator) generate(ctx context.Context, cfg *genai.GenerateContentConfig, contents []*genai.Content) (string, error) {
	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, contents, cfg)
	if err != nil {
		if e, ok := err.(*apierror.APIError); ok {
			err = e.Unwrap()
		}
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates")
	}
	c := resp.Candidates[0]
	switch c.FinishReason {
	case genai.FinishReasonStop, genai.FinishReasonUnspecified:
	case genai.FinishReasonMaxTokens:
		return "", errors.New("max tokens")
	default:
		return "", fmt.Errorf("unexpected finish reason: %s", c.FinishReason)
	}
	if c.Content == nil {
		return "", fmt.Errorf("no content")
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}

func (g *GeminiGenerator) convRequest(req *Request) (*genai.GenerateContentConfig, []*genai.Content, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.System)},
		}
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		cfg.Temperature = req.Temperature
	}

	var contents []*genai.Content
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == RoleModel {
			role = "model"
		}
		var parts []*genai.Part
		for _, p := range msg.Parts {
			switch v := p.(type) {
			case Text:
				parts = append(parts, genai.NewPartFromText(string(v)))
			case *Blob:
				parts = append(parts, genai.NewPartFromBytes(v.Data, v.MIMEType))
			default:
				return nil, nil, fmt.Errorf("unexpected part type: %T", p)
			}
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	if len(contents) == 0 {
		return nil, nil, fmt.Errorf("no contents")
	}
	return cfg, contents, nil
}

func geminiConvSchema(schema *jsonschema.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	enums := make([]string, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		enums = append(enums, fmt.Sprintf("%v", v))
	}

	gs := genai.Schema{
		Format:      schema.Format,
		Description: schema.Description,
		Enum:        enums,
		Items:       geminiConvSchema(schema.Items),
		Required:    schema.Required,
	}
	if n := len(schema.Properties); n > 0 {
		gs.Properties = make(map[string]*genai.Schema, n)
		for k, prop := range schema.Properties {
			gs.Properties[k] = geminiConvSchema(prop)
		}
	}
	switch schema.Type {
	case "object":
		gs.Type = genai.TypeObject
	case "array":
		gs.Type = genai.TypeArray
	case "string":
		gs.Type = genai.TypeString
	case "number":
		gs.Type = genai.TypeNumber
	case "integer":
		gs.Type = genai.TypeInteger
	case "boolean":
		gs.Type = genai.TypeBoolean
	}
	return &gs
}
