// Package genx abstracts the text-generation backends the pipeline leans on
// for transcription, intent labeling and transaction extraction. A Generator
// turns a prompt (text, optionally with inline audio) into free text, or —
// via Invoke — into arguments for a function tool validated against a JSON
// schema.
package genx

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Role identifies the author of a message.
type Role string

// Part is one piece of message content: Text or a Blob.
type Part interface{ isPart() }

// Text is plain text content.
type Text string

func (Text) isPart() {}

// Blob is inline binary content, e.g. audio/wav for multimodal transcription.
type Blob struct {
	MIMEType string
	Data     []byte
}

func (*Blob) isPart() {}

// Message is a single conversation turn.
type Message struct {
	Role  Role
	Parts []Part
}

// UserText builds a single-part user message.
func UserText(text string) *Message {
	return &Message{Role: RoleUser, Parts: []Part{Text(text)}}
}

// UserParts builds a user message from arbitrary parts.
func UserParts(parts ...Part) *Message {
	return &Message{Role: RoleUser, Parts: parts}
}

// Request is the model context for one generation call.
type Request struct {
	// System is the system instruction, empty for none.
	System string

	// Messages is the conversation, oldest first. Must not be empty.
	Messages []*Message

	// MaxTokens caps the generated output. 0 means backend default.
	MaxTokens int

	// Temperature overrides the backend default when non-nil.
	Temperature *float32
}

// FuncTool describes a function whose arguments a model is asked to produce
// as structured JSON.
type FuncTool struct {
	Name        string
	Description string
	Argument    *jsonschema.Schema
}

// NewFuncCall wraps raw argument JSON produced for this tool.
func (t *FuncTool) NewFuncCall(arguments string) *FuncCall {
	return &FuncCall{Name: t.Name, Arguments: arguments}
}

// FuncCall is a model-produced invocation of a FuncTool.
type FuncCall struct {
	Name      string
	Arguments string
}

// Decode unmarshals the call arguments into v, repairing malformed JSON
// when necessary.
func (c *FuncCall) Decode(v any) error {
	return unmarshalJSON([]byte(c.Arguments), v)
}

// Generator is a text-generation backend.
type Generator interface {
	// Generate returns the model's text response.
	Generate(ctx context.Context, req *Request) (string, error)

	// Invoke makes the model produce arguments for fn as structured JSON.
	Invoke(ctx context.Context, req *Request, fn *FuncTool) (*FuncCall, error)
}
