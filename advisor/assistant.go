package advisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Chat is a conversation with the model. *genai.Chat implements it.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// maxCalls bounds the function calls answered for a single user message.
const maxCalls = 8

const assistantInstruction = `You are the user's leverage risk assistant.
The user holds investments, real estate and cash, partly financed with policy loans,
stock pledges, a mortgage and personal credit.

Use the "dashboard" tool to learn about the current situation before answering,
and the "stress_test" tool to explore what a market crash or a rate hike would change.
Pledges are monitored with the collateral ratio (value/loan, higher is safer),
the other loans with the loan-to-value ratio (loan/value, lower is safer).

Be precise with the figures, and answer with short markdown.`

// Assistant is an interactive session with the model.
type Assistant struct {
	Model   string
	Library Library
	config  *genai.GenerateContentConfig
	chat    Chat
	w       io.Writer
	r       *bufio.Reader
}

// NewAssistant creates an Assistant reading user messages from r, writing
// answers to w, and offering tools to the model.
func NewAssistant(w io.Writer, r io.Reader, model string, tools []Function) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	return &Assistant{
		Model:   model,
		Library: NewLibrary(tools),
		config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistantInstruction}}},
		},
		w: w,
		r: bufio.NewReader(r),
	}
}

// Start creates the chat session.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.Model, a.config, nil)
	if err != nil {
		return fmt.Errorf("creating chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends parts to the model and answers its function calls until it
// replies with text.
func (a *Assistant) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if a.chat == nil {
		return nil, errors.New("assistant not started")
	}
	for range maxCalls {
		resp, err := a.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, ErrEmptyResponse
		}
		content := resp.Candidates[0].Content

		// Answer all the calls in one go.
		parts = nil
		for _, p := range content.Parts {
			if p.FunctionCall == nil {
				continue
			}
			logrus.WithField("function", p.FunctionCall.Name).Debug("model called a function")
			parts = append(parts, &genai.Part{FunctionResponse: a.Library(ctx, p.FunctionCall)})
		}
		if len(parts) == 0 {
			return content, nil
		}
	}
	return nil, fmt.Errorf("too many function calls, giving up after %d", maxCalls)
}

const prompt = "assist> "

// Run starts the REPL. Prompts are sent first, as if typed by the user. It
// returns on "bye" or at the end of the input.
func (a *Assistant) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to lev assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			input = strings.TrimSpace(line)
			if errors.Is(err, io.EOF) && input == "" {
				return nil // Ctrl+D
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if input == "" {
				continue
			}
		}

		if input == "bye" {
			return nil
		}

		content, err := a.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		for _, p := range content.Parts {
			if p.Text != "" {
				fmt.Fprintln(a.w, p.Text)
			}
		}
	}
}
