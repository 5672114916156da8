// Package assist implements the interactive accounting assistant: a REPL
// that answers bookkeeping questions, backed either by the built-in canned
// responder or by a Gemini chat session.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Responder produces an answer to one accounting question.
type Responder interface {
	// Primers returns the opening messages printed before the first prompt.
	Primers() []string
	// Respond answers the question.
	Respond(ctx context.Context, question string) (string, error)
}

// Assistant runs the chat session.
type Assistant struct {
	w         io.Writer
	r         *bufio.Reader
	responder Responder
}

// New creates a new Assistant writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, responder Responder) *Assistant {
	return &Assistant{
		w:         w,
		r:         bufio.NewReader(r),
		responder: responder,
	}
}

const prompt = "gaap> "

// Run starts the interactive REPL session. Any prompts given are answered
// first, before reading from the input. Typing 'bye' (or closing the input)
// ends the session.
func (a *Assistant) Run(ctx context.Context, prompts ...string) error {
	for _, m := range a.responder.Primers() {
		fmt.Fprintln(a.w, m)
	}
	fmt.Fprintln(a.w, "Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.responder.Respond(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
