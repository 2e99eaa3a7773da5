package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const prompt = "ert> "

// Session is the interactive REPL around an Analyst.
type Session struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// NewSession wires an analyst to a terminal-ish reader and writer.
func NewSession(w io.Writer, r io.Reader, analyst *Analyst) *Session {
	return &Session{w: w, r: bufio.NewReader(r), Analyst: analyst}
}

// Run starts the REPL. Initial prompts are consumed before reading from the
// user; 'bye' or EOF ends the session.
func (s *Session) Run(ctx context.Context, client *genai.Client, reports []string, prompts ...string) error {
	if err := s.Analyst.Start(ctx, client, reports...); err != nil {
		return err
	}

	fmt.Fprintln(s.w, "Research assistant ready. Type 'bye' to exit.")

	for {
		fmt.Fprint(s.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(s.w, input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := s.Analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.w, answer)
	}
}
