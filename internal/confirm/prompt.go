package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt is a terminal Gate. It prints the request and reads one line;
// "y", "yes" or the confirm label (any case) confirm, anything else
// including end of input cancels.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt shares in with the caller so answers are read from the same
// buffered stream as the rest of the session.
func NewPrompt(in *bufio.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

func (p *Prompt) Ask(ctx context.Context, req Request) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if req.Title != "" {
		fmt.Fprintln(p.out, req.Title)
	}
	if req.Message != "" {
		fmt.Fprintln(p.out, req.Message)
	}
	fmt.Fprintf(p.out, "[%s / %s] > ", orDefault(req.ConfirmLabel, "yes"), orDefault(req.CancelLabel, "no"))

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.TrimSpace(line)
	switch {
	case answer == "":
		return false, nil
	case strings.EqualFold(answer, "y"), strings.EqualFold(answer, "yes"):
		return true, nil
	case req.ConfirmLabel != "" && strings.EqualFold(answer, req.ConfirmLabel):
		return true, nil
	}
	return false, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
