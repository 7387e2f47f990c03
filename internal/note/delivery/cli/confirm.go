package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"keep-import/internal/note"
)

type confirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewConfirmer returns a Confirmer that prompts on out and reads the
// answer from in. With assumeYes the prompt is skipped.
func NewConfirmer(in io.Reader, out io.Writer, assumeYes bool) note.Confirmer {
	return &confirmer{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

type readResult struct {
	line string
	err  error
}

// Confirm accepts an empty answer, "y" or "yes". Anything else, including
// input closed before an answer, declines.
func (c *confirmer) Confirm(ctx context.Context, noteCount int) (bool, error) {
	if c.assumeYes {
		return true, nil
	}

	fmt.Fprintf(c.out, "\nPress Enter to import %d notes (Y/n): ", noteCount)

	ch := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return false, ctx.Err()
	case res = <-ch:
	}

	if res.err != nil && !errors.Is(res.err, io.EOF) {
		return false, fmt.Errorf("error reading input: %w", res.err)
	}
	if res.err != nil && strings.TrimSpace(res.line) == "" {
		// Closed input is not consent.
		fmt.Fprintln(c.out)
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(res.line))
	return answer == "" || answer == "y" || answer == "yes", nil
}
