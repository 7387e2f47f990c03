package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"keep-import/internal/note"
	pkgLog "keep-import/pkg/log"
)

// Handler runs an import on behalf of the command line and reports the
// outcome to the operator.
type Handler interface {
	Run(ctx context.Context, input note.ImportInput) error
}

type handler struct {
	l   pkgLog.Logger
	uc  note.UseCase
	out io.Writer
}

// New creates a new CLI delivery handler writing operator output to out.
func New(l pkgLog.Logger, uc note.UseCase, out io.Writer) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		out: out,
	}
}

// Run executes the import. A declined confirmation is not an error.
// Fatal errors are returned without printing a summary.
func (h *handler) Run(ctx context.Context, input note.ImportInput) error {
	output, err := h.uc.Import(ctx, input)
	switch {
	case errors.Is(err, note.ErrImportCanceled):
		fmt.Fprintln(h.out, "Import canceled.")
		return nil
	case errors.Is(err, context.Canceled):
		h.l.Warn(ctx, "Import interrupted")
		if output.Succeeded+output.Failed+output.Skipped > 0 {
			printSummary(h.out, output)
		}
		return err
	case err != nil:
		return err
	}

	printSummary(h.out, output)
	return nil
}

func printSummary(w io.Writer, output note.ImportOutput) {
	if output.DryRun {
		fmt.Fprintf(w, "\nDry run: %d would be imported, %d skipped (empty)\n", output.Succeeded, output.Skipped)
		return
	}
	fmt.Fprintf(w, "\nDone: %d imported, %d failed, %d skipped (empty)\n", output.Succeeded, output.Failed, output.Skipped)
}
