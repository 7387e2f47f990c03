package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"keep-import/internal/note"
	"keep-import/internal/note/delivery/cli"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	output note.ImportOutput
	err    error
	input  note.ImportInput
}

func (m *mockUseCase) Import(ctx context.Context, input note.ImportInput) (note.ImportOutput, error) {
	m.input = input
	return m.output, m.err
}

func TestHandlerRun(t *testing.T) {
	tests := []struct {
		name       string
		output     note.ImportOutput
		err        error
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "Summary",
			output:     note.ImportOutput{Total: 5, Succeeded: 3, Failed: 1, Skipped: 1},
			wantOutput: "Done: 3 imported, 1 failed, 1 skipped (empty)",
		},
		{
			name:       "Dry run summary",
			output:     note.ImportOutput{Total: 2, Succeeded: 1, Skipped: 1, DryRun: true},
			wantOutput: "Dry run: 1 would be imported, 1 skipped (empty)",
		},
		{
			name:       "Declined",
			err:        note.ErrImportCanceled,
			wantOutput: "Import canceled.",
		},
		{
			name:    "Probe failure prints no summary",
			err:     fmt.Errorf("%w: memos API list error 401", note.ErrProbeFailed),
			wantErr: true,
		},
		{
			name:       "Interrupted mid-run",
			output:     note.ImportOutput{Total: 4, Succeeded: 2},
			err:        context.Canceled,
			wantErr:    true,
			wantOutput: "Done: 2 imported, 0 failed, 0 skipped (empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			uc := &mockUseCase{output: tt.output, err: tt.err}
			h := cli.New(&mockLogger{}, uc, &out)

			err := h.Run(context.Background(), note.ImportInput{Folder: "/keep"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("expected %v to be returned, got %v", tt.err, err)
			}
			if tt.wantOutput == "" {
				if out.Len() != 0 {
					t.Errorf("expected no operator output, got %q", out.String())
				}
				return
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("expected %q in output, got %q", tt.wantOutput, out.String())
			}
			if uc.input.Folder != "/keep" {
				t.Errorf("input not forwarded: %+v", uc.input)
			}
		})
	}
}
