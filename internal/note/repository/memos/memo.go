package memos

import (
	"context"
	"fmt"

	"keep-import/internal/model"
	"keep-import/internal/note/repository"
	pkgLog "keep-import/pkg/log"
)

const probePageSize = 1

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new Memos repository.
func New(client *Client, l pkgLog.Logger) repository.MemosRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// Probe checks that Memos is reachable and accepts the access token.
func (r *implRepository) Probe(ctx context.Context) error {
	if err := r.client.Probe(ctx); err != nil {
		r.l.Debugf(ctx, "memos repository: probe failed: %v", err)
		return err
	}
	return nil
}

// CreateMemo returns the created memo. Name is empty when Memos answered 200
// without a readable name; the memo exists but cannot be patched.
func (r *implRepository) CreateMemo(ctx context.Context, opt repository.CreateMemoOptions) (model.Memo, error) {
	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{Content: opt.Content})
	if err != nil {
		return model.Memo{}, err
	}
	return model.Memo{Name: memo.Name}, nil
}

func (r *implRepository) PatchTimestamps(ctx context.Context, opt repository.PatchTimestampsOptions) error {
	if opt.Name == "" {
		return fmt.Errorf("patch timestamps: %w", ErrMissingMemoName)
	}

	return r.client.PatchTimestamps(ctx, opt.Name, PatchTimestampsRequest{
		Name:       opt.Name,
		CreateTime: opt.CreateTime,
		UpdateTime: opt.UpdateTime,
	})
}
