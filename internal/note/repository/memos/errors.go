package memos

import "errors"

var ErrMissingMemoName = errors.New("memo name is empty")
