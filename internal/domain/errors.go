package domain

import "errors"

// ErrAlreadyExists is returned by repositories when a unique constraint rejects a write.
var ErrAlreadyExists = errors.New("already exists")
