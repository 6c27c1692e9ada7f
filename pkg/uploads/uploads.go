// Package uploads stores profile pictures on local disk.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// MaxSize caps a single profile picture upload.
const MaxSize = 2 << 20

var (
	ErrInvalidFilename = errors.New("invalid file name")
	ErrUnsupportedType = errors.New("unsupported image type")
)

var allowedExt = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Filename turns a client supplied name into user_{id}_{slug}.{ext}.
func Filename(userID int, original string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "", ErrInvalidFilename
	}
	return fmt.Sprintf("user_%d_%s.%s", userID, name, ext), nil
}

func (s *Store) Save(userID int, original string, r io.Reader) (string, error) {
	name, err := Filename(userID, original)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		zap.L().Error("can't create upload file", zap.String("path", path), zap.Error(err))
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxSize)); err != nil {
		zap.L().Error("can't write upload file", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return name, nil
}
