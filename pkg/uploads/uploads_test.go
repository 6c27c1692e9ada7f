package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		expected  string
		expectErr error
	}{
		{name: "Plain", original: "me.png", expected: "user_7_me.png"},
		{name: "Spaces and case", original: "My Holiday Pic.JPG", expected: "user_7_my-holiday-pic.jpg"},
		{name: "Path traversal", original: "../../etc/passwd.png", expected: "user_7_passwd.png"},
		{name: "Windows path", original: `C:\Users\me\avatar.jpeg`, expected: "user_7_avatar.jpeg"},
		{name: "Unsupported type", original: "script.sh", expectErr: ErrUnsupportedType},
		{name: "No extension", original: "avatar", expectErr: ErrUnsupportedType},
		{name: "Nothing left after slug", original: "###.png", expectErr: ErrInvalidFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filename(7, tt.original)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profile_pics")
	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	name, err := store.Save(3, "face.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "user_3_face.png", name)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	_, err = store.Save(3, "face.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
