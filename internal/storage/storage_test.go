package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), []byte("resume bytes"), "resume.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "url %q should carry the base prefix", url)
	assert.True(t, strings.HasSuffix(url, "_resume.pdf"), "url %q should keep the sanitized name", url)

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "resume bytes", string(data))
}

func TestLocalStorage_UploadDistinctNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.Upload(context.Background(), []byte("a"), "resume.pdf")
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), []byte("b"), "resume.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "resume.pdf", "resume.pdf"},
		{"spaces", "my resume (final).pdf", "my_resume__final_.pdf"},
		{"path stripped", "/etc/passwd", "passwd"},
		{"traversal stripped", "../../secret.docx", "secret.docx"},
		{"unicode", "résumé.pdf", "r_sum_.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}
