package storage

import (
	"strings"
	"testing"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantExt     string
		wantErr     bool
	}{
		{"jpeg ok", "image/jpeg", 1024, "jpg", false},
		{"png ok", "image/png", MaxUploadSize, "png", false},
		{"webp ok", "image/webp", 1, "webp", false},
		{"too large", "image/jpeg", MaxUploadSize + 1, "", true},
		{"zero size", "image/jpeg", 0, "", true},
		{"gif rejected", "image/gif", 1024, "", true},
		{"pdf rejected", "application/pdf", 1024, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := ValidateUpload(tt.contentType, tt.size)
			if tt.wantErr {
				require.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestObjectPath(t *testing.T) {
	path := ObjectPath("user-1", "jpg")
	require.True(t, strings.HasPrefix(path, "user-1/"))
	require.True(t, strings.HasSuffix(path, ".jpg"))
	// generatedId每次都不一樣
	require.NotEqual(t, path, ObjectPath("user-1", "jpg"))
}
