// Package storage 商品圖片上傳
// 路徑固定為 {ownerId}/{generatedId}.{ext}
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
)

// 上限5MB，只收JPEG/PNG/WEBP
const MaxUploadSize = 5 << 20

var allowedContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Uploader interface {
	Upload(ctx context.Context, ownerID, contentType string, r io.Reader, size int64) (string, error)
	RemoveAll(ctx context.Context, paths []string) error
}

// ValidateUpload 檢查大小與類型，回傳副檔名
func ValidateUpload(contentType string, size int64) (string, error) {
	if size <= 0 || size > MaxUploadSize {
		return "", apperr.NewValidation("invalid upload", map[string]string{
			"file": fmt.Sprintf("size must be between 1 byte and %d bytes", MaxUploadSize),
		})
	}
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", apperr.NewValidation("invalid upload", map[string]string{
			"file": "content type must be JPEG, PNG or WEBP",
		})
	}
	return ext, nil
}

// ObjectPath {ownerId}/{generatedId}.{ext}
func ObjectPath(ownerID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", ownerID, uuid.New().String(), ext)
}
