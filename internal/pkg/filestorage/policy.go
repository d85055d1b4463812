package filestorage

import (
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/yigit/intlportal/internal/pkg/apperrors"
)

// UploadPolicy restricts what an upload may contain. The type is taken
// from the file's content, not from the name or the client's header.
type UploadPolicy struct {
	Allowed     []string
	MaxBytes    int64
	TypeMessage string
	SizeMessage string
}

// DocumentPolicy accepts PDF, JPEG and PNG up to maxMB megabytes.
func DocumentPolicy(maxMB int) UploadPolicy {
	return UploadPolicy{
		Allowed:     []string{"application/pdf", "image/jpeg", "image/png"},
		MaxBytes:    int64(maxMB) * 1024 * 1024,
		TypeMessage: "Please upload only PDF, JPG, or PNG files.",
		SizeMessage: fmt.Sprintf("File size must be less than %dMB.", maxMB),
	}
}

// PicturePolicy accepts JPEG, PNG and GIF up to maxMB megabytes.
func PicturePolicy(maxMB int) UploadPolicy {
	return UploadPolicy{
		Allowed:     []string{"image/jpeg", "image/png", "image/gif"},
		MaxBytes:    int64(maxMB) * 1024 * 1024,
		TypeMessage: "Please upload only JPG, PNG, or GIF files.",
		SizeMessage: fmt.Sprintf("File size must be less than %dMB.", maxMB),
	}
}

// Check returns the detected MIME type. The type is checked before the size.
func (p UploadPolicy) Check(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperrors.NewValidationError("No file uploaded.")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect upload type: %w", err)
	}

	if !mimetype.EqualsAny(detected.String(), p.Allowed...) {
		return detected.String(), apperrors.NewCustomError(apperrors.ErrUnsupportedFileType, p.TypeMessage)
	}
	if fh.Size > p.MaxBytes {
		return detected.String(), apperrors.NewCustomError(apperrors.ErrFileTooLarge, p.SizeMessage)
	}
	return detected.String(), nil
}
