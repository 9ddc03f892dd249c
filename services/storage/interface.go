package storage

import "context"

// StorageService stores user-uploaded media with a hosted provider.
type StorageService interface {
	// UploadProfileImage stores an image under the configured folder and
	// returns its public HTTPS URL. file accepts anything the provider's
	// uploader does: an io.Reader, a local path, or a remote URL.
	UploadProfileImage(ctx context.Context, file interface{}) (string, error)
	// DeleteFile removes a previously uploaded asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
