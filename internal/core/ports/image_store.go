package ports

import "context"

// UploadInput is an encoded image payload plus a folder hint for the
// image-hosting backend.
type UploadInput struct {
	Data        []byte
	ContentType string
	Folder      string
}

// ImageStore is the image-hosting collaborator: it accepts an image payload
// and returns a stable retrievable URL. Nothing in the system deletes images.
type ImageStore interface {
	Upload(ctx context.Context, input UploadInput) (string, error)
}

// MediaService defines the upload use case exposed over HTTP.
type MediaService interface {
	Upload(ctx context.Context, input UploadInput) (string, error)
}
