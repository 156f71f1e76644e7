package interfaces

import (
	"context"
	"io"
	"oficina_os/internal/domain/entities"
)

// MediaUpload is one binary file headed to object storage.
type MediaUpload struct {
	Body        io.Reader
	Size        int64
	Filename    string
	ContentType string
	Folder      string
}

// StoredMedia is the stable reference returned by the media gateway.
type StoredMedia struct {
	URL      string
	Path     string
	Provider entities.StorageProvider
}

// IMediaGateway stores binary attachments or records external video links.
type IMediaGateway interface {
	Upload(ctx context.Context, in MediaUpload) (StoredMedia, error)
	Delete(ctx context.Context, path string, provider entities.StorageProvider) error
	ProcessExternalLink(ctx context.Context, rawURL string, provider entities.StorageProvider) (StoredMedia, error)
}
