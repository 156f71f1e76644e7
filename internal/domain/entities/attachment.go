package entities

import "time"

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	return m == MediaTypePhoto || m == MediaTypeVideo
}

// StorageProvider tells where the attachment bytes live.
type StorageProvider string

const (
	// StorageProviderObject is the S3-compatible bucket (Supabase Storage).
	StorageProviderObject StorageProvider = "supabase"
	// StorageProviderYouTube is an external video link; nothing is stored.
	StorageProviderYouTube StorageProvider = "youtube"
)

// Attachment is a photo or video linked to a service order.
//
// ServiceOrderID is empty while the file belongs to an intake draft that was
// not submitted yet. Step is the workflow stage the media was captured at.
type Attachment struct {
	ID             string          `json:"id"`
	ServiceOrderID string          `json:"service_order_id,omitempty"`
	URL            string          `json:"url"`
	Step           string          `json:"step"`
	MediaType      MediaType       `json:"media_type"`
	Caption        string          `json:"caption,omitempty"`
	StoragePath    string          `json:"storage_path,omitempty"`
	Provider       StorageProvider `json:"provider"`
	CreatedAt      time.Time       `json:"created_at"`
}
