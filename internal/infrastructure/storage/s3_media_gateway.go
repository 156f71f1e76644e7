package storage

import (
	"context"
	"fmt"
	"net/url"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/infrastructure/config"
	"oficina_os/internal/usecase/interfaces"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultFolder = "general"

// ObjectAPI is the subset of *s3.Client used by the gateway.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ ObjectAPI = (*s3.Client)(nil)

// MediaGateway stores uploads in an S3-compatible bucket (Supabase Storage,
// MinIO, AWS) and normalizes YouTube links.
type MediaGateway struct {
	client    ObjectAPI
	bucket    string
	publicURL string
	now       func() time.Time
}

var _ interfaces.IMediaGateway = (*MediaGateway)(nil)

// NewS3Client builds the object storage client. A custom endpoint switches
// the client to that host, path-style when configured.
func NewS3Client(ctx context.Context, cfg config.Storage) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func NewMediaGateway(client ObjectAPI, cfg config.Storage) *MediaGateway {
	return &MediaGateway{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg),
		now:       time.Now,
	}
}

// Upload writes the object under folder with a unique name that keeps the
// original extension.
func (g *MediaGateway) Upload(ctx context.Context, in interfaces.MediaUpload) (interfaces.StoredMedia, error) {
	folder := strings.Trim(strings.TrimSpace(in.Folder), "/")
	if folder == "" {
		folder = defaultFolder
	}
	key := folder + "/" + g.objectName(in.Filename)

	put := &s3.PutObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Body:   in.Body,
	}
	if in.ContentType != "" {
		put.ContentType = aws.String(in.ContentType)
	}
	if in.Size > 0 {
		put.ContentLength = aws.Int64(in.Size)
	}
	if _, err := g.client.PutObject(ctx, put); err != nil {
		log.Error().Err(err).Str("bucket", g.bucket).Str("key", key).Msg("[media][storage] upload failed")
		return interfaces.StoredMedia{}, fmt.Errorf("upload %s: %w", key, err)
	}
	log.Info().Str("bucket", g.bucket).Str("key", key).Int64("size", in.Size).Msg("[media][storage] uploaded")

	return interfaces.StoredMedia{
		URL:      g.publicURL + "/" + key,
		Path:     key,
		Provider: entities.StorageProviderObject,
	}, nil
}

// Delete removes a stored object. External links have nothing stored.
func (g *MediaGateway) Delete(ctx context.Context, objectPath string, provider entities.StorageProvider) error {
	if provider != entities.StorageProviderObject || strings.TrimSpace(objectPath) == "" {
		return nil
	}
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(objectPath),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectPath).Msg("[media][storage] delete failed")
		return fmt.Errorf("delete %s: %w", objectPath, err)
	}
	return nil
}

// ProcessExternalLink turns a YouTube watch, short or embed URL into the
// embed form. Nothing is uploaded.
func (g *MediaGateway) ProcessExternalLink(_ context.Context, rawURL string, provider entities.StorageProvider) (interfaces.StoredMedia, error) {
	if provider != entities.StorageProviderYouTube {
		return interfaces.StoredMedia{}, interfaces.ErrUnsupportedProvider
	}
	id, ok := YouTubeVideoID(rawURL)
	if !ok {
		return interfaces.StoredMedia{}, interfaces.ErrInvalidMediaLink
	}
	return interfaces.StoredMedia{
		URL:      "https://www.youtube.com/embed/" + id,
		Provider: entities.StorageProviderYouTube,
	}, nil
}

func (g *MediaGateway) objectName(filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	return fmt.Sprintf("%d-%s%s", g.now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)
}

// YouTubeVideoID extracts the video id from the usual YouTube URL shapes.
func YouTubeVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) == 2 && (segments[0] == "embed" || segments[0] == "shorts" || segments[0] == "live"):
			id = segments[1]
		}
	}
	if !validVideoID(id) {
		return "", false
	}
	return id, true
}

func validVideoID(id string) bool {
	if len(id) < 6 || len(id) > 32 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func publicBaseURL(cfg config.Storage) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
