package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/minio/minio-go/v7"
	"go.opentelemetry.io/otel/attribute"
	"opencsg.com/report-notifier/common/config"
)

const (
	assetKeyAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// 26^27 > 2^126
	assetKeyLength = 27
)

// AssetStore publishes a screenshot and hands back a short-lived public link to it.
// Uploaded objects are never removed here, expiry is left to the bucket lifecycle policy.
type AssetStore interface {
	UploadAndPresign(ctx context.Context, image []byte) (string, error)
}

type assetStoreImpl struct {
	client    Client
	bucket    string
	keyPrefix string
	expires   time.Duration
	newKey    func() (string, error)
}

func NewAssetStore(cfg *config.Config, client Client) AssetStore {
	return &assetStoreImpl{
		client:    client,
		bucket:    cfg.S3.Bucket,
		keyPrefix: cfg.S3.KeyPrefix,
		expires:   time.Duration(cfg.S3.PresignExpireSEC) * time.Second,
		newKey:    newAssetKey,
	}
}

func newAssetKey() (string, error) {
	return gonanoid.Generate(assetKeyAlphabet, assetKeyLength)
}

func (s *assetStoreImpl) UploadAndPresign(ctx context.Context, image []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "s3.UploadAndPresign")
	defer span.End()
	span.SetAttributes(attribute.Int("size", len(image)))

	if len(image) == 0 {
		return "", fmt.Errorf("empty image")
	}

	key, err := s.newKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate object key: %w", err)
	}
	objectName := s.keyPrefix + key

	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(image), int64(len(image)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(image),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", objectName, err)
	}
	span.AddEvent("put object done")

	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.expires, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", objectName, err)
	}
	slog.Debug("screenshot uploaded", slog.String("bucket", s.bucket), slog.String("object_name", objectName))
	return u.String(), nil
}
