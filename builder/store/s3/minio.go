package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"opencsg.com/report-notifier/common/config"
)

var tracer trace.Tracer

func init() {
	tracer = otel.Tracer("builder.store.s3")
}

var bucketLookupMapping = map[string]minio.BucketLookupType{
	"auto": minio.BucketLookupAuto,
	"dns":  minio.BucketLookupDNS,
	"path": minio.BucketLookupPath,
}

// Client is the subset of the minio client used to publish report screenshots.
type Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions,
	) (info minio.UploadInfo, err error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

func NewMinio(cfg *config.Config) (Client, error) {
	bucketLookupType, ok := bucketLookupMapping[cfg.S3.BucketLookup]
	if !ok {
		bucketLookupType = minio.BucketLookupAuto
	}
	mClient, err := minio.New(cfg.S3.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.S3.AccessKeyID, cfg.S3.AccessKeySecret, ""),
		Secure:       cfg.S3.EnableSSL,
		BucketLookup: bucketLookupType,
		Region:       cfg.S3.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 client, error:%w", err)
	}
	return mClient, nil
}
