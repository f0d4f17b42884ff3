package s3

import (
	"context"
	"errors"
	"io"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks3 "opencsg.com/report-notifier/_mocks/opencsg.com/report-notifier/builder/store/s3"
	"opencsg.com/report-notifier/common/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func newTestAssetStore(t *testing.T, client Client) *assetStoreImpl {
	cfg := &config.Config{}
	cfg.S3.Bucket = "reports"
	cfg.S3.KeyPrefix = "screenshots/"
	cfg.S3.PresignExpireSEC = 3600
	store := NewAssetStore(cfg, client).(*assetStoreImpl)
	store.newKey = func() (string, error) { return "abcdefg", nil }
	return store
}

func TestAssetStore_UploadAndPresign(t *testing.T) {
	cases := []struct {
		name       string
		image      []byte
		keyFailed  bool
		putFailed  bool
		signFailed bool
		err        string
	}{
		{name: "success", image: pngHeader},
		{name: "empty image", image: nil, err: "empty image"},
		{name: "key failed", image: pngHeader, keyFailed: true, err: "failed to generate object key: rand failed"},
		{name: "put failed", image: pngHeader, putFailed: true, err: "failed to put object screenshots/abcdefg: put failed"},
		{name: "presign failed", image: pngHeader, signFailed: true, err: "failed to presign object screenshots/abcdefg: sign failed"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mockClient := mocks3.NewMockClient(t)
			store := newTestAssetStore(t, mockClient)
			if c.keyFailed {
				store.newKey = func() (string, error) { return "", errors.New("rand failed") }
			}

			reachPut := len(c.image) > 0 && !c.keyFailed
			if reachPut {
				mockClient.EXPECT().PutObject(
					mock.Anything, "reports", "screenshots/abcdefg", mock.Anything, int64(len(c.image)),
					minio.PutObjectOptions{ContentType: "image/png"},
				).RunAndReturn(func(
					ctx context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions,
				) (minio.UploadInfo, error) {
					if c.putFailed {
						return minio.UploadInfo{}, errors.New("put failed")
					}
					data, err := io.ReadAll(r)
					require.NoError(t, err)
					require.Equal(t, c.image, data)
					return minio.UploadInfo{Size: size}, nil
				})
			}
			if reachPut && !c.putFailed {
				call := mockClient.EXPECT().PresignedGetObject(
					mock.Anything, "reports", "screenshots/abcdefg", time.Hour, mock.Anything,
				)
				if c.signFailed {
					call.Return(nil, errors.New("sign failed"))
				} else {
					u, _ := url.Parse("https://reports.s3.amazonaws.com/screenshots/abcdefg?X-Amz-Expires=3600")
					call.Return(u, nil)
				}
			}

			u, err := store.UploadAndPresign(context.TODO(), c.image)
			if c.err != "" {
				require.EqualError(t, err, c.err)
				require.Empty(t, u)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "https://reports.s3.amazonaws.com/screenshots/abcdefg?X-Amz-Expires=3600", u)
		})
	}
}

func TestNewAssetKey(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]{27}$`)
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		key, err := newAssetKey()
		require.NoError(t, err)
		require.Regexp(t, re, key)
		seen[key] = struct{}{}
	}
	require.Len(t, seen, 100)
}

func TestNewMinio(t *testing.T) {
	cfg := &config.Config{}
	cfg.S3.Endpoint = "localhost:9000"
	cfg.S3.BucketLookup = "path"
	cfg.S3.AccessKeyID = "ak"
	cfg.S3.AccessKeySecret = "sk"
	client, err := NewMinio(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	cfg.S3.Endpoint = ""
	_, err = NewMinio(cfg)
	require.Error(t, err)
}
