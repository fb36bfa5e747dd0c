package oss

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	helper "tamilmandram_backend/internals/helpers"
)

// Service wraps one OSS bucket. All uploaded receipts and site images live
// under the configured prefix.
type Service struct {
	bucket    *alioss.Bucket
	bucketURL string
	prefix    string
}

// NewServiceFromEnv builds the bucket client from OSS_* env vars.
func NewServiceFromEnv(prefix string) (*Service, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: missing OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: client init: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: bucket %q: %w", bucketName, err)
	}

	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &Service{
		bucket:    bucket,
		bucketURL: fmt.Sprintf("https://%s.%s", bucketName, host),
		prefix:    strings.Trim(prefix, "/"),
	}, nil
}

// PublicURL maps an object key to its public address.
func (s *Service) PublicURL(key string) string {
	return s.bucketURL + "/" + strings.TrimPrefix(key, "/")
}

// UploadFile stores a multipart file under dir with a random name, keeping
// the original extension. Transient network failures are retried twice with
// backoff; 4xx-style OSS rejections are not.
func (s *Service) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (key, contentType string, err error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("oss: open form file: %w", err)
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return "", "", fmt.Errorf("oss: read form file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType = fh.Header.Get("Content-Type")
	if contentType == "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			contentType = byExt
		} else {
			contentType = http.DetectContentType(buf.Bytes())
		}
	}

	key = s.objectKey(dir, ext)
	err = s.putRetrying(ctx, key, buf.Bytes(), contentType)
	if err != nil {
		return "", "", err
	}
	return key, contentType, nil
}

// UploadBytes stores an already-encoded payload (e.g. a converted webp image).
func (s *Service) UploadBytes(ctx context.Context, dir, ext string, data []byte, contentType string) (key string, err error) {
	key = s.objectKey(dir, ext)
	if err := s.putRetrying(ctx, key, data, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// DeleteByPublicURL removes the object behind a previously returned URL.
func (s *Service) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(publicURL, s.bucketURL), "/")
	if key == "" || key == publicURL {
		return fmt.Errorf("oss: url %q does not belong to this bucket", publicURL)
	}
	return s.bucket.DeleteObject(key, alioss.WithContext(ctx))
}

func (s *Service) objectKey(dir, ext string) string {
	name := uuid.NewString() + ext
	dir = strings.Trim(dir, "/")
	if s.prefix != "" {
		return path.Join(s.prefix, dir, time.Now().Format("2006/01"), name)
	}
	return path.Join(dir, time.Now().Format("2006/01"), name)
}

func (s *Service) putRetrying(ctx context.Context, key string, data []byte, contentType string) error {
	return helper.RetryTransient(ctx, 2, 200*time.Millisecond, isTransient, func() error {
		return s.bucket.PutObject(key, bytes.NewReader(data),
			alioss.ContentType(contentType),
			alioss.WithContext(ctx),
		)
	})
}

func isTransient(err error) bool {
	var svcErr alioss.ServiceError
	if ok := asServiceError(err, &svcErr); ok {
		return svcErr.StatusCode >= 500
	}
	var netErr net.Error
	if ok := asNetError(err, &netErr); ok {
		return netErr.Timeout()
	}
	return false
}

func asServiceError(err error, target *alioss.ServiceError) bool {
	if e, ok := err.(alioss.ServiceError); ok {
		*target = e
		return true
	}
	return false
}

func asNetError(err error, target *net.Error) bool {
	if e, ok := err.(net.Error); ok {
		*target = e
		return true
	}
	return false
}
