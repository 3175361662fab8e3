package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/baymax-health/internal/config"
)

const (
	MaxAvatarSide  = 256
	avatarQuality  = 80
	avatarMimeType = "image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported image")

// AvatarStore uploads a user's avatar and returns its public URL.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, userID uint, webpData []byte) (string, error)
}

type S3AvatarStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewS3AvatarStore(cfg *config.Config) *S3AvatarStore {
	opts := s3.Options{
		Region: cfg.S3Region,
	}

	if cfg.AWSAccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		)
	}

	// custom endpoints are S3-compatible servers that want path-style keys
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3AvatarStore{
		client:   s3.New(opts),
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
	}
}

func (s *S3AvatarStore) UploadAvatar(ctx context.Context, userID uint, webpData []byte) (string, error) {
	key := AvatarKey(userID, uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(webpData),
		ContentType: aws.String(avatarMimeType),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return s.objectURL(key), nil
}

func (s *S3AvatarStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func AvatarKey(userID uint, id string) string {
	return fmt.Sprintf("avatars/%d/%s.webp", userID, id)
}

// TranscodeAvatar decodes png, jpeg, gif or webp input, shrinks it so
// neither side exceeds MaxAvatarSide and re-encodes it as webp.
func TranscodeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := fit(src, MaxAvatarSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	w, h = max(w, 1), max(h, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

var _ AvatarStore = (*S3AvatarStore)(nil)
