package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/valleclinic/clinic-api/internal/config"
)

const avatarMaxEdge = 512

// AvatarStore uploads profile pictures. Images are normalized to webp and
// capped at avatarMaxEdge on their longest side before the PutObject call.
type AvatarStore struct {
	client *s3.Client
	bucket string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
		BaseEndpoint: optionalEndpoint(cfg.S3Endpoint),
	})

	return &AvatarStore{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

func (s *AvatarStore) Enabled() bool {
	return s != nil
}

// Upload stores one avatar and returns its public URL.
func (s *AvatarStore) Upload(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	encoded, err := encodeWebp(resize(src))
	if err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	key := fmt.Sprintf("avatars/%s.webp", uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func resize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= avatarMaxEdge && h <= avatarMaxEdge {
		return src
	}

	if w >= h {
		h = h * avatarMaxEdge / w
		w = avatarMaxEdge
	} else {
		w = w * avatarMaxEdge / h
		h = avatarMaxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeWebp(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
