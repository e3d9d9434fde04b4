package media

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
	"golang.org/x/image/draw"

	"github.com/barbercloud/agenda-api/internal/config"
)

const (
	maxLogoEdge = 512
	webpQuality = 85
)

// Storage uploads shop branding images to S3, normalized to webp.
type Storage struct {
	client *s3.Client
	bucket string
	region string
}

// New returns nil when S3 is not configured; callers must check Enabled.
func New(cfg *config.Config) *Storage {
	if !cfg.MediaEnabled() {
		return nil
	}

	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	return &Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (s *Storage) Enabled() bool {
	return s != nil && s.client != nil
}

// UploadShopLogo decodes a JPEG/PNG, scales it down to maxLogoEdge, encodes
// webp and puts it at a stable per-shop key. Returns the public URL.
func (s *Storage) UploadShopLogo(ctx context.Context, shopID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}

	dst := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("shops/%d/logo.webp", shopID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put logo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxLogoEdge && h <= maxLogoEdge {
		return src
	}

	if w >= h {
		h = h * maxLogoEdge / w
		w = maxLogoEdge
	} else {
		w = w * maxLogoEdge / h
		h = maxLogoEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
