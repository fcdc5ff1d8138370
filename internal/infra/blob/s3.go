package blob

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/marsestates/brokerage-api/internal/config"
)

// S3Deps holds the S3 client set used for listing asset uploads.
type S3Deps struct {
	Client        *s3.Client
	Uploader      *manager.Uploader
	Bucket        string
	PublicBaseURL string
	SSE           *s3types.ServerSideEncryption
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)
	uploader := manager.NewUploader(client)

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	base := strings.TrimRight(cfg.S3.PublicBaseURL, "/")
	if base == "" {
		// Fall back to <endpoint>/<bucket> for path-style setups.
		base = strings.TrimRight(cfg.S3.Endpoint, "/") + "/" + cfg.S3.Bucket
	}

	return &S3Deps{
		Client:        client,
		Uploader:      uploader,
		Bucket:        cfg.S3.Bucket,
		PublicBaseURL: base,
		SSE:           sse,
	}, nil
}

// UploadedMeta describes one object written to the bucket.
type UploadedMeta struct {
	Bucket string
	Key    string
	ETag   string
	MIME   string
	SizeB  int64
	URL    string
}

// UploadFormFile streams a multipart file into the bucket under
// keyPrefix (e.g. "units/images"). Keys are uuid-based with a date
// prefix so repeated uploads of the same file never collide.
func (u *S3Deps) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	datePrefix := time.Now().UTC().Format("2006/01/02")
	key := fmt.Sprintf("%s/%s/%s%s", keyPrefix, datePrefix, uuid.NewString(), ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fh.Header.Get("Content-Type")),
		Metadata: map[string]string{
			"name": fh.Filename,
		},
	}
	if u.SSE != nil {
		input.ServerSideEncryption = *u.SSE
	}

	out, err := u.Uploader.Upload(ctx, input)
	if err != nil {
		return nil, err
	}

	meta := &UploadedMeta{
		Bucket: u.Bucket,
		Key:    key,
		MIME:   fh.Header.Get("Content-Type"),
		SizeB:  fh.Size,
		URL:    u.ObjectURL(key),
	}
	if out.ETag != nil {
		meta.ETag = *out.ETag
	}
	return meta, nil
}

// ObjectURL returns the public URL for a stored object key.
func (u *S3Deps) ObjectURL(key string) string {
	return u.PublicBaseURL + "/" + key
}
