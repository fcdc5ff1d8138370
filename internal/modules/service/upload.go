package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/marsestates/brokerage-api/internal/infra/blob"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

// Object key prefixes for the two listing file kinds.
const (
	KeyPrefixUnitImages = "units/images"
	KeyPrefixUnitPlans  = "units/plans"
)

// UploadService transfers multipart files to the bucket and records an
// audit row per object. The audit rows outlive a failed unit insert;
// they are the cleanup trail for orphaned objects.
type UploadService interface {
	UploadFile(ctx context.Context, keyPrefix, formField string, fh *multipart.FileHeader) (string, error)
}

type uploadService struct {
	s3     *blob.S3Deps
	assets repo.AssetRepo
	log    *zap.Logger
}

func NewUploadService(s3 *blob.S3Deps, assets repo.AssetRepo, log *zap.Logger) UploadService {
	return &uploadService{s3: s3, assets: assets, log: log}
}

// UploadFile pushes one file to the bucket and returns its public URL.
func (s *uploadService) UploadFile(ctx context.Context, keyPrefix, formField string, fh *multipart.FileHeader) (string, error) {
	meta, err := s.s3.UploadFormFile(ctx, keyPrefix, fh)
	if err != nil {
		return "", err
	}

	asset := &model.Asset{
		Bucket: meta.Bucket,
		Key:    meta.Key,
		URL:    meta.URL,
		ETag:   meta.ETag,
		MIME:   meta.MIME,
		SizeB:  meta.SizeB,
		Meta: datatypes.JSONMap{
			"filename": fh.Filename,
			"field":    formField,
		},
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		// The object is already stored; keep serving it and leave the
		// missing audit row to the logs.
		s.log.Sugar().Errorw("asset audit insert failed",
			"key", meta.Key, "url", meta.URL, "err", err)
	}

	return meta.URL, nil
}
