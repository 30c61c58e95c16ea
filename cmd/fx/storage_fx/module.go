package storage_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"skillswap/internal/config"
	"skillswap/internal/models/response_models"
	"skillswap/pkg/storage"
	"skillswap/pkg/utils"
)

var Module = fx.Provide(providePhotoStore, providePresenter)

func providePhotoStore(cfg *config.Config, log *zap.Logger) (storage.PhotoStore, error) {
	if cfg.StorageBackend == config.StorageMinio {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := storage.NewMinio(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return nil, err
		}
		log.Info("storing photos in minio", zap.String("bucket", cfg.MinioBucket))
		return store, nil
	}

	prefix, err := cfg.PhotoURLPrefix()
	if err != nil {
		return nil, err
	}
	log.Info("storing photos on disk", zap.String("dir", cfg.UploadDir), zap.String("url", prefix))
	return storage.NewLocal(cfg.UploadDir, prefix)
}

func providePresenter(cfg *config.Config, photos storage.PhotoStore) *response_models.Presenter {
	return response_models.NewPresenter(func(name string) string {
		return storage.PhotoURL(photos, name)
	}, utils.LoadLocation(cfg.Timezone))
}
