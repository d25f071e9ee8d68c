package services

import (
	"context"
	"fmt"
	"io"

	"conversationLogger/configs"
	"conversationLogger/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
}

func NewMinioService(config *configs.Config) (*MinioService, error) {
	endpoint := config.Viper.GetString("minio.endpoint")
	accessKeyID := config.Viper.GetString("minio.access_key_id")
	secretAccessKey := config.Viper.GetString("minio.secret_access_key")
	useSSL := config.Viper.GetBool("minio.use_ssl")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinioService{
		minioClient: minioClient,
		config:      config,
	}, nil
}

// EnsureBucket creates the bucket unless we already own it.
func (ms *MinioService) EnsureBucket(ctx context.Context, bucketName string) error {
	err := ms.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err == nil {
		logger.L.Info("created bucket", "bucket", bucketName)
		return nil
	}
	exists, errBucketExists := ms.minioClient.BucketExists(ctx, bucketName)
	if errBucketExists == nil && exists {
		logger.L.Debug("bucket already exists", "bucket", bucketName)
		return nil
	}
	return fmt.Errorf("make bucket %s: %w", bucketName, err)
}

func (ms *MinioService) UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	if err := ms.EnsureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	info, err := ms.minioClient.PutObject(ctx, bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.L.Error("upload failed", "bucket", bucketName, "object", fileName, "error", err)
		return "", err
	}

	return ms.GetPublicFileUrl(bucketName, info.Key)
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) (string, error) {
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	if externalEndpoint == "" {
		externalEndpoint = ms.config.Viper.GetString("minio.endpoint")
	}
	path := fmt.Sprintf("http://%s/%s/%s", externalEndpoint, bucketName, fileKey)
	return path, nil
}
