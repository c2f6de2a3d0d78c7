package service

import (
	"context"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API : часть клиента s3, которой пользуется S3Service
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

type S3Service struct {
	client S3API
	bucket string
	tmpDir string
}

func NewS3Service(ctx context.Context, cfg *config.S3Config, tmpDir string) (*S3Service, error) {
	var client *s3.Client

	if cfg.Endpoint != "" || cfg.AccessKeyID != "" {
		options := s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
		if cfg.Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.Endpoint)
			options.UsePathStyle = true
		}
		client = s3.New(options)
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	service := NewS3ServiceWithClient(client, cfg.Bucket, tmpDir)
	if err := service.CreateBucketIfNotExists(ctx); err != nil {
		return nil, err
	}

	slog.Info("объектное хранилище подключено", "service", cfg.ServiceName, "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return service, nil
}

func NewS3ServiceWithClient(client S3API, bucket, tmpDir string) *S3Service {
	return &S3Service{
		client: client,
		bucket: bucket,
		tmpDir: tmpDir,
	}
}

// CreateBucketIfNotExists создает бакет если он не существует
func (s *S3Service) CreateBucketIfNotExists(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})

	var owned *types.BucketAlreadyOwnedByYou
	if errors.As(err, &owned) {
		return nil
	}
	if err != nil {
		return util.LogError("[S3Service] ошибка создания бакета", err)
	}

	slog.Info("[S3Service] бакет успешно создан", "bucket", s.bucket)
	return nil
}

func (s *S3Service) Bucket() string {
	return s.bucket
}

// PutObject : загрузка объекта
func (s *S3Service) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return util.LogError("[S3Service] не удалось загрузить объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	return nil
}

// GetObject : скачивает объект во временный файл, вызывающий удаляет файл сам
func (s *S3Service) GetObject(ctx context.Context, key string) (string, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", util.LogError("[S3Service] не удалось получить объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	defer output.Body.Close()

	path, err := writeTempFile(s.tmpDir, output.Body)
	if err != nil {
		return "", util.LogError("[S3Service] не удалось сохранить объект во временный файл", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	return path, nil
}

// DeleteObject : удаление объекта
func (s *S3Service) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return util.LogError("[S3Service] не удалось удалить объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
