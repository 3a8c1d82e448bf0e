// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-backend/internal/config"
)

// MaxImagesPerUpload caps the number of files accepted by one upload call.
const MaxImagesPerUpload = 10

type StorageService struct {
	s3Client s3iface.S3API
	config   config.StorageConfig
	logger   *logrus.Logger
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
	IsPublic     bool
}

func NewStorageService(cfg config.StorageConfig, logger *logrus.Logger) (*StorageService, error) {
	if cfg.AccessKeyID == "" {
		// Local disk storage for development
		if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.LocalDir, err)
		}
		return &StorageService{config: cfg, logger: logger}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg, logger), nil
}

// NewStorageServiceWithClient builds an S3 backed service around an existing client.
func NewStorageServiceWithClient(client s3iface.S3API, cfg config.StorageConfig, logger *logrus.Logger) *StorageService {
	return &StorageService{s3Client: client, config: cfg, logger: logger}
}

// IsLocal reports whether files are written to the local upload dir.
func (s *StorageService) IsLocal() bool {
	return s.s3Client == nil
}

// UploadProductImages stores every file and returns the public URLs in the
// order the files were given. Nothing is kept if any file is rejected.
func (s *StorageService) UploadProductImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ValidationError("No files were uploaded", nil)
	}
	if len(files) > MaxImagesPerUpload {
		return nil, ValidationError(fmt.Sprintf("Too many files, at most %d per request", MaxImagesPerUpload), nil)
	}

	options := s.productUploadOptions()
	urls := make([]string, 0, len(files))
	keys := make([]string, 0, len(files))

	for _, header := range files {
		result, err := s.uploadHeader(ctx, header, options)
		if err != nil {
			for _, key := range keys {
				if delErr := s.DeleteFile(ctx, key); delErr != nil {
					s.logger.WithContext(ctx).WithError(delErr).WithField("key", key).Warn("Failed to clean up upload")
				}
			}
			return nil, err
		}
		urls = append(urls, result.URL)
		keys = append(keys, result.Key)
	}

	return urls, nil
}

func (s *StorageService) uploadHeader(ctx context.Context, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to open upload %s: %w", header.Filename, err))
	}
	defer file.Close()

	return s.UploadFile(ctx, file, header, options)
}

func (s *StorageService) UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, ValidationError(fmt.Sprintf("File %s is larger than %d bytes", header.Filename, options.MaxSize), nil)
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to read file: %w", err))
	}

	// The declared content type and extension are not trusted
	detected := mimetype.Detect(fileBytes)
	if !isAllowedType(detected, options.AllowedTypes) {
		return nil, ValidationError(fmt.Sprintf("File type %s is not allowed", detected.String()), nil)
	}

	filename := s.generateFileName(detected.Extension(), options.Folder)

	var result *UploadResult
	if s.s3Client != nil {
		result, err = s.uploadToS3(ctx, fileBytes, filename, detected.String(), options.IsPublic)
	} else {
		result, err = s.uploadToLocal(fileBytes, filename, detected.String())
	}
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("key", filename).Error("Image upload failed")
		return nil, InternalError(err)
	}

	s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"key":  result.Key,
		"size": result.Size,
		"mime": result.MimeType,
	}).Info("Image uploaded")
	return result, nil
}

func isAllowedType(detected *mimetype.MIME, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, mime := range allowed {
		if detected.Is(mime) {
			return true
		}
	}
	return false
}

func (s *StorageService) uploadToS3(ctx context.Context, fileBytes []byte, key, contentType string, isPublic bool) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}

	if isPublic {
		params.ACL = aws.String("public-read")
	}

	if _, err := s.s3Client.PutObjectWithContext(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	target := filepath.Join(s.config.LocalDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(target, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	return &UploadResult{
		URL:      s.getLocalURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(ctx context.Context, key string) error {
	if s.s3Client == nil {
		err := os.Remove(filepath.Join(s.config.LocalDir, filepath.FromSlash(key)))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete local file: %w", err)
		}
		return nil
	}

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *StorageService) productUploadOptions() UploadOptions {
	maxSize := s.config.MaxUploadSize
	if maxSize <= 0 {
		maxSize = 10 * 1024 * 1024 // 10MB
	}
	return UploadOptions{
		Folder:       "products",
		MaxSize:      maxSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		IsPublic:     true,
	}
}

func (s *StorageService) generateFileName(ext, folder string) string {
	id := uuid.New()
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String(), ext)

	if folder != "" {
		return path.Join(folder, filename)
	}
	return filename
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.S3Bucket, s.config.Region, key)
}

func (s *StorageService) getLocalURL(key string) string {
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(s.config.PublicBaseURL, "/"), key)
}
