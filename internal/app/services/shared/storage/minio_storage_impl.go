package storage

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"time"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadPrescription(ctx context.Context, patientID string, file io.Reader, fileHeader *multipart.FileHeader) (string, error) {
	objectName := utils.GenerateObjectName("prescriptions", patientID, filepath.Ext(fileHeader.Filename))
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) PresignedPrescriptionURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
