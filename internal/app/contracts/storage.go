package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"time"
)

type StorageService interface {
	UploadPrescription(ctx context.Context, patientID string, file io.Reader, fileHeader *multipart.FileHeader) (string, error)
	PresignedPrescriptionURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
