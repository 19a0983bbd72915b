package utils

import (
	"fmt"
	"time"

	"healiinn-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateReceiptID builds the receipt reference sent along with a gateway
// order so the callback can be traced back to the originating request.
func GenerateReceiptID(serviceRequestID string) string {
	return fmt.Sprintf("%s_%s_%d", constvars.GatewayReceiptPrefix, serviceRequestID, time.Now().Unix())
}

func GenerateObjectName(prefix, patientID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s%s", prefix, patientID, timestamp, fileExtension)
}
