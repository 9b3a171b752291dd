package downloads

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"joedank_back_end/internal/database"
)

// Les liens signés expirent après 24h : assez pour télécharger,
// pas assez pour circuler
const signedURLTTL = 24 * time.Hour

// presign est une variable pour pouvoir la remplacer en test
var presign = generateSignedURL

func generateSignedURL(ctx context.Context, key string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non configuré, impossible de signer %q", key)
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "joedank-downloads"
	}

	reqParams := make(url.Values)
	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, signedURLTTL, reqParams)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
