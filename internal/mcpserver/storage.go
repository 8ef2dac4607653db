package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage handles S3 uploads of persona backup files.
type Storage struct {
	client *s3.Client
	bucket string
}

// NewStorage creates an S3 storage handler.
func NewStorage(client *s3.Client, bucket string) *Storage {
	return &Storage{client: client, bucket: bucket}
}

// UploadBackup writes a persona backup JSON to S3 under
// personas/{name}.json and returns the key.
func (s *Storage) UploadBackup(ctx context.Context, name string, data []byte) (string, error) {
	key := "personas/" + name + ".json"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &key,
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("upload backup to s3: %w", err)
	}

	return key, nil
}
