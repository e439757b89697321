package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"
)

var _ resources.ResultUploadDriver = &SDKResultUploadDriver{}

// SDKResultUploadDriver copies a recorded result file to S3
type SDKResultUploadDriver struct {
	s3Client s3iface.S3API
	logger   *logrus.Entry
}

func NewResultUploadDriver(logger logrus.FieldLogger, s3Client s3iface.S3API) *SDKResultUploadDriver {
	return &SDKResultUploadDriver{
		s3Client: s3Client,
		logger:   logger.WithField("driver", "SDKResultUploadDriver"),
	}
}

// Upload returns the s3:// URL of the uploaded file
func (d *SDKResultUploadDriver) Upload(ctx context.Context, driverConfig resources.ResultUploadDriverConfig) (string, error) {
	uploadStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Upload() in %f minutes", time.Since(startTime).Minutes())
	}(uploadStartTime)

	f, err := os.Open(driverConfig.LocalPath)
	if err != nil {
		return "", fmt.Errorf("opening result file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	url := fmt.Sprintf("s3://%s/%s", driverConfig.BucketName, driverConfig.Key)
	d.logger.Printf("uploading %s to %s", driverConfig.LocalPath, url)

	_, err = d.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(driverConfig.BucketName),
		Key:         aws.String(driverConfig.Key),
		Body:        f,
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading result file to %s: %w", url, err)
	}

	return url, nil
}
