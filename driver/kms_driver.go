package driver

import (
	"context"
	"fmt"
	"time"

	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/kms"
	"github.com/aws/aws-sdk-go/service/kms/kmsiface"
	"github.com/sirupsen/logrus"
)

var _ resources.KmsDriver = &SDKKmsDriver{}

// KmsClientFactory returns a KMS client for the given region
type KmsClientFactory func(region string) kmsiface.KMSAPI

type SDKKmsDriver struct {
	createKmsClient KmsClientFactory
	logger          *logrus.Entry
}

func NewKmsDriver(logger logrus.FieldLogger, createKmsClient KmsClientFactory) *SDKKmsDriver {
	return &SDKKmsDriver{
		createKmsClient: createKmsClient,
		logger:          logger.WithField("driver", "SDKKmsDriver"),
	}
}

// ResolveKey turns a key id, key ARN, alias name or alias ARN into the key's ARN. An empty
// key id resolves to the empty key, meaning the account's default EBS key.
func (d *SDKKmsDriver) ResolveKey(ctx context.Context, driverConfig resources.KmsResolveKeyDriverConfig) (resources.KmsKey, error) {
	if driverConfig.KmsKeyId == "" {
		return resources.KmsKey{}, nil
	}

	resolveStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed ResolveKey() in %f minutes", time.Since(startTime).Minutes())
	}(resolveStartTime)

	d.logger.Printf("describing kms key %s in %s", driverConfig.KmsKeyId, driverConfig.Region)
	output, err := d.createKmsClient(driverConfig.Region).DescribeKeyWithContext(ctx, &kms.DescribeKeyInput{
		KeyId: aws.String(driverConfig.KmsKeyId),
	})
	if err != nil {
		return resources.KmsKey{}, fmt.Errorf("describing kms key %s: %w", driverConfig.KmsKeyId, err)
	}

	metadata := output.KeyMetadata
	if metadata == nil || metadata.Arn == nil {
		return resources.KmsKey{}, fmt.Errorf("kms key %s not found", driverConfig.KmsKeyId)
	}

	if state := aws.StringValue(metadata.KeyState); state != kms.KeyStateEnabled {
		return resources.KmsKey{}, fmt.Errorf("kms key %s is %s, expected %s", driverConfig.KmsKeyId, state, kms.KeyStateEnabled)
	}

	d.logger.Printf("using kms key %s", *metadata.Arn)

	return resources.KmsKey{ARN: *metadata.Arn, KeyId: aws.StringValue(metadata.KeyId)}, nil
}
