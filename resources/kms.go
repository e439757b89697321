package resources

import "context"

// KmsDriver resolves the customer managed key used to encrypt copied snapshots
//
//counterfeiter:generate . KmsDriver
type KmsDriver interface {
	ResolveKey(context.Context, KmsResolveKeyDriverConfig) (KmsKey, error)
}

type KmsKey struct {
	ARN   string
	KeyId string
}

type KmsResolveKeyDriverConfig struct {
	KmsKeyId string
	Region   string
}
