package resources

import "context"

// ResultUploadDriver publishes the recorded result file for downstream pipeline jobs
//
//counterfeiter:generate . ResultUploadDriver
type ResultUploadDriver interface {
	Upload(context.Context, ResultUploadDriverConfig) (string, error)
}

type ResultUploadDriverConfig struct {
	LocalPath  string
	BucketName string
	Key        string
}
