package driver

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// EC2 error codes returned while a freshly created resource has not yet propagated
const (
	InstanceNotFoundErrorCode = "InvalidInstanceID.NotFound"
	AmiNotFoundErrorCode      = "InvalidAMIID.NotFound"
)

func NewS3RetryerWithRetries(numRetries int) S3Retryer {
	return S3Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// S3Retryer handles more error conditions than the default retryer when
// uploading to S3
type S3Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r S3Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

// ShouldRetry returns a SerializationError if the response body was interrupted.
// S3Retryer will check for this error before invoking DefaultRetryer.ShouldRetry
func (r S3Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil {
		if err, ok := req.Error.(awserr.Error); ok {
			if err.Code() == "SerializationError" {
				return true
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer retries the not-found errors EC2 reports for resources it has only just
// created, on top of everything the DefaultRetryer retries
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil {
		if err, ok := req.Error.(awserr.Error); ok {
			switch err.Code() {
			case InstanceNotFoundErrorCode, AmiNotFoundErrorCode:
				return true
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}
