package driverset

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"fmt"
	"strings"

	"ami-encrypter/config"
	"ami-encrypter/driver"
	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/kms"
	"github.com/aws/aws-sdk-go/service/kms/kmsiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/sirupsen/logrus"
)

const uploadRetries = 3

//counterfeiter:generate . EncryptionDriverSet
type EncryptionDriverSet interface {
	AccountDriver() resources.AccountDriver
	CopyAmiDriver() resources.AmiDriver
	CreateAmiDriver() resources.AmiDriver
	DeregisterAmiDriver() resources.DeregisterAmiDriver
	InstanceDriver() resources.InstanceDriver
	KmsDriver() resources.KmsDriver
	ResultUploadDriver() resources.ResultUploadDriver
	SubnetDriver() resources.SubnetDriver
}

type encryptionDriverSet struct {
	accountDriver      *driver.SDKAccountDriver
	copyAmiDriver      *driver.SDKCopyAmiDriver
	createAmiDriver    *driver.SDKCreateAmiDriver
	deregisterDriver   *driver.SDKDeregisterAmiDriver
	instanceDriver     *driver.SDKInstanceDriver
	kmsDriver          *driver.SDKKmsDriver
	resultUploadDriver *driver.SDKResultUploadDriver
	subnetDriver       *driver.SDKSubnetDriver
}

// NewEncryptionDriverSet builds every driver from a single session
func NewEncryptionDriverSet(logger logrus.FieldLogger, c config.Config) (EncryptionDriverSet, error) {
	awsConfig := c.Credentials.GetAwsConfig().
		WithLogger(driver.NewDriverLogger(logger.WithField("driver", "aws-sdk")))
	if c.Debug {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebugWithRequestErrors)
	}

	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}

	if c.RecordFixtures != "" {
		recorder := driver.NewFixtureRecorder(logger, fixtureDir(c.RecordFixtures))
		awsSession.Handlers.Complete.PushBackNamed(recorder.NamedHandler())
	}

	sourceRegion := c.SourceRegion
	if sourceRegion == "" {
		sourceRegion = c.Region
	}

	// The source AMI, the temporary instance and the intermediate AMI live in the
	// source region. Only the final copy is made in the target region.
	targetEC2Client := newEC2Client(awsSession, c.Region, c.Polling.Retries)
	sourceEC2Client := newEC2Client(awsSession, sourceRegion, c.Polling.Retries)
	s3Client := s3.New(awsSession, request.WithRetryer(aws.NewConfig(), driver.NewS3RetryerWithRetries(uploadRetries)))

	return &encryptionDriverSet{
		accountDriver:      driver.NewAccountDriver(logger, ec2metadata.New(awsSession), sts.New(awsSession), sourceEC2Client),
		copyAmiDriver:      driver.NewCopyAmiDriver(logger, targetEC2Client, c.Region, c.Polling),
		createAmiDriver:    driver.NewCreateAmiDriver(logger, sourceEC2Client, sourceRegion, c.Polling),
		deregisterDriver:   driver.NewDeregisterAmiDriver(logger, sourceEC2Client),
		instanceDriver:     driver.NewInstanceDriver(logger, sourceEC2Client, c.Polling),
		resultUploadDriver: driver.NewResultUploadDriver(logger, s3Client),
		subnetDriver:       driver.NewSubnetDriver(logger, sourceEC2Client),
		kmsDriver: driver.NewKmsDriver(logger, func(region string) kmsiface.KMSAPI {
			return kms.New(awsSession, aws.NewConfig().WithRegion(region))
		}),
	}, nil
}

var newEC2Client = func(p client.ConfigProvider, region string, retries int) ec2iface.EC2API {
	return ec2.New(p, request.WithRetryer(aws.NewConfig().WithRegion(region), driver.NewEC2RetryerWithRetries(retries)))
}

// fixtureDir treats a bare boolean as "record into the working directory"
func fixtureDir(recordFixtures string) string {
	switch strings.ToLower(recordFixtures) {
	case "true", "1", "yes":
		return "."
	}
	return recordFixtures
}

func (s *encryptionDriverSet) AccountDriver() resources.AccountDriver {
	return s.accountDriver
}

func (s *encryptionDriverSet) CopyAmiDriver() resources.AmiDriver {
	return s.copyAmiDriver
}

func (s *encryptionDriverSet) CreateAmiDriver() resources.AmiDriver {
	return s.createAmiDriver
}

func (s *encryptionDriverSet) DeregisterAmiDriver() resources.DeregisterAmiDriver {
	return s.deregisterDriver
}

func (s *encryptionDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *encryptionDriverSet) KmsDriver() resources.KmsDriver {
	return s.kmsDriver
}

func (s *encryptionDriverSet) ResultUploadDriver() resources.ResultUploadDriver {
	return s.resultUploadDriver
}

func (s *encryptionDriverSet) SubnetDriver() resources.SubnetDriver {
	return s.subnetDriver
}
