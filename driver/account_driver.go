package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/sirupsen/logrus"
)

var _ resources.AccountDriver = &SDKAccountDriver{}

// MetadataAPI is the part of the instance metadata client the account driver relies on
type MetadataAPI interface {
	IAMInfoWithContext(aws.Context) (ec2metadata.EC2IAMInfo, error)
}

// SDKAccountDriver finds the caller's account from the instance profile of the host it
// runs on, falling back to STS, and the owner of an AMI from its image location
type SDKAccountDriver struct {
	metadataClient MetadataAPI
	stsClient      stsiface.STSAPI
	ec2Client      ec2iface.EC2API
	logger         *logrus.Entry
}

func NewAccountDriver(logger logrus.FieldLogger, metadataClient MetadataAPI, stsClient stsiface.STSAPI, ec2Client ec2iface.EC2API) *SDKAccountDriver {
	return &SDKAccountDriver{
		metadataClient: metadataClient,
		stsClient:      stsClient,
		ec2Client:      ec2Client,
		logger:         logger.WithField("driver", "SDKAccountDriver"),
	}
}

// CallerAccount returns resources.ErrAccountUnresolved, wrapping both causes, when
// neither source answers
func (d *SDKAccountDriver) CallerAccount(ctx context.Context) (string, error) {
	account, metadataErr := d.accountFromInstanceProfile(ctx)
	if metadataErr == nil {
		d.logger.Printf("caller account %s from instance profile", account)
		return account, nil
	}

	d.logger.Printf("instance profile unavailable, asking STS: %s", metadataErr)
	identity, stsErr := d.stsClient.GetCallerIdentityWithContext(ctx, &sts.GetCallerIdentityInput{})
	if stsErr == nil && aws.StringValue(identity.Account) != "" {
		d.logger.Printf("caller account %s from STS", *identity.Account)
		return *identity.Account, nil
	}

	if stsErr == nil {
		stsErr = errors.New("no account in caller identity")
	}

	return "", fmt.Errorf("%w: instance metadata: %w; sts: %w", resources.ErrAccountUnresolved, metadataErr, stsErr)
}

func (d *SDKAccountDriver) accountFromInstanceProfile(ctx context.Context) (string, error) {
	info, err := d.metadataClient.IAMInfoWithContext(ctx)
	if err != nil {
		return "", err
	}

	// arn:aws:iam::<account>:instance-profile/<name>
	fields := strings.Split(info.InstanceProfileArn, ":")
	if len(fields) < 5 || fields[4] == "" {
		return "", fmt.Errorf("unexpected instance profile arn %q", info.InstanceProfileArn)
	}

	return fields[4], nil
}

// ImageOwner reads the owning account from the AMI's image location, which for shared
// images names the account that registered it
func (d *SDKAccountDriver) ImageOwner(ctx context.Context, amiID string) (string, error) {
	output, err := d.ec2Client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(amiID)},
	})
	if err != nil {
		return "", fmt.Errorf("describing image %s: %w", amiID, err)
	}

	if len(output.Images) == 0 {
		return "", fmt.Errorf("image %s not found", amiID)
	}

	image := output.Images[0]
	location := aws.StringValue(image.ImageLocation)
	if owner, _, _ := strings.Cut(location, "/"); owner != "" {
		return owner, nil
	}

	if owner := aws.StringValue(image.OwnerId); owner != "" {
		return owner, nil
	}

	return "", fmt.Errorf("no owner reported for image %s", amiID)
}
