package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ami-encrypter/config"
	"ami-encrypter/driver/reqinputs"
	"ami-encrypter/resources"
	"ami-encrypter/waiter"

	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/sirupsen/logrus"
)

var _ resources.AmiDriver = &SDKCopyAmiDriver{}

var amiFailureStates = []string{
	resources.AmiFailedState,
	resources.AmiInvalidState,
	resources.AmiDeregisteredState,
	resources.AmiErrorState,
}

// SDKCopyAmiDriver uses the AWS SDK to copy an existing AMI into the client's region
type SDKCopyAmiDriver struct {
	ec2Client ec2iface.EC2API
	region    string
	polling   config.Polling
	logger    *logrus.Entry
}

// NewCopyAmiDriver creates a SDKCopyAmiDriver for copying AMIs in EC2
func NewCopyAmiDriver(logger logrus.FieldLogger, ec2Client ec2iface.EC2API, region string, polling config.Polling) *SDKCopyAmiDriver {
	return &SDKCopyAmiDriver{
		ec2Client: ec2Client,
		region:    region,
		polling:   polling,
		logger:    logger.WithField("driver", "SDKCopyAmiDriver"),
	}
}

// Create copies the source AMI, optionally encrypting its snapshots, and waits for the
// copy to become available
func (d *SDKCopyAmiDriver) Create(ctx context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("copying AMI %s from %s as %s (encrypted: %t)", driverConfig.ExistingAmiID, driverConfig.SourceRegion, driverConfig.Name, driverConfig.Encrypted)
	output, err := d.ec2Client.CopyImageWithContext(ctx, reqinputs.NewCopyImageInput(driverConfig))
	if err != nil {
		return resources.Ami{}, fmt.Errorf("copying AMI %s: %w", driverConfig.ExistingAmiID, err)
	}

	amiIDptr := output.ImageId
	if amiIDptr == nil {
		return resources.Ami{}, errors.New("AMI id nil")
	}

	d.logger.Printf("copy of %s is %s", driverConfig.ExistingAmiID, *amiIDptr)

	err = tagResource(ctx, d.ec2Client, *amiIDptr, driverConfig.Tags)
	if err != nil {
		return resources.Ami{}, err
	}

	waitStartTime := time.Now()
	err = waitForImage(ctx, d.ec2Client, *amiIDptr, d.polling, d.logger)
	if err != nil {
		return resources.Ami{}, fmt.Errorf("waiting for AMI %s to be available: %w", *amiIDptr, err)
	}

	d.logger.Printf("waited on AMI %s for %f minutes", *amiIDptr, time.Since(waitStartTime).Minutes())

	return resources.Ami{ID: *amiIDptr, Region: d.region, Name: driverConfig.Name}, nil
}

func waitForImage(ctx context.Context, ec2Client ec2iface.EC2API, amiID string, polling config.Polling, logger logrus.FieldLogger) error {
	_, err := waiter.WaitForStatus(ctx, imageStateFetcher(ec2Client), waiter.WaiterConfig{
		Resource:        resourceID(amiID),
		DesiredStatus:   resources.AmiAvailableState,
		FailureStatuses: amiFailureStates,
		PollInterval:    polling.ImageInterval,
		PollTimeout:     polling.ImageTimeout,
		PollRetries:     polling.Retries,
		Logger:          logger,
	})
	return err
}

func tagResource(ctx context.Context, ec2Client ec2iface.EC2API, id string, tags map[string]string) error {
	if len(tags) == 0 {
		return nil
	}

	_, err := ec2Client.CreateTagsWithContext(ctx, reqinputs.NewCreateTagsInput(id, tags))
	if err != nil {
		return fmt.Errorf("tagging %s: %w", id, err)
	}

	return nil
}
