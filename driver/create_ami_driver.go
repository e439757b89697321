package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ami-encrypter/config"
	"ami-encrypter/driver/reqinputs"
	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/sirupsen/logrus"
)

var _ resources.AmiDriver = &SDKCreateAmiDriver{}

// SDKCreateAmiDriver uses the AWS SDK to image a stopped instance
type SDKCreateAmiDriver struct {
	ec2Client ec2iface.EC2API
	region    string
	polling   config.Polling
	logger    *logrus.Entry
}

// NewCreateAmiDriver creates a SDKCreateAmiDriver for creating AMIs from instances in EC2
func NewCreateAmiDriver(logger logrus.FieldLogger, ec2Client ec2iface.EC2API, region string, polling config.Polling) *SDKCreateAmiDriver {
	return &SDKCreateAmiDriver{
		ec2Client: ec2Client,
		region:    region,
		polling:   polling,
		logger:    logger.WithField("driver", "SDKCreateAmiDriver"),
	}
}

// Create registers an AMI from the instance in driverConfig and waits for it to become available
func (d *SDKCreateAmiDriver) Create(ctx context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("creating AMI %s from instance %s", driverConfig.Name, driverConfig.InstanceID)
	output, err := d.ec2Client.CreateImageWithContext(ctx, reqinputs.NewCreateImageInput(driverConfig))
	if err != nil {
		return resources.Ami{}, fmt.Errorf("creating AMI from instance %s: %w", driverConfig.InstanceID, err)
	}

	amiIDptr := output.ImageId
	if amiIDptr == nil {
		return resources.Ami{}, errors.New("AMI id nil")
	}

	d.logger.Printf("created AMI %s", *amiIDptr)

	err = tagResource(ctx, d.ec2Client, *amiIDptr, driverConfig.Tags)
	if err != nil {
		return resources.Ami{}, err
	}

	err = waitForImage(ctx, d.ec2Client, *amiIDptr, d.polling, d.logger)
	if err != nil {
		return resources.Ami{}, fmt.Errorf("waiting for AMI %s to be available: %w", *amiIDptr, err)
	}

	return resources.Ami{ID: *amiIDptr, Region: d.region, Name: driverConfig.Name}, nil
}
