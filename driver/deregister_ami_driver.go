package driver

import (
	"context"
	"fmt"

	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/sirupsen/logrus"
)

var _ resources.DeregisterAmiDriver = &SDKDeregisterAmiDriver{}

type SDKDeregisterAmiDriver struct {
	ec2Client ec2iface.EC2API
	logger    *logrus.Entry
}

func NewDeregisterAmiDriver(logger logrus.FieldLogger, ec2Client ec2iface.EC2API) *SDKDeregisterAmiDriver {
	return &SDKDeregisterAmiDriver{
		ec2Client: ec2Client,
		logger:    logger.WithField("driver", "SDKDeregisterAmiDriver"),
	}
}

// Delete deregisters the AMI. Its snapshots are left in place.
func (d *SDKDeregisterAmiDriver) Delete(ctx context.Context, ami resources.Ami) error {
	d.logger.Printf("deregistering AMI %s", ami.ID)
	_, err := d.ec2Client.DeregisterImageWithContext(ctx, &ec2.DeregisterImageInput{
		ImageId: aws.String(ami.ID),
	})
	if err != nil {
		return fmt.Errorf("deregistering AMI %s: %w", ami.ID, err)
	}

	return nil
}
