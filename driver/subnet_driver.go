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

var _ resources.SubnetDriver = &SDKSubnetDriver{}

type SDKSubnetDriver struct {
	ec2Client ec2iface.EC2API
	logger    *logrus.Entry
}

func NewSubnetDriver(logger logrus.FieldLogger, ec2Client ec2iface.EC2API) *SDKSubnetDriver {
	return &SDKSubnetDriver{
		ec2Client: ec2Client,
		logger:    logger.WithField("driver", "SDKSubnetDriver"),
	}
}

// Find lists the subnets whose Name tag matches nameTag. EC2 wildcards (* and ?) are allowed.
func (d *SDKSubnetDriver) Find(ctx context.Context, nameTag string) ([]resources.Subnet, error) {
	var subnets []resources.Subnet
	err := d.ec2Client.DescribeSubnetsPagesWithContext(ctx, &ec2.DescribeSubnetsInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []*string{aws.String(nameTag)},
			},
		},
	}, func(page *ec2.DescribeSubnetsOutput, lastPage bool) bool {
		for _, subnet := range page.Subnets {
			if subnet.SubnetId != nil {
				subnets = append(subnets, resources.Subnet{ID: *subnet.SubnetId})
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describing subnets tagged %s: %w", nameTag, err)
	}

	d.logger.Printf("found %d subnets tagged %s", len(subnets), nameTag)

	return subnets, nil
}
