package driver

import (
	"context"
	"fmt"

	"ami-encrypter/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

type resourceID string

func (r resourceID) ID() string {
	return string(r)
}

type describedStatus string

func (s describedStatus) Status() string {
	return string(s)
}

func imageStateFetcher(ec2Client ec2iface.EC2API) waiter.StatusFetcher {
	return func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		output, err := ec2Client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
			ImageIds: []*string{aws.String(resource.ID())},
		})
		if err != nil {
			return nil, fmt.Errorf("describing image %s: %w", resource.ID(), err)
		}

		if len(output.Images) == 0 || output.Images[0].State == nil {
			return nil, fmt.Errorf("image %s not found", resource.ID())
		}

		return describedStatus(*output.Images[0].State), nil
	}
}

func instanceStateFetcher(ec2Client ec2iface.EC2API) waiter.StatusFetcher {
	return func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		output, err := ec2Client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
			InstanceIds: []*string{aws.String(resource.ID())},
		})
		if err != nil {
			return nil, fmt.Errorf("describing instance %s: %w", resource.ID(), err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				if instance.State != nil && instance.State.Name != nil {
					return describedStatus(*instance.State.Name), nil
				}
			}
		}

		return nil, fmt.Errorf("instance %s not found", resource.ID())
	}
}

// instanceHealthFetcher reports "ok" once both the system and the instance status checks
// pass, otherwise "<instance status>/<system status>"
func instanceHealthFetcher(ec2Client ec2iface.EC2API) waiter.StatusFetcher {
	return func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		output, err := ec2Client.DescribeInstanceStatusWithContext(ctx, &ec2.DescribeInstanceStatusInput{
			InstanceIds:         []*string{aws.String(resource.ID())},
			IncludeAllInstances: aws.Bool(true),
		})
		if err != nil {
			return nil, fmt.Errorf("describing status of instance %s: %w", resource.ID(), err)
		}

		if len(output.InstanceStatuses) == 0 {
			return nil, fmt.Errorf("no status reported for instance %s", resource.ID())
		}

		status := output.InstanceStatuses[0]
		instanceStatus := summaryStatus(status.InstanceStatus)
		systemStatus := summaryStatus(status.SystemStatus)
		if instanceStatus == ec2.SummaryStatusOk && systemStatus == ec2.SummaryStatusOk {
			return describedStatus(ec2.SummaryStatusOk), nil
		}

		return describedStatus(fmt.Sprintf("%s/%s", instanceStatus, systemStatus)), nil
	}
}

func summaryStatus(summary *ec2.InstanceStatusSummary) string {
	if summary == nil || summary.Status == nil {
		return "unknown"
	}
	return *summary.Status
}
