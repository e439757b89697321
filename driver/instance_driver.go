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

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/sirupsen/logrus"
)

var _ resources.InstanceDriver = &SDKInstanceDriver{}

// SDKInstanceDriver launches, stops and terminates the temporary instance used to image
// an AMI owned by another account
type SDKInstanceDriver struct {
	ec2Client ec2iface.EC2API
	polling   config.Polling
	logger    *logrus.Entry
}

func NewInstanceDriver(logger logrus.FieldLogger, ec2Client ec2iface.EC2API, polling config.Polling) *SDKInstanceDriver {
	return &SDKInstanceDriver{
		ec2Client: ec2Client,
		polling:   polling,
		logger:    logger.WithField("driver", "SDKInstanceDriver"),
	}
}

// Create launches a single instance, tags it and waits until it is running with passing
// status checks
func (d *SDKInstanceDriver) Create(ctx context.Context, driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("launching instance from AMI %s in subnet %q", driverConfig.AmiID, driverConfig.SubnetID)
	reservation, err := d.ec2Client.RunInstancesWithContext(ctx, reqinputs.NewRunInstancesInput(driverConfig))
	if err != nil {
		return resources.Instance{}, fmt.Errorf("launching instance from AMI %s: %w", driverConfig.AmiID, err)
	}

	if len(reservation.Instances) == 0 || reservation.Instances[0].InstanceId == nil {
		return resources.Instance{}, errors.New("instance id nil")
	}

	instance := resources.Instance{
		ID:       *reservation.Instances[0].InstanceId,
		State:    resources.InstancePendingState,
		SubnetID: aws.StringValue(reservation.Instances[0].SubnetId),
	}
	d.logger.Printf("launched instance %s", instance.ID)

	err = tagResource(ctx, d.ec2Client, instance.ID, driverConfig.Tags)
	if err != nil {
		return instance, err
	}

	err = d.waitForState(ctx, instance, resources.InstanceRunningState,
		resources.InstanceShuttingDownState, resources.InstanceTerminatedState)
	if err != nil {
		return instance, fmt.Errorf("waiting for instance %s to be running: %w", instance.ID, err)
	}
	instance.State = resources.InstanceRunningState

	_, err = waiter.WaitForStatus(ctx, instanceHealthFetcher(d.ec2Client), d.waiterConfig(instance, resources.InstanceHealthyStatus))
	if err != nil {
		return instance, fmt.Errorf("waiting for instance %s to pass status checks: %w", instance.ID, err)
	}

	d.logger.Printf("instance %s is healthy", instance.ID)

	return instance, nil
}

// Stop stops the instance and waits until it is stopped
func (d *SDKInstanceDriver) Stop(ctx context.Context, instance resources.Instance) error {
	stopStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Stop() in %f minutes", time.Since(startTime).Minutes())
	}(stopStartTime)

	d.logger.Printf("stopping instance %s", instance.ID)
	_, err := d.ec2Client.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		InstanceIds: []*string{aws.String(instance.ID)},
	})
	if err != nil {
		return fmt.Errorf("stopping instance %s: %w", instance.ID, err)
	}

	err = d.waitForState(ctx, instance, resources.InstanceStoppedState,
		resources.InstanceShuttingDownState, resources.InstanceTerminatedState)
	if err != nil {
		return fmt.Errorf("waiting for instance %s to be stopped: %w", instance.ID, err)
	}

	return nil
}

// Delete terminates the instance and waits until it is gone
func (d *SDKInstanceDriver) Delete(ctx context.Context, instance resources.Instance) error {
	deleteStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Delete() in %f minutes", time.Since(startTime).Minutes())
	}(deleteStartTime)

	d.logger.Printf("terminating instance %s", instance.ID)
	_, err := d.ec2Client.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instance.ID)},
	})
	if err != nil {
		return fmt.Errorf("terminating instance %s: %w", instance.ID, err)
	}

	err = d.waitForState(ctx, instance, resources.InstanceTerminatedState)
	if err != nil {
		return fmt.Errorf("waiting for instance %s to be terminated: %w", instance.ID, err)
	}

	return nil
}

func (d *SDKInstanceDriver) waitForState(ctx context.Context, instance resources.Instance, desired string, failures ...string) error {
	c := d.waiterConfig(instance, desired)
	c.FailureStatuses = failures

	_, err := waiter.WaitForStatus(ctx, instanceStateFetcher(d.ec2Client), c)
	return err
}

func (d *SDKInstanceDriver) waiterConfig(instance resources.Instance, desired string) waiter.WaiterConfig {
	return waiter.WaiterConfig{
		Resource:      resourceID(instance.ID),
		DesiredStatus: desired,
		PollInterval:  d.polling.InstanceInterval,
		PollTimeout:   d.polling.InstanceTimeout,
		PollRetries:   d.polling.Retries,
		Logger:        d.logger,
	}
}
