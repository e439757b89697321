package resources

import "context"

// Instance states reported by DescribeInstances
const (
	InstancePendingState      = "pending"
	InstanceRunningState      = "running"
	InstanceShuttingDownState = "shutting-down"
	InstanceTerminatedState   = "terminated"
	InstanceStoppingState     = "stopping"
	InstanceStoppedState      = "stopped"
)

// InstanceHealthyStatus is reported once both system and instance status checks pass
const InstanceHealthyStatus = "ok"

// DefaultInstanceType is used to boot the temporary source instance
const DefaultInstanceType = "c4.2xlarge"

// InstanceDriver drives the lifecycle of the temporary instance booted from a source AMI
// owned by another account
//
//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Create(context.Context, InstanceDriverConfig) (Instance, error)
	Stop(context.Context, Instance) error
	Delete(context.Context, Instance) error
}

// Instance represents an EC2 instance
type Instance struct {
	ID       string
	State    string
	SubnetID string
}

// InstanceDriverConfig describes the instance to launch. UserData is the rendered,
// not yet encoded, boot script.
type InstanceDriverConfig struct {
	AmiID              string
	InstanceType       string
	SubnetID           string
	IamInstanceProfile string
	UserData           string
	Tags               map[string]string
}
