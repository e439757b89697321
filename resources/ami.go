package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "context"

// AMI states reported by DescribeImages
const (
	AmiPendingState      = "pending"
	AmiAvailableState    = "available"
	AmiInvalidState      = "invalid"
	AmiDeregisteredState = "deregistered"
	AmiFailedState       = "failed"
	AmiErrorState        = "error"
)

// Name prefixes marking whether an AMI's snapshots are encrypted
const (
	EncryptedAmiPrefix   = "encrypted-"
	UnencryptedAmiPrefix = "unencrypted-"
)

// AmiDriver abstracts the API calls which produce a new AMI, either by copying an
// existing AMI or by imaging a stopped instance
//
//counterfeiter:generate . AmiDriver
type AmiDriver interface {
	Create(context.Context, AmiDriverConfig) (Ami, error)
}

// DeregisterAmiDriver removes an AMI which is no longer needed
//
//counterfeiter:generate . DeregisterAmiDriver
type DeregisterAmiDriver interface {
	Delete(context.Context, Ami) error
}

// Ami represents an AMI resource in EC2
type Ami struct {
	ID     string
	Region string
	Name   string
}

// AmiProperties describes what properties the produced AMI should have
type AmiProperties struct {
	Name        string
	Description string
	Encrypted   bool
	KmsKeyId    string
	Tags        map[string]string
}

// AmiDriverConfig allows an AmiDriver to create an AMI from either an existing AMI (copy)
// or a stopped instance
type AmiDriverConfig struct {
	ExistingAmiID string
	SourceRegion  string
	InstanceID    string
	AmiProperties
}
