package reqinputs

import (
	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// NewCopyImageInput builds the input to copy an existing AMI into the client's region.
// The KMS key is only sent along with an encrypted copy.
func NewCopyImageInput(driverConfig resources.AmiDriverConfig) *ec2.CopyImageInput {
	input := &ec2.CopyImageInput{
		Name:          aws.String(driverConfig.Name),
		SourceImageId: aws.String(driverConfig.ExistingAmiID),
		SourceRegion:  aws.String(driverConfig.SourceRegion),
		Encrypted:     aws.Bool(driverConfig.Encrypted),
	}

	if driverConfig.Description != "" {
		input.Description = aws.String(driverConfig.Description)
	}

	if driverConfig.Encrypted && driverConfig.KmsKeyId != "" {
		input.KmsKeyId = aws.String(driverConfig.KmsKeyId)
	}

	return input
}

// NewCreateImageInput builds the input to image a stopped instance
func NewCreateImageInput(driverConfig resources.AmiDriverConfig) *ec2.CreateImageInput {
	input := &ec2.CreateImageInput{
		InstanceId: aws.String(driverConfig.InstanceID),
		Name:       aws.String(driverConfig.Name),
	}

	if driverConfig.Description != "" {
		input.Description = aws.String(driverConfig.Description)
	}

	return input
}
