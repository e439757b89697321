package reqinputs

import (
	"encoding/base64"
	"sort"

	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// NewRunInstancesInput builds the input to launch exactly one instance. User data is
// base64 encoded as RunInstances requires.
func NewRunInstancesInput(driverConfig resources.InstanceDriverConfig) *ec2.RunInstancesInput {
	instanceType := driverConfig.InstanceType
	if instanceType == "" {
		instanceType = resources.DefaultInstanceType
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(driverConfig.AmiID),
		InstanceType: aws.String(instanceType),
		MinCount:     aws.Int64(1),
		MaxCount:     aws.Int64(1),
	}

	if driverConfig.SubnetID != "" {
		input.SubnetId = aws.String(driverConfig.SubnetID)
	}

	if driverConfig.IamInstanceProfile != "" {
		input.IamInstanceProfile = &ec2.IamInstanceProfileSpecification{
			Name: aws.String(driverConfig.IamInstanceProfile),
		}
	}

	if driverConfig.UserData != "" {
		input.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(driverConfig.UserData)))
	}

	return input
}

// NewCreateTagsInput builds the input to tag a single resource, with tags in key order
func NewCreateTagsInput(resourceID string, tags map[string]string) *ec2.CreateTagsInput {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ec2Tags := make([]*ec2.Tag, 0, len(keys))
	for _, key := range keys {
		ec2Tags = append(ec2Tags, &ec2.Tag{Key: aws.String(key), Value: aws.String(tags[key])})
	}

	return &ec2.CreateTagsInput{
		Resources: []*string{aws.String(resourceID)},
		Tags:      ec2Tags,
	}
}
