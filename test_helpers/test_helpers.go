package test_helpers

import (
	"fmt"

	"ami-encrypter/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// AwsConfigFrom uses static keys when present, otherwise the environment and then the
// build agent's instance role
func AwsConfigFrom(configCredentials config.Credentials) *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvProvider{},
			&ec2rolecreds.EC2RoleProvider{
				Client: ec2metadata.New(session.Must(session.NewSession())),
			},
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}

// EC2Client builds a client for inspecting and cleaning up what a run created
func EC2Client(configCredentials config.Credentials) (ec2iface.EC2API, error) {
	awsSession, err := session.NewSession(AwsConfigFrom(configCredentials))
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return ec2.New(awsSession), nil
}

// DescribeImage returns the single image with the given id
func DescribeImage(ec2Client ec2iface.EC2API, amiID string) (*ec2.Image, error) {
	output, err := ec2Client.DescribeImages(&ec2.DescribeImagesInput{ImageIds: []*string{aws.String(amiID)}})
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", amiID, err)
	}
	if len(output.Images) != 1 {
		return nil, fmt.Errorf("expected one image for %s, found %d", amiID, len(output.Images))
	}
	return output.Images[0], nil
}

// DeleteImage deregisters the image and deletes the snapshots backing it
func DeleteImage(ec2Client ec2iface.EC2API, image *ec2.Image) error {
	_, err := ec2Client.DeregisterImage(&ec2.DeregisterImageInput{ImageId: image.ImageId})
	if err != nil {
		return fmt.Errorf("deregistering %s: %w", aws.StringValue(image.ImageId), err)
	}

	for _, mapping := range image.BlockDeviceMappings {
		if mapping.Ebs == nil || mapping.Ebs.SnapshotId == nil {
			continue
		}
		_, err = ec2Client.DeleteSnapshot(&ec2.DeleteSnapshotInput{SnapshotId: mapping.Ebs.SnapshotId})
		if err != nil {
			return fmt.Errorf("deleting snapshot %s: %w", aws.StringValue(mapping.Ebs.SnapshotId), err)
		}
	}

	return nil
}
