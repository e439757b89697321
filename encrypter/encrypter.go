package encrypter

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ami-encrypter/config"
	"ami-encrypter/driverset"
	"ami-encrypter/recorder"
	"ami-encrypter/resources"
	"ami-encrypter/userdata"

	"github.com/sirupsen/logrus"
)

// Paths through the workflow, decided by who owns the source AMI
const (
	SameAccountPath  = "same-account"
	CrossAccountPath = "cross-account"
)

type Result struct {
	Path              string
	SourceAmiID       string
	IntermediateAmiID string
	InstanceID        string
	KmsKeyARN         string
	Ami               resources.Ami
	ResultPath        string
	ResultURL         string
}

type Option func(*Encrypter)

// WithSubnetPicker replaces the uniform random choice among candidate subnets
func WithSubnetPicker(pick func(n int) int) Option {
	return func(e *Encrypter) {
		e.pickSubnet = pick
	}
}

type Encrypter struct {
	config     config.Config
	pickSubnet func(n int) int
	logger     *logrus.Entry
}

func New(logger logrus.FieldLogger, c config.Config, opts ...Option) *Encrypter {
	e := &Encrypter{
		config:     c,
		pickSubnet: rand.Intn,
		logger:     logger.WithField("component", "Encrypter"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encrypt produces the encrypted copy of the source AMI and records its id. AMIs owned by
// the caller are copied directly, anything else is imaged through a temporary instance
// first since EC2 refuses encrypted copies of images shared from other accounts.
func (e *Encrypter) Encrypt(ctx context.Context, ds driverset.EncryptionDriverSet) (Result, error) {
	encryptStartTime := time.Now()
	defer func(startTime time.Time) {
		e.logger.Printf("completed Encrypt() in %f minutes", time.Since(startTime).Minutes())
	}(encryptStartTime)

	result := Result{SourceAmiID: e.config.SourceImageID}

	sameAccount, err := e.ownedByCaller(ctx, ds.AccountDriver())
	if err != nil {
		return result, err
	}

	var kmsKey resources.KmsKey
	if e.config.Encrypted {
		kmsKey, err = ds.KmsDriver().ResolveKey(ctx, resources.KmsResolveKeyDriverConfig{
			KmsKeyId: e.config.KmsKeyId,
			Region:   e.config.Region,
		})
		if err != nil {
			return result, fmt.Errorf("resolving kms key: %w", err)
		}
		result.KmsKeyARN = kmsKey.ARN
	}

	copyDriverConfig := resources.AmiDriverConfig{
		ExistingAmiID: e.config.SourceImageID,
		SourceRegion:  e.config.SourceRegion,
		AmiProperties: resources.AmiProperties{
			Name:        ImageName(e.config.Name, e.config.DateTime, e.config.Encrypted),
			Description: e.config.Description,
			Encrypted:   e.config.Encrypted,
			KmsKeyId:    kmsKey.ARN,
			Tags:        e.config.InstanceTags,
		},
	}

	var intermediateAmi resources.Ami
	if sameAccount {
		result.Path = SameAccountPath
	} else {
		result.Path = CrossAccountPath

		var instance resources.Instance
		intermediateAmi, instance, err = e.imageThroughInstance(ctx, ds)
		result.InstanceID = instance.ID
		if err != nil {
			return result, err
		}
		result.IntermediateAmiID = intermediateAmi.ID

		copyDriverConfig.ExistingAmiID = intermediateAmi.ID
	}

	ami, err := ds.CopyAmiDriver().Create(ctx, copyDriverConfig)
	if err != nil {
		if result.IntermediateAmiID != "" {
			e.logger.Printf("leaving intermediate AMI %s in place", result.IntermediateAmiID)
		}
		return result, fmt.Errorf("copying %s: %w", copyDriverConfig.ExistingAmiID, err)
	}
	result.Ami = ami

	if !sameAccount {
		err = ds.DeregisterAmiDriver().Delete(ctx, intermediateAmi)
		if err != nil {
			return result, fmt.Errorf("deregistering intermediate AMI: %w", err)
		}
	}

	recorded, err := recorder.New(e.logger, recorder.Config{
		OutputDir:    e.config.OutputDir,
		JobName:      e.config.JobName,
		ResultBucket: e.config.ResultBucket,
		ResultPrefix: e.config.ResultPrefix,
	}, ds.ResultUploadDriver()).Record(ctx, ami)
	result.ResultPath = recorded.Path
	result.ResultURL = recorded.URL
	if err != nil {
		return result, fmt.Errorf("recording result: %w", err)
	}

	return result, nil
}

func (e *Encrypter) ownedByCaller(ctx context.Context, accountDriver resources.AccountDriver) (bool, error) {
	caller := e.config.AccountID
	if caller == "" {
		var err error
		caller, err = accountDriver.CallerAccount(ctx)
		if err != nil {
			return false, err
		}
	}

	owner, err := accountDriver.ImageOwner(ctx, e.config.SourceImageID)
	if err != nil {
		return false, fmt.Errorf("finding owner of %s: %w", e.config.SourceImageID, err)
	}

	e.logger.Printf("caller account %s, %s owned by %s", caller, e.config.SourceImageID, owner)

	return caller == owner, nil
}

// imageThroughInstance boots the source AMI, stops it and images it into an unencrypted
// AMI owned by the caller. The instance is terminated once imaged.
func (e *Encrypter) imageThroughInstance(ctx context.Context, ds driverset.EncryptionDriverSet) (resources.Ami, resources.Instance, error) {
	subnetID, err := e.chooseSubnet(ctx, ds.SubnetDriver())
	if err != nil {
		return resources.Ami{}, resources.Instance{}, err
	}

	script, err := userdata.Render(e.config.OSType, userdata.Data{ImageName: e.config.Name})
	if err != nil {
		return resources.Ami{}, resources.Instance{}, err
	}

	tags := map[string]string{}
	for key, value := range e.config.InstanceTags {
		tags[key] = value
	}
	tags["Name"] = InstanceName(e.config.Name)

	instanceDriver := ds.InstanceDriver()
	instance, err := instanceDriver.Create(ctx, resources.InstanceDriverConfig{
		AmiID:              e.config.SourceImageID,
		InstanceType:       e.config.InstanceType,
		SubnetID:           subnetID,
		IamInstanceProfile: e.config.IamInstanceProfile,
		UserData:           script,
		Tags:               tags,
	})
	if err != nil {
		return resources.Ami{}, instance, fmt.Errorf("launching instance: %w", err)
	}

	err = instanceDriver.Stop(ctx, instance)
	if err != nil {
		return resources.Ami{}, instance, fmt.Errorf("stopping instance %s: %w", instance.ID, err)
	}

	intermediateAmi, err := ds.CreateAmiDriver().Create(ctx, resources.AmiDriverConfig{
		InstanceID: instance.ID,
		AmiProperties: resources.AmiProperties{
			Name:        ImageName(e.config.Name, e.config.DateTime, false),
			Description: e.config.Description,
			Tags:        e.config.InstanceTags,
		},
	})
	if err != nil {
		return resources.Ami{}, instance, fmt.Errorf("imaging instance %s: %w", instance.ID, err)
	}

	err = instanceDriver.Delete(ctx, instance)
	if err != nil {
		return intermediateAmi, instance, fmt.Errorf("terminating instance %s: %w", instance.ID, err)
	}

	return intermediateAmi, instance, nil
}

func (e *Encrypter) chooseSubnet(ctx context.Context, subnetDriver resources.SubnetDriver) (string, error) {
	if e.config.SubnetID != "" {
		return e.config.SubnetID, nil
	}

	candidates := e.config.SubnetIDs
	if len(candidates) == 0 && e.config.SubnetTag != "" {
		subnets, err := subnetDriver.Find(ctx, e.config.SubnetTag)
		if err != nil {
			return "", fmt.Errorf("finding subnets: %w", err)
		}
		if len(subnets) == 0 {
			return "", fmt.Errorf("no subnets tagged %s", e.config.SubnetTag)
		}
		for _, subnet := range subnets {
			candidates = append(candidates, subnet.ID)
		}
	}

	if len(candidates) == 0 {
		return "", nil
	}

	subnetID := candidates[e.pickSubnet(len(candidates))]
	e.logger.Printf("chose subnet %s out of %d", subnetID, len(candidates))

	return subnetID, nil
}
