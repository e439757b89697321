package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ami-encrypter/collection"
	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/viper"
)

const (
	LinuxOSType   = "linux"
	WindowsOSType = "windows"
)

// Keys shared by the command line flags, the environment and the optional config file
const (
	SourceImageIDKey      = "source_image_id"
	NameKey               = "name"
	DescriptionKey        = "description"
	RegionKey             = "region"
	SourceRegionKey       = "source_region"
	EncryptedKey          = "encrypted"
	KmsKeyIdKey           = "kms_key_id"
	OSTypeKey             = "os_type"
	IamInstanceProfileKey = "iam_instance_profile"
	SubnetIDKey           = "subnet_id"
	SubnetIDsKey          = "subnet_ids"
	SubnetTagKey          = "subnet_tag"
	InstanceTypeKey       = "instance_type"
	InstanceTagsKey       = "instance_tags"
	AccountIDKey          = "account_id"
	DateTimeKey           = "date_time"
	JobNameKey            = "job_name"
	OutputDirKey          = "output_dir"
	ResultBucketKey       = "result_bucket"
	ResultPrefixKey       = "result_prefix"
	RecordFixturesKey     = "record_fixtures"
	DebugKey              = "debug"

	AccessKeyKey = "credentials.access_key"
	SecretKeyKey = "credentials.secret_key"
	RoleArnKey   = "credentials.role_arn"

	InstancePollIntervalKey = "polling.instance_interval"
	InstancePollTimeoutKey  = "polling.instance_timeout"
	ImagePollIntervalKey    = "polling.image_interval"
	ImagePollTimeoutKey     = "polling.image_timeout"
	PollRetriesKey          = "polling.retries"
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Config struct {
	SourceImageID string
	Region        string

	Name         string
	SourceRegion string
	Encrypted    bool
	OSType       string
	InstanceType string
	OutputDir    string
	Polling      Polling

	Description        string
	KmsKeyId           string
	IamInstanceProfile string
	SubnetID           string
	SubnetIDs          []string
	SubnetTag          string
	InstanceTags       map[string]string
	AccountID          string
	DateTime           string
	JobName            string
	ResultBucket       string
	ResultPrefix       string
	RecordFixtures     string
	Debug              bool

	Credentials Credentials
}

type Polling struct {
	InstanceInterval time.Duration
	InstanceTimeout  time.Duration
	ImageInterval    time.Duration
	ImageTimeout     time.Duration
	Retries          int
}

type Credentials struct {
	AccessKey string
	SecretKey string
	RoleArn   string
	Region    string
}

// SetDefaults registers the defaulted values and binds the environment variables the
// build pipeline provides
func SetDefaults(v *viper.Viper) {
	v.SetDefault(EncryptedKey, true)
	v.SetDefault(OSTypeKey, LinuxOSType)
	v.SetDefault(InstanceTypeKey, resources.DefaultInstanceType)
	v.SetDefault(OutputDirKey, ".")
	v.SetDefault(InstancePollIntervalKey, 5*time.Second)
	v.SetDefault(InstancePollTimeoutKey, 20*time.Minute)
	v.SetDefault(ImagePollIntervalKey, 10*time.Second)
	v.SetDefault(ImagePollTimeoutKey, 90*time.Minute)
	v.SetDefault(PollRetriesKey, 3)

	_ = v.BindEnv(RegionKey, "AWS_DEFAULT_REGION", "AWS_REGION")
	_ = v.BindEnv(SubnetIDsKey, "AWS_BACKEND_SUBNET_IDS")
	_ = v.BindEnv(SubnetTagKey, "AWS_BACKEND_SUBNET_TAG")
	_ = v.BindEnv(DateTimeKey, "DATE_TIME")
	_ = v.BindEnv(JobNameKey, "JOB_NAME")
	_ = v.BindEnv(RecordFixturesKey, "RECORD_FIXTURES")
	_ = v.BindEnv(AccessKeyKey, "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv(SecretKeyKey, "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv(RoleArnKey, "AWS_ROLE_ARN")
}

// New builds the Config once from everything bound to v and validates it
func New(v *viper.Viper) (Config, error) {
	c := Config{
		SourceImageID:      strings.TrimSpace(v.GetString(SourceImageIDKey)),
		Name:               strings.TrimSpace(v.GetString(NameKey)),
		Description:        v.GetString(DescriptionKey),
		Region:             v.GetString(RegionKey),
		SourceRegion:       v.GetString(SourceRegionKey),
		Encrypted:          v.GetBool(EncryptedKey),
		KmsKeyId:           v.GetString(KmsKeyIdKey),
		OSType:             strings.ToLower(v.GetString(OSTypeKey)),
		IamInstanceProfile: v.GetString(IamInstanceProfileKey),
		SubnetID:           v.GetString(SubnetIDKey),
		SubnetIDs:          stringList(v.GetStringSlice(SubnetIDsKey)),
		SubnetTag:          v.GetString(SubnetTagKey),
		InstanceType:       v.GetString(InstanceTypeKey),
		InstanceTags:       v.GetStringMapString(InstanceTagsKey),
		AccountID:          v.GetString(AccountIDKey),
		DateTime:           v.GetString(DateTimeKey),
		JobName:            v.GetString(JobNameKey),
		OutputDir:          v.GetString(OutputDirKey),
		ResultBucket:       v.GetString(ResultBucketKey),
		ResultPrefix:       v.GetString(ResultPrefixKey),
		RecordFixtures:     v.GetString(RecordFixturesKey),
		Debug:              v.GetBool(DebugKey),
		Polling: Polling{
			InstanceInterval: v.GetDuration(InstancePollIntervalKey),
			InstanceTimeout:  v.GetDuration(InstancePollTimeoutKey),
			ImageInterval:    v.GetDuration(ImagePollIntervalKey),
			ImageTimeout:     v.GetDuration(ImagePollTimeoutKey),
			Retries:          v.GetInt(PollRetriesKey),
		},
		Credentials: Credentials{
			AccessKey: v.GetString(AccessKeyKey),
			SecretKey: v.GetString(SecretKeyKey),
			RoleArn:   v.GetString(RoleArnKey),
		},
	}

	if c.Name == "" {
		c.Name = fmt.Sprintf("AMI-%s", uuid.NewV4().String())
	}

	if c.SourceRegion == "" {
		c.SourceRegion = c.Region
	}

	if c.InstanceType == "" {
		c.InstanceType = resources.DefaultInstanceType
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	c.Credentials.Region = c.Region

	err := c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) validate() error {
	errs := &collection.Error{}

	if c.SourceImageID == "" {
		errs.Add(errors.New("source_image_id must be specified"))
	} else if !strings.HasPrefix(c.SourceImageID, "ami-") {
		errs.Addf("source_image_id must be an AMI id, got: %s", c.SourceImageID)
	}

	if c.Region == "" {
		errs.Add(errors.New("region must be specified (--region or $AWS_DEFAULT_REGION)"))
	}

	validOSTypes := map[string]bool{
		LinuxOSType:   true,
		WindowsOSType: true,
	}
	if !validOSTypes[c.OSType] {
		errs.Add(errors.New("os_type must be one of: ['linux', 'windows']"))
	}

	if c.KmsKeyId != "" && !c.Encrypted {
		errs.Add(errors.New("kms_key_id can only be specified for encrypted copies"))
	}

	if c.SubnetID != "" && !strings.HasPrefix(c.SubnetID, "subnet-") {
		errs.Addf("subnet_id must be a subnet id, got: %s", c.SubnetID)
	}

	for _, subnetID := range c.SubnetIDs {
		if !strings.HasPrefix(subnetID, "subnet-") {
			errs.Addf("subnet_ids entries must be subnet ids, got: %s", subnetID)
		}
	}

	if (c.Credentials.AccessKey == "") != (c.Credentials.SecretKey == "") {
		errs.Add(errors.New("access_key and secret_key must be specified together"))
	}

	if c.ResultPrefix != "" && c.ResultBucket == "" {
		errs.Add(errors.New("result_prefix requires result_bucket"))
	}

	if c.Polling.InstanceInterval <= 0 || c.Polling.ImageInterval <= 0 {
		errs.Add(errors.New("polling intervals must be positive"))
	}

	if c.Polling.InstanceTimeout <= 0 || c.Polling.ImageTimeout <= 0 {
		errs.Add(errors.New("polling timeouts must be positive"))
	}

	if c.Polling.Retries < 1 {
		errs.Add(errors.New("polling retries must be at least 1"))
	}

	return errs.Error()
}

func stringList(values []string) []string {
	var list []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}

// GetAwsConfig prefers static keys (optionally assuming a role with them), then an
// assumed role on top of the default chain, then the default chain itself
func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	awsConfig := aws.NewConfig().WithRegion(configCredentials.Region)

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials := credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}

		return awsConfig.WithCredentials(awsCredentials)
	}

	if configCredentials.RoleArn != "" {
		defaultChainConfig := aws.NewConfig().WithRegion(configCredentials.Region)
		return awsConfig.WithCredentials(stscreds.NewCredentials(
			session.Must(session.NewSession(defaultChainConfig)),
			configCredentials.RoleArn,
		))
	}

	return awsConfig
}
