package config_test

import (
	"bytes"
	"os"
	"time"

	"ami-encrypter/config"
	"ami-encrypter/resources"

	"github.com/aws/aws-sdk-go/aws/credentials"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
)

type viperModifier func(*viper.Viper)

func identityModifier(_ *viper.Viper) {}

func parseConfig(modify viperModifier) (config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set(config.SourceImageIDKey, "ami-52293031")
	v.Set(config.RegionKey, "ap-southeast-2")

	modify(v)
	return config.New(v)
}

func setEnv(key, value string) {
	previous, existed := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if existed {
			_ = os.Setenv(key, previous)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

var _ = Describe("Config", func() {
	Describe("New", func() {
		It("returns a Config, with name, os type, instance type and polling defaulted", func() {
			c, err := parseConfig(identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Name).To(MatchRegexp("AMI-.+"))
			Expect(c.Encrypted).To(BeTrue())
			Expect(c.OSType).To(Equal(config.LinuxOSType))
			Expect(c.InstanceType).To(Equal(resources.DefaultInstanceType))
			Expect(c.SourceRegion).To(Equal("ap-southeast-2"))
			Expect(c.Credentials.Region).To(Equal("ap-southeast-2"))
			Expect(c.OutputDir).To(Equal("."))
			Expect(c.Polling).To(Equal(config.Polling{
				InstanceInterval: 5 * time.Second,
				InstanceTimeout:  20 * time.Minute,
				ImageInterval:    10 * time.Second,
				ImageTimeout:     90 * time.Minute,
				Retries:          3,
			}))
		})

		It("sets the name if provided", func() {
			c, err := parseConfig(func(v *viper.Viper) {
				v.Set(config.NameKey, "jenkins")
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Name).To(Equal("jenkins"))
		})

		It("keeps an explicit source region", func() {
			c, err := parseConfig(func(v *viper.Viper) {
				v.Set(config.SourceRegionKey, "us-east-1")
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.SourceRegion).To(Equal("us-east-1"))
			Expect(c.Region).To(Equal("ap-southeast-2"))
		})

		Context("when reading the pipeline environment", func() {
			It("reads the region, subnets, timestamp, job name and recording flag", func() {
				setEnv("AWS_DEFAULT_REGION", "eu-west-1")
				setEnv("AWS_BACKEND_SUBNET_IDS", "subnet-aaaa, subnet-bbbb,,subnet-cccc")
				setEnv("DATE_TIME", "201701011200")
				setEnv("JOB_NAME", "bake-jenkins")
				setEnv("RECORD_FIXTURES", "/tmp/fixtures")

				v := viper.New()
				config.SetDefaults(v)
				v.Set(config.SourceImageIDKey, "ami-52293031")

				c, err := config.New(v)
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Region).To(Equal("eu-west-1"))
				Expect(c.SubnetIDs).To(Equal([]string{"subnet-aaaa", "subnet-bbbb", "subnet-cccc"}))
				Expect(c.DateTime).To(Equal("201701011200"))
				Expect(c.JobName).To(Equal("bake-jenkins"))
				Expect(c.RecordFixtures).To(Equal("/tmp/fixtures"))
			})
		})

		Context("when reading a config file", func() {
			It("reads instance tags and polling settings", func() {
				v := viper.New()
				config.SetDefaults(v)
				v.SetConfigType("yaml")
				Expect(v.ReadConfig(bytes.NewBufferString(`
source_image_id: ami-52293031
region: ap-southeast-2
instance_tags:
  CC: AP074
  StopHour: DoNotStop
polling:
  image_interval: 30s
  retries: 5
`))).To(Succeed())

				c, err := config.New(v)
				Expect(err).ToNot(HaveOccurred())
				Expect(c.InstanceTags).To(Equal(map[string]string{"cc": "AP074", "stophour": "DoNotStop"}))
				Expect(c.Polling.ImageInterval).To(Equal(30 * time.Second))
				Expect(c.Polling.InstanceInterval).To(Equal(5 * time.Second))
				Expect(c.Polling.Retries).To(Equal(5))
			})
		})

		Context("with invalid options specified", func() {
			It("returns an error when 'source_image_id' is missing", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.SourceImageIDKey, "")
				})
				Expect(err).To(MatchError("source_image_id must be specified"))
			})

			It("returns an error when 'source_image_id' is not an AMI id", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.SourceImageIDKey, "snap-1234")
				})
				Expect(err).To(MatchError("source_image_id must be an AMI id, got: snap-1234"))
			})

			It("returns an error when 'region' is missing", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.RegionKey, "")
				})
				Expect(err).To(MatchError("region must be specified (--region or $AWS_DEFAULT_REGION)"))
			})

			It("returns an error when 'os_type' is unknown", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.OSTypeKey, "plan9")
				})
				Expect(err).To(MatchError("os_type must be one of: ['linux', 'windows']"))
			})

			It("accepts 'os_type' regardless of case", func() {
				c, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.OSTypeKey, "Windows")
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.OSType).To(Equal(config.WindowsOSType))
			})

			It("returns an error when a kms key is given for an unencrypted copy", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.EncryptedKey, false)
					v.Set(config.KmsKeyIdKey, "alias/ami")
				})
				Expect(err).To(MatchError("kms_key_id can only be specified for encrypted copies"))
			})

			It("returns an error when a subnet id is malformed", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.SubnetIDKey, "vpc-1234")
				})
				Expect(err).To(MatchError("subnet_id must be a subnet id, got: vpc-1234"))
			})

			It("returns an error when only one half of the static credentials is set", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.AccessKeyKey, "access-key")
					v.Set(config.SecretKeyKey, "")
				})
				Expect(err).To(MatchError("access_key and secret_key must be specified together"))
			})

			It("returns an error when polling is disabled", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.ImagePollIntervalKey, 0)
				})
				Expect(err).To(MatchError("polling intervals must be positive"))
			})

			DescribeTable("returns an error when polling tolerates no fetch errors",
				func(retries int) {
					_, err := parseConfig(func(v *viper.Viper) {
						v.Set(config.PollRetriesKey, retries)
					})
					Expect(err).To(MatchError("polling retries must be at least 1"))
				},
				Entry("zero", 0),
				Entry("negative", -1),
			)

			It("uses the shared default instance type when 'instance_type' is blank", func() {
				c, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.InstanceTypeKey, "")
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.InstanceType).To(Equal(resources.DefaultInstanceType))
			})

			It("reports every problem at once", func() {
				_, err := parseConfig(func(v *viper.Viper) {
					v.Set(config.SourceImageIDKey, "")
					v.Set(config.RegionKey, "")
					v.Set(config.OSTypeKey, "plan9")
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(HavePrefix("encountered 3 errors:"))
				Expect(err.Error()).To(ContainSubstring("source_image_id must be specified"))
				Expect(err.Error()).To(ContainSubstring("region must be specified"))
				Expect(err.Error()).To(ContainSubstring("os_type must be one of"))
			})
		})
	})

	Describe("GetAwsConfig", func() {
		It("uses static credentials when keys are provided", func() {
			creds := config.Credentials{AccessKey: "access-key", SecretKey: "secret-key", Region: "ap-southeast-2"}
			awsConfig := creds.GetAwsConfig()
			Expect(*awsConfig.Region).To(Equal("ap-southeast-2"))

			value, err := awsConfig.Credentials.Get()
			Expect(err).ToNot(HaveOccurred())
			Expect(value.AccessKeyID).To(Equal("access-key"))
			Expect(value.SecretAccessKey).To(Equal("secret-key"))
			Expect(value.ProviderName).To(Equal(credentials.StaticProviderName))
		})

		It("leaves credentials to the default chain when nothing is configured", func() {
			creds := config.Credentials{Region: "ap-southeast-2"}
			awsConfig := creds.GetAwsConfig()
			Expect(awsConfig.Credentials).To(BeNil())
		})
	})
})
