package encrypter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"ami-encrypter/config"
	"ami-encrypter/driverset/driversetfakes"
	"ami-encrypter/encrypter"
	"ami-encrypter/resources"
	"ami-encrypter/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Encrypter", func() {
	const (
		sourceAmiID       = "ami-52293031"
		callerAccount     = "123456781234"
		otherAccount      = "999999999999"
		encryptedAmiID    = "ami-2939214a"
		intermediateAmiID = "ami-11112222"
		instanceID        = "i-0123456789"
		kmsKeyARN         = "arn:aws:kms:ap-southeast-2:123456781234:key/1234abcd"
	)

	var (
		c      config.Config
		logger *logrus.Logger
		calls  []string

		fakeDs               *driversetfakes.FakeEncryptionDriverSet
		fakeAccountDriver    *resourcesfakes.FakeAccountDriver
		fakeKmsDriver        *resourcesfakes.FakeKmsDriver
		fakeCopyAmiDriver    *resourcesfakes.FakeAmiDriver
		fakeCreateAmiDriver  *resourcesfakes.FakeAmiDriver
		fakeDeregisterDriver *resourcesfakes.FakeDeregisterAmiDriver
		fakeInstanceDriver   *resourcesfakes.FakeInstanceDriver
		fakeSubnetDriver     *resourcesfakes.FakeSubnetDriver
		fakeUploadDriver     *resourcesfakes.FakeResultUploadDriver
	)

	BeforeEach(func() {
		logger = logrus.New()
		logger.SetOutput(GinkgoWriter)
		calls = nil

		c = config.Config{
			SourceImageID: sourceAmiID,
			Region:        "ap-southeast-2",
			SourceRegion:  "ap-southeast-2",
			Name:          "jenkins",
			Encrypted:     true,
			OSType:        config.LinuxOSType,
			InstanceType:  resources.DefaultInstanceType,
			OutputDir:     GinkgoT().TempDir(),
		}

		fakeAccountDriver = &resourcesfakes.FakeAccountDriver{}
		fakeAccountDriver.CallerAccountReturns(callerAccount, nil)
		fakeAccountDriver.ImageOwnerReturns(callerAccount, nil)

		fakeKmsDriver = &resourcesfakes.FakeKmsDriver{}
		fakeKmsDriver.ResolveKeyReturns(resources.KmsKey{}, nil)

		fakeCopyAmiDriver = &resourcesfakes.FakeAmiDriver{}
		fakeCopyAmiDriver.CreateStub = func(_ context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
			calls = append(calls, "copy "+driverConfig.ExistingAmiID)
			return resources.Ami{ID: encryptedAmiID, Region: "ap-southeast-2", Name: driverConfig.Name}, nil
		}

		fakeCreateAmiDriver = &resourcesfakes.FakeAmiDriver{}
		fakeCreateAmiDriver.CreateStub = func(_ context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
			calls = append(calls, "create image "+driverConfig.InstanceID)
			return resources.Ami{ID: intermediateAmiID, Region: "ap-southeast-2", Name: driverConfig.Name}, nil
		}

		fakeDeregisterDriver = &resourcesfakes.FakeDeregisterAmiDriver{}
		fakeDeregisterDriver.DeleteStub = func(_ context.Context, ami resources.Ami) error {
			calls = append(calls, "deregister "+ami.ID)
			return nil
		}

		fakeInstanceDriver = &resourcesfakes.FakeInstanceDriver{}
		fakeInstanceDriver.CreateStub = func(_ context.Context, driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
			calls = append(calls, "launch "+driverConfig.AmiID)
			return resources.Instance{ID: instanceID, State: resources.InstanceRunningState}, nil
		}
		fakeInstanceDriver.StopStub = func(_ context.Context, instance resources.Instance) error {
			calls = append(calls, "stop "+instance.ID)
			return nil
		}
		fakeInstanceDriver.DeleteStub = func(_ context.Context, instance resources.Instance) error {
			calls = append(calls, "terminate "+instance.ID)
			return nil
		}

		fakeSubnetDriver = &resourcesfakes.FakeSubnetDriver{}
		fakeUploadDriver = &resourcesfakes.FakeResultUploadDriver{}

		fakeDs = &driversetfakes.FakeEncryptionDriverSet{}
		fakeDs.AccountDriverReturns(fakeAccountDriver)
		fakeDs.KmsDriverReturns(fakeKmsDriver)
		fakeDs.CopyAmiDriverReturns(fakeCopyAmiDriver)
		fakeDs.CreateAmiDriverReturns(fakeCreateAmiDriver)
		fakeDs.DeregisterAmiDriverReturns(fakeDeregisterDriver)
		fakeDs.InstanceDriverReturns(fakeInstanceDriver)
		fakeDs.SubnetDriverReturns(fakeSubnetDriver)
		fakeDs.ResultUploadDriverReturns(fakeUploadDriver)
	})

	readResult := func(result encrypter.Result) string {
		contents, err := os.ReadFile(result.ResultPath)
		Expect(err).ToNot(HaveOccurred())
		return string(contents)
	}

	Context("when the caller owns the source AMI", func() {
		It("copies it once with encryption and records the copy", func() {
			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(1))
			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig).To(Equal(resources.AmiDriverConfig{
				ExistingAmiID: sourceAmiID,
				SourceRegion:  "ap-southeast-2",
				AmiProperties: resources.AmiProperties{
					Name:      "encrypted-jenkins",
					Encrypted: true,
				},
			}))

			Expect(fakeInstanceDriver.Invocations()).To(BeEmpty())
			Expect(fakeCreateAmiDriver.CreateCallCount()).To(Equal(0))
			Expect(fakeDeregisterDriver.DeleteCallCount()).To(Equal(0))
			Expect(fakeSubnetDriver.FindCallCount()).To(Equal(0))

			Expect(result.Path).To(Equal(encrypter.SameAccountPath))
			Expect(result.Ami.ID).To(Equal(encryptedAmiID))
			Expect(result.IntermediateAmiID).To(BeEmpty())
			Expect(result.ResultPath).To(Equal(filepath.Join(c.OutputDir, "Encrypted-Jenkins_AMI_ID.txt")))
			Expect(readResult(result)).To(Equal(encryptedAmiID + "\n"))
			Expect(fakeUploadDriver.UploadCallCount()).To(Equal(0))
		})

		It("encrypts with the resolved kms key", func() {
			c.KmsKeyId = "alias/ami-encryption"
			fakeKmsDriver.ResolveKeyReturns(resources.KmsKey{ARN: kmsKeyARN, KeyId: "1234abcd"}, nil)

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.KmsKeyARN).To(Equal(kmsKeyARN))

			_, kmsConfig := fakeKmsDriver.ResolveKeyArgsForCall(0)
			Expect(kmsConfig).To(Equal(resources.KmsResolveKeyDriverConfig{KmsKeyId: "alias/ami-encryption", Region: "ap-southeast-2"}))

			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.KmsKeyId).To(Equal(kmsKeyARN))
		})

		It("makes an unencrypted copy without touching kms when encryption is off", func() {
			c.Encrypted = false

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeKmsDriver.ResolveKeyCallCount()).To(Equal(0))

			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.Name).To(Equal("unencrypted-jenkins"))
			Expect(copyConfig.Encrypted).To(BeFalse())
		})

		It("decorates the name with the build timestamp and names the file after the job", func() {
			c.DateTime = "201701011200"
			c.JobName = "bake-jenkins"

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.Name).To(Equal("encrypted-jenkins-201701011200"))
			Expect(result.ResultPath).To(Equal(filepath.Join(c.OutputDir, "bake-jenkins_ID.txt")))
		})

		It("skips account resolution when the account is configured", func() {
			c.AccountID = callerAccount
			fakeAccountDriver.CallerAccountReturns("", resources.ErrAccountUnresolved)

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Path).To(Equal(encrypter.SameAccountPath))
			Expect(fakeAccountDriver.CallerAccountCallCount()).To(Equal(0))
		})

		It("uploads the result file when a bucket is configured", func() {
			c.ResultBucket = "results"
			fakeUploadDriver.UploadReturns("s3://results/Encrypted-Jenkins_AMI_ID.txt", nil)

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ResultURL).To(Equal("s3://results/Encrypted-Jenkins_AMI_ID.txt"))
		})

		It("returns the copy error and records nothing", func() {
			fakeCopyAmiDriver.CreateStub = nil
			fakeCopyAmiDriver.CreateReturns(resources.Ami{}, errors.New("copy failed"))

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).To(MatchError("copying ami-52293031: copy failed"))
			Expect(result.ResultPath).To(BeEmpty())
			Expect(filepath.Join(c.OutputDir, "Encrypted-Jenkins_AMI_ID.txt")).ToNot(BeAnExistingFile())
		})
	})

	Context("when the caller's account cannot be resolved", func() {
		It("aborts before touching any image", func() {
			fakeAccountDriver.CallerAccountReturns("", resources.ErrAccountUnresolved)

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(errors.Is(err, resources.ErrAccountUnresolved)).To(BeTrue())
			Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when another account owns the source AMI", func() {
		BeforeEach(func() {
			fakeAccountDriver.ImageOwnerReturns(otherAccount, nil)
			c.SubnetIDs = []string{"subnet-aaaa", "subnet-bbbb", "subnet-cccc"}
		})

		It("images it through a temporary instance and copies the intermediate AMI", func() {
			result, err := encrypter.New(logger, c, encrypter.WithSubnetPicker(func(n int) int {
				Expect(n).To(Equal(3))
				return 1
			})).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			Expect(calls).To(Equal([]string{
				"launch " + sourceAmiID,
				"stop " + instanceID,
				"create image " + instanceID,
				"terminate " + instanceID,
				"copy " + intermediateAmiID,
				"deregister " + intermediateAmiID,
			}))

			_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
			Expect(instanceConfig).To(Equal(resources.InstanceDriverConfig{
				AmiID:        sourceAmiID,
				InstanceType: resources.DefaultInstanceType,
				SubnetID:     "subnet-bbbb",
				Tags:         map[string]string{"Name": "encrypt-jenkins-build"},
			}))

			_, createConfig := fakeCreateAmiDriver.CreateArgsForCall(0)
			Expect(createConfig.Name).To(Equal("unencrypted-jenkins"))
			Expect(createConfig.Encrypted).To(BeFalse())

			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.ExistingAmiID).To(Equal(intermediateAmiID))
			Expect(copyConfig.SourceRegion).To(Equal("ap-southeast-2"))
			Expect(copyConfig.Name).To(Equal("encrypted-jenkins"))
			Expect(copyConfig.Encrypted).To(BeTrue())

			Expect(result.Path).To(Equal(encrypter.CrossAccountPath))
			Expect(result.InstanceID).To(Equal(instanceID))
			Expect(result.IntermediateAmiID).To(Equal(intermediateAmiID))
			Expect(result.Ami.ID).To(Equal(encryptedAmiID))
		})

		It("copies the intermediate AMI out of the source region", func() {
			c.SourceRegion = "us-west-2"

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.ExistingAmiID).To(Equal(intermediateAmiID))
			Expect(copyConfig.SourceRegion).To(Equal("us-west-2"))

			_, kmsConfig := fakeKmsDriver.ResolveKeyArgsForCall(0)
			Expect(kmsConfig.Region).To(Equal("ap-southeast-2"))
		})

		It("never records the intermediate AMI", func() {
			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			contents := readResult(result)
			Expect(contents).To(Equal(encryptedAmiID + "\n"))
			Expect(contents).ToNot(ContainSubstring(intermediateAmiID))
		})

		It("applies the timestamp to the intermediate image as well", func() {
			c.DateTime = "201701011200"

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			_, createConfig := fakeCreateAmiDriver.CreateArgsForCall(0)
			Expect(createConfig.Name).To(Equal("unencrypted-jenkins-201701011200"))
			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.Name).To(Equal("encrypted-jenkins-201701011200"))
		})

		It("tags the instance and images with the configured tags", func() {
			c.InstanceTags = map[string]string{"CC": "AP074", "StopHour": "DoNotStop"}

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
			Expect(instanceConfig.Tags).To(Equal(map[string]string{
				"Name":     "encrypt-jenkins-build",
				"CC":       "AP074",
				"StopHour": "DoNotStop",
			}))

			_, createConfig := fakeCreateAmiDriver.CreateArgsForCall(0)
			Expect(createConfig.Tags).To(Equal(c.InstanceTags))
			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(0)
			Expect(copyConfig.Tags).To(Equal(c.InstanceTags))
		})

		It("boots windows images with the sysprep script", func() {
			c.OSType = config.WindowsOSType
			c.IamInstanceProfile = "builder"

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).ToNot(HaveOccurred())

			_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
			Expect(instanceConfig.UserData).To(HavePrefix("<powershell>"))
			Expect(instanceConfig.IamInstanceProfile).To(Equal("builder"))
		})

		Describe("choosing a subnet", func() {
			It("prefers an explicit subnet", func() {
				c.SubnetID = "subnet-explicit"

				_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
				Expect(err).ToNot(HaveOccurred())

				_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
				Expect(instanceConfig.SubnetID).To(Equal("subnet-explicit"))
			})

			It("looks subnets up by tag when no candidates are configured", func() {
				c.SubnetIDs = nil
				c.SubnetTag = "*-BackEnd-*"
				fakeSubnetDriver.FindReturns([]resources.Subnet{{ID: "subnet-tagged-1"}, {ID: "subnet-tagged-2"}}, nil)

				_, err := encrypter.New(logger, c, encrypter.WithSubnetPicker(func(n int) int { return n - 1 })).Encrypt(context.Background(), fakeDs)
				Expect(err).ToNot(HaveOccurred())

				_, tag := fakeSubnetDriver.FindArgsForCall(0)
				Expect(tag).To(Equal("*-BackEnd-*"))
				_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
				Expect(instanceConfig.SubnetID).To(Equal("subnet-tagged-2"))
			})

			It("fails when no subnet carries the tag", func() {
				c.SubnetIDs = nil
				c.SubnetTag = "*-BackEnd-*"
				fakeSubnetDriver.FindReturns(nil, nil)

				_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
				Expect(err).To(MatchError("no subnets tagged *-BackEnd-*"))
				Expect(fakeInstanceDriver.CreateCallCount()).To(Equal(0))
			})

			It("leaves the subnet to EC2 when nothing is configured", func() {
				c.SubnetIDs = nil

				_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
				Expect(err).ToNot(HaveOccurred())

				_, instanceConfig := fakeInstanceDriver.CreateArgsForCall(0)
				Expect(instanceConfig.SubnetID).To(BeEmpty())
			})
		})

		It("aborts the remaining steps when the instance fails to stop", func() {
			fakeInstanceDriver.StopStub = nil
			fakeInstanceDriver.StopReturns(errors.New("IncorrectInstanceState"))

			_, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).To(MatchError("stopping instance i-0123456789: IncorrectInstanceState"))
			Expect(fakeCreateAmiDriver.CreateCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.DeleteCallCount()).To(Equal(0))
			Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(0))
		})

		It("keeps the intermediate AMI when the encrypted copy fails", func() {
			fakeCopyAmiDriver.CreateStub = nil
			fakeCopyAmiDriver.CreateReturns(resources.Ami{}, errors.New("copy failed"))

			result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
			Expect(err).To(HaveOccurred())
			Expect(result.IntermediateAmiID).To(Equal(intermediateAmiID))
			Expect(fakeDeregisterDriver.DeleteCallCount()).To(Equal(0))
		})
	})

	It("records exactly the copied id for the same-account jenkins build", func() {
		c.Name = "jenkins"
		c.JobName = ""
		c.DateTime = ""
		fakeAccountDriver.CallerAccountReturns("123456781234", nil)
		fakeAccountDriver.ImageOwnerReturns("123456781234", nil)

		result, err := encrypter.New(logger, c).Encrypt(context.Background(), fakeDs)
		Expect(err).ToNot(HaveOccurred())

		_, owned := fakeAccountDriver.ImageOwnerArgsForCall(0)
		Expect(owned).To(Equal("ami-52293031"))
		Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(1))
		Expect(readResult(result)).To(Equal("ami-2939214a\n"))
	})
})
