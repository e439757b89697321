package driverset_test

import (
	"ami-encrypter/config"
	"ami-encrypter/driver"
	"ami-encrypter/driverset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("EncryptionDriverSet", func() {
	It("returns drivers of the correct type", func() {
		logger := logrus.New()
		logger.SetOutput(GinkgoWriter)

		ds, err := driverset.NewEncryptionDriverSet(logger, config.Config{
			Region: "ap-southeast-2",
			Credentials: config.Credentials{
				AccessKey: "access-key",
				SecretKey: "secret-key",
				Region:    "ap-southeast-2",
			},
			RecordFixtures: GinkgoT().TempDir(),
			Debug:          true,
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(ds.AccountDriver()).To(BeAssignableToTypeOf(&driver.SDKAccountDriver{}))
		Expect(ds.CopyAmiDriver()).To(BeAssignableToTypeOf(&driver.SDKCopyAmiDriver{}))
		Expect(ds.CreateAmiDriver()).To(BeAssignableToTypeOf(&driver.SDKCreateAmiDriver{}))
		Expect(ds.DeregisterAmiDriver()).To(BeAssignableToTypeOf(&driver.SDKDeregisterAmiDriver{}))
		Expect(ds.InstanceDriver()).To(BeAssignableToTypeOf(&driver.SDKInstanceDriver{}))
		Expect(ds.KmsDriver()).To(BeAssignableToTypeOf(&driver.SDKKmsDriver{}))
		Expect(ds.ResultUploadDriver()).To(BeAssignableToTypeOf(&driver.SDKResultUploadDriver{}))
		Expect(ds.SubnetDriver()).To(BeAssignableToTypeOf(&driver.SDKSubnetDriver{}))
	})
})
