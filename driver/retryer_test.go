package driver_test

import (
	"ami-encrypter/driver"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Retryers", func() {
	requestFailingWith := func(code string) *request.Request {
		return &request.Request{Error: awserr.New(code, "some message", nil)}
	}

	Describe("EC2Retryer", func() {
		It("retries resources EC2 has not caught up with yet", func() {
			retryer := driver.NewEC2RetryerWithRetries(5)
			Expect(retryer.ShouldRetry(requestFailingWith(driver.InstanceNotFoundErrorCode))).To(BeTrue())
			Expect(retryer.ShouldRetry(requestFailingWith(driver.AmiNotFoundErrorCode))).To(BeTrue())
			Expect(retryer.MaxRetries()).To(Equal(5))
		})

		It("leaves other errors to the default retryer", func() {
			retryer := driver.NewEC2RetryerWithRetries(3)
			Expect(retryer.ShouldRetry(requestFailingWith("UnauthorizedOperation"))).To(BeFalse())
			Expect(retryer.ShouldRetry(requestFailingWith("RequestLimitExceeded"))).To(BeTrue())
		})

		It("defaults to 3 retries", func() {
			Expect(driver.NewEC2RetryerWithRetries(0).MaxRetries()).To(Equal(3))
		})
	})

	Describe("S3Retryer", func() {
		It("retries interrupted response bodies", func() {
			retryer := driver.NewS3RetryerWithRetries(2)
			Expect(retryer.ShouldRetry(requestFailingWith("SerializationError"))).To(BeTrue())
			Expect(retryer.ShouldRetry(requestFailingWith("AccessDenied"))).To(BeFalse())
			Expect(retryer.MaxRetries()).To(Equal(2))
		})
	})
})
