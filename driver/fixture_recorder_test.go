package driver_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"ami-encrypter/driver"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client/metadata"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FixtureRecorder", func() {
	var dir string

	BeforeEach(func() {
		dir = filepath.Join(GinkgoT().TempDir(), "fixtures")
	})

	copyImageRequest := func() *request.Request {
		return &request.Request{
			ClientInfo: metadata.ClientInfo{ServiceName: "ec2"},
			Operation:  &request.Operation{Name: "CopyImage"},
			Params:     &ec2.CopyImageInput{SourceImageId: aws.String("ami-52293031")},
			Data:       &ec2.CopyImageOutput{ImageId: aws.String("ami-2939214a")},
		}
	}

	It("writes numbered fixtures per operation", func() {
		recorder := driver.NewFixtureRecorder(testLogger(), dir)
		handler := recorder.NamedHandler()
		Expect(handler.Name).To(Equal(driver.FixtureRecorderHandlerName))

		handler.Fn(copyImageRequest())
		handler.Fn(copyImageRequest())

		contents, err := os.ReadFile(filepath.Join(dir, "ec2.CopyImage_2.json"))
		Expect(err).ToNot(HaveOccurred())

		var fixture map[string]interface{}
		Expect(json.Unmarshal(contents, &fixture)).To(Succeed())
		Expect(fixture["service"]).To(Equal("ec2"))
		Expect(fixture["operation"]).To(Equal("CopyImage"))
		Expect(fixture["params"]).To(HaveKeyWithValue("SourceImageId", "ami-52293031"))
		Expect(fixture["data"]).To(HaveKeyWithValue("ImageId", "ami-2939214a"))
		Expect(filepath.Join(dir, "ec2.CopyImage_1.json")).To(BeAnExistingFile())
	})

	It("records failed requests with their error", func() {
		req := copyImageRequest()
		req.Data = nil
		req.Error = errors.New("UnauthorizedOperation")

		driver.NewFixtureRecorder(testLogger(), dir).Record(req)

		contents, err := os.ReadFile(filepath.Join(dir, "ec2.CopyImage_1.json"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(contents)).To(ContainSubstring(`"error": "UnauthorizedOperation"`))
	})
})
