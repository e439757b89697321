package userdata_test

import (
	"ami-encrypter/config"
	"ami-encrypter/userdata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Render", func() {
	It("renders the sysprep script for windows", func() {
		script, err := userdata.Render(config.WindowsOSType, userdata.Data{ImageName: "encrypted-jenkins"})
		Expect(err).ToNot(HaveOccurred())
		Expect(script).To(HavePrefix("<powershell>"))
		Expect(script).To(ContainSubstring(`Write-Host "Preparing encrypted-jenkins for imaging"`))
		Expect(script).To(ContainSubstring("SysprepInstance.ps1"))
		Expect(script).To(ContainSubstring("</powershell>"))
	})

	It("renders nothing for linux", func() {
		script, err := userdata.Render(config.LinuxOSType, userdata.Data{ImageName: "encrypted-jenkins"})
		Expect(err).ToNot(HaveOccurred())
		Expect(script).To(BeEmpty())
	})

	It("rejects unknown os types", func() {
		_, err := userdata.Render("plan9", userdata.Data{})
		Expect(err).To(MatchError(`no user data for os type "plan9"`))
	})
})
