package encrypter

import "ami-encrypter/resources"

// ImageName decorates name with the build timestamp, when there is one, and a prefix
// telling whether the image's snapshots are encrypted
func ImageName(name, dateTime string, encrypted bool) string {
	if dateTime != "" {
		name = name + "-" + dateTime
	}

	if encrypted {
		return resources.EncryptedAmiPrefix + name
	}
	return resources.UnencryptedAmiPrefix + name
}

// InstanceName is the Name tag of the temporary instance
func InstanceName(name string) string {
	return "encrypt-" + name + "-build"
}
