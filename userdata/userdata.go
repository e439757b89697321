// Package userdata renders the boot script handed to the temporary instance
package userdata

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"ami-encrypter/config"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Data is available to every template
type Data struct {
	ImageName string
}

// Render returns the user data for the OS type. Linux images boot without user data.
func Render(osType string, data Data) (string, error) {
	switch osType {
	case config.LinuxOSType:
		return "", nil
	case config.WindowsOSType:
	default:
		return "", fmt.Errorf("no user data for os type %q", osType)
	}

	var b bytes.Buffer
	err := templates.ExecuteTemplate(&b, osType+".ps1.tmpl", data)
	if err != nil {
		return "", fmt.Errorf("rendering %s user data: %w", osType, err)
	}

	return b.String(), nil
}
