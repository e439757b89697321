package manifest

import (
	"fmt"
	"io"

	"ami-encrypter/config"
	"ami-encrypter/encrypter"

	"gopkg.in/yaml.v2"
)

// Manifest describes a finished run for whatever consumes the tool's stdout
type Manifest struct {
	SourceImageID       string `yaml:"source_image_id"`
	ImageID             string `yaml:"image_id"`
	Name                string `yaml:"name"`
	Region              string `yaml:"region"`
	Encrypted           bool   `yaml:"encrypted"`
	KmsKeyARN           string `yaml:"kms_key_arn,omitempty"`
	Path                string `yaml:"path"`
	IntermediateImageID string `yaml:"intermediate_image_id,omitempty"`
	InstanceID          string `yaml:"instance_id,omitempty"`
	ResultFile          string `yaml:"result_file"`
	ResultURL           string `yaml:"result_url,omitempty"`
}

func New(c config.Config, result encrypter.Result) *Manifest {
	return &Manifest{
		SourceImageID:       result.SourceAmiID,
		ImageID:             result.Ami.ID,
		Name:                result.Ami.Name,
		Region:              c.Region,
		Encrypted:           c.Encrypted,
		KmsKeyARN:           result.KmsKeyARN,
		Path:                result.Path,
		IntermediateImageID: result.IntermediateAmiID,
		InstanceID:          result.InstanceID,
		ResultFile:          result.ResultPath,
		ResultURL:           result.ResultURL,
	}
}

// NewFromReader creates a new manifest from the YAML stored in the reader
func NewFromReader(reader io.Reader) (*Manifest, error) {
	manifestBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %s", err)
	}
	m := &Manifest{}
	err = yaml.Unmarshal(manifestBytes, m)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling YAML to manifest: %s", err)
	}
	return m, nil
}

// Write writes the YAML representation of this manifest to the io.Writer
func (m *Manifest) Write(writer io.Writer) error {
	output, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %s", err)
	}
	_, err = writer.Write(output)
	if err != nil {
		return fmt.Errorf("writing YAML: %s", err)
	}
	return nil
}
