// Package recorder leaves the id of the finished AMI behind for the next pipeline job
package recorder

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"ami-encrypter/resources"

	"github.com/sirupsen/logrus"
)

type Config struct {
	OutputDir    string
	JobName      string
	ResultBucket string
	ResultPrefix string
}

// Recorded says where the AMI id was written. URL is empty unless the file was uploaded.
type Recorded struct {
	Path string
	URL  string
}

type Recorder struct {
	config       Config
	uploadDriver resources.ResultUploadDriver
	logger       logrus.FieldLogger
}

func New(logger logrus.FieldLogger, c Config, uploadDriver resources.ResultUploadDriver) *Recorder {
	return &Recorder{config: c, uploadDriver: uploadDriver, logger: logger}
}

// FileName is <job name>_ID.txt for pipeline jobs, <Title-Cased image name>_AMI_ID.txt otherwise
func FileName(jobName, imageName string) string {
	if jobName != "" {
		return jobName + "_ID.txt"
	}
	return TitleCase(imageName) + "_AMI_ID.txt"
}

// TitleCase upper-cases every letter which does not follow another letter and
// lower-cases the rest
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	previousIsLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && previousIsLetter:
			b.WriteRune(unicode.ToLower(r))
		case isLetter:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
		previousIsLetter = isLetter
	}

	return b.String()
}

// Record writes "<ami id>\n" to the result file, replacing any previous contents, and
// uploads the file when a result bucket is configured
func (r *Recorder) Record(ctx context.Context, ami resources.Ami) (Recorded, error) {
	outputDir := r.config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	fileName := FileName(r.config.JobName, ami.Name)
	recorded := Recorded{Path: filepath.Join(outputDir, fileName)}

	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		return Recorded{}, fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(recorded.Path, []byte(ami.ID+"\n"), 0644)
	if err != nil {
		return Recorded{}, fmt.Errorf("writing result file: %w", err)
	}

	r.logger.Printf("recorded %s in %s", ami.ID, recorded.Path)

	if r.config.ResultBucket == "" {
		return recorded, nil
	}

	recorded.URL, err = r.uploadDriver.Upload(ctx, resources.ResultUploadDriverConfig{
		LocalPath:  recorded.Path,
		BucketName: r.config.ResultBucket,
		Key:        path.Join(r.config.ResultPrefix, fileName),
	})
	if err != nil {
		return recorded, err
	}

	return recorded, nil
}
