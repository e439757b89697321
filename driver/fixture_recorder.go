package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/sirupsen/logrus"
)

// FixtureRecorderHandlerName names the handler so it is only ever installed once per session
const FixtureRecorderHandlerName = "ami-encrypter.FixtureRecorder"

// FixtureRecorder writes every completed AWS request as <service>.<Operation>_<n>.json
// into a directory, for use as test fixtures
type FixtureRecorder struct {
	dir    string
	logger *logrus.Entry

	mutex  sync.Mutex
	counts map[string]int
}

type fixture struct {
	Service   string      `json:"service"`
	Operation string      `json:"operation"`
	Params    interface{} `json:"params"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

func NewFixtureRecorder(logger logrus.FieldLogger, dir string) *FixtureRecorder {
	return &FixtureRecorder{
		dir:    dir,
		logger: logger.WithField("driver", "FixtureRecorder"),
		counts: map[string]int{},
	}
}

// NamedHandler is meant for the Complete handler list of a session
func (r *FixtureRecorder) NamedHandler() request.NamedHandler {
	return request.NamedHandler{Name: FixtureRecorderHandlerName, Fn: r.Record}
}

// Record writes the request. Recording failures are logged, never returned to the caller.
func (r *FixtureRecorder) Record(req *request.Request) {
	operation := "Unknown"
	if req.Operation != nil {
		operation = req.Operation.Name
	}
	service := req.ClientInfo.ServiceName

	f := fixture{
		Service:   service,
		Operation: operation,
		Params:    req.Params,
		Data:      req.Data,
	}
	if req.Error != nil {
		f.Error = req.Error.Error()
	}

	path, err := r.write(service+"."+operation, f)
	if err != nil {
		r.logger.Printf("failed to record %s.%s: %s", service, operation, err)
		return
	}

	r.logger.Debugf("recorded %s", path)
}

func (r *FixtureRecorder) write(prefix string, f fixture) (string, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	contents, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(r.dir, 0755)
	if err != nil {
		return "", err
	}

	r.counts[prefix]++
	path := filepath.Join(r.dir, fmt.Sprintf("%s_%d.json", prefix, r.counts[prefix]))

	return path, os.WriteFile(path, contents, 0644)
}
