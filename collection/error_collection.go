package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error gathers every problem found during a pass so they can be reported together
type Error struct {
	sync.Mutex
	errs []error
}

func (e *Error) Add(err error) {
	if err == nil {
		return
	}

	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, err)
}

func (e *Error) Addf(format string, args ...interface{}) {
	e.Add(fmt.Errorf(format, args...))
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

// Error returns nil when nothing was collected, the error itself when one was, and a
// combined error listing every message otherwise
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
	}

	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}

	return &combinedError{
		msg:  fmt.Sprintf("encountered %d errors:\n - %s", len(e.errs), strings.Join(msgs, "\n - ")),
		errs: append([]error(nil), e.errs...),
	}
}

type combinedError struct {
	msg  string
	errs []error
}

func (c *combinedError) Error() string {
	return c.msg
}

func (c *combinedError) Unwrap() []error {
	return c.errs
}
