// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/office-convert/internal/formats"
)

const (
	BackendAuto        = "auto"
	BackendCOM         = "com"
	BackendSoffice     = "soffice"
	BackendLibreOffice = "libreoffice"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendAuto, BackendCOM, BackendSoffice, BackendLibreOffice}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunCombined(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCombined(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

var defaultExec = &osExecutor{}

// Detect returns the host for a backend name. "auto" (or "") prefers COM
// automation, then falls back to soffice and libreoffice on PATH. sofficePath
// overrides the LibreOffice binary for every LibreOffice backend.
func Detect(backend, sofficePath string) (Host, error) {
	return detect(backend, sofficePath, newCOMHost(), defaultExec)
}

func detect(backend, sofficePath string, com Host, exec executor) (Host, error) {
	name := strings.ToLower(strings.TrimSpace(backend))
	candidates := make([]Host, 0, 3)
	switch name {
	case "", BackendAuto:
		candidates = append(candidates, com)
		if sofficePath != "" {
			candidates = append(candidates, newSofficeHost(BackendSoffice, sofficePath, exec))
		} else {
			candidates = append(candidates,
				newSofficeHost(BackendSoffice, BackendSoffice, exec),
				newSofficeHost(BackendLibreOffice, BackendLibreOffice, exec))
		}
	case BackendCOM:
		candidates = append(candidates, com)
	case BackendSoffice, BackendLibreOffice:
		bin := sofficePath
		if bin == "" {
			bin = name
		}
		candidates = append(candidates, newSofficeHost(name, bin, exec))
	default:
		return nil, fmt.Errorf("unknown backend %q: want one of %s", backend, strings.Join(Backends, ", "))
	}

	tried := make([]string, 0, len(candidates))
	for _, h := range candidates {
		if h.Available() {
			return h, nil
		}
		tried = append(tried, h.Name())
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNoHost, strings.Join(tried, ", "))
}

// Lazy returns a Host that runs Detect on first use. Batches that never
// launch the host (missing path, nothing to convert) never probe for one.
func Lazy(backend, sofficePath string) Host {
	return &lazyHost{backend: backend, detect: func() (Host, error) { return Detect(backend, sofficePath) }}
}

type lazyHost struct {
	backend string
	detect  func() (Host, error)
	host    Host
	err     error
	done    bool
}

func (l *lazyHost) resolve() (Host, error) {
	if !l.done {
		l.host, l.err = l.detect()
		l.done = true
	}
	return l.host, l.err
}

// Name returns the detected backend, or the requested one before detection.
func (l *lazyHost) Name() string {
	if l.done && l.host != nil {
		return l.host.Name()
	}
	if l.backend == "" {
		return BackendAuto
	}
	return l.backend
}

func (l *lazyHost) Available() bool {
	h, err := l.resolve()
	return err == nil && h.Available()
}

func (l *lazyHost) Launch(family formats.Family) (Application, error) {
	h, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return h.Launch(family)
}
