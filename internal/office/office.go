// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office drives the host office application that performs the actual
// format conversions. A Host launches one Application per batch; the batch
// opens, saves and closes Documents through it and then quits it.
//
// Two backends exist: COM automation of Word and Excel (Windows only) and
// LibreOffice headless through its command-line converter.
package office

import (
	"errors"
	"fmt"

	"github.com/pdiddy/office-convert/internal/formats"
)

var (
	// ErrUnsupportedPlatform is returned by backends that cannot run on
	// the current operating system.
	ErrUnsupportedPlatform = errors.New("backend not supported on this platform")

	// ErrNoHost is returned by Detect when no backend is operational.
	ErrNoHost = errors.New("no office host available")
)

// Host launches the office application for a document family.
type Host interface {
	// Name returns the backend name ("com", "soffice" or "libreoffice").
	Name() string

	// Available reports whether the backend can be launched here.
	Available() bool

	// Launch starts one application instance for the given family.
	Launch(family formats.Family) (Application, error)
}

// Application is one running instance of the host application.
type Application interface {
	// Open opens the file at an absolute path.
	Open(path string) (Document, error)

	// SetDisplayAlerts toggles the host's modal alerts (overwrite prompts,
	// compatibility warnings).
	SetDisplayAlerts(on bool) error

	// Quit shuts the instance down. The Application is unusable afterwards.
	Quit() error
}

// Document is a file opened in an Application.
type Document interface {
	// SaveAs writes the document to path using the host format code.
	SaveAs(path string, code formats.Code) error

	// Close closes the document without saving further changes.
	Close() error
}

// WithSession launches an application for family, passes it to fn, and
// quits it on every exit path. A quit failure is returned only when fn
// itself succeeded.
func WithSession(h Host, family formats.Family, fn func(Application) error) (err error) {
	app, err := h.Launch(family)
	if err != nil {
		return fmt.Errorf("launching %s via %s: %w", family.ProgID(), h.Name(), err)
	}
	defer func() {
		if qerr := app.Quit(); qerr != nil && err == nil {
			err = fmt.Errorf("quitting %s via %s: %w", family.ProgID(), h.Name(), qerr)
		}
	}()
	return fn(app)
}
