// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package office

import (
	"fmt"
	"runtime"

	"github.com/pdiddy/office-convert/internal/formats"
)

// comHost stands in for COM automation on platforms without it.
type comHost struct{}

func newCOMHost() Host { return comHost{} }

func (comHost) Name() string { return BackendCOM }

func (comHost) Available() bool { return false }

func (comHost) Launch(family formats.Family) (Application, error) {
	return nil, fmt.Errorf("%w: %s automation requires windows, running on %s", ErrUnsupportedPlatform, family.ProgID(), runtime.GOOS)
}
