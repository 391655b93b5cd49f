// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package office

import (
	"errors"
	"fmt"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/pdiddy/office-convert/internal/formats"
)

// sFalse is the HRESULT CoInitializeEx returns when the thread is already
// initialized. It still requires a matching CoUninitialize.
const sFalse = 1

// comHost drives Word and Excel through COM automation. An Application pins
// the calling goroutine to its OS thread from Launch until Quit, so a session
// must be used from a single goroutine.
type comHost struct{}

func newCOMHost() Host { return comHost{} }

func (comHost) Name() string { return BackendCOM }

func (comHost) Available() bool {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := coInitialize(); err != nil {
		return false
	}
	defer ole.CoUninitialize()

	for _, fam := range formats.Families {
		if _, err := ole.ClassIDFrom(fam.ProgID()); err == nil {
			return true
		}
	}
	return false
}

func (comHost) Launch(family formats.Family) (app Application, err error) {
	runtime.LockOSThread()
	if err := coInitialize(); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("initializing COM: %w", err)
	}
	defer func() {
		if err != nil {
			ole.CoUninitialize()
			runtime.UnlockOSThread()
		}
	}()

	unknown, err := oleutil.CreateObject(family.ProgID())
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", family.ProgID(), err)
	}
	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		return nil, fmt.Errorf("querying %s dispatch: %w", family.ProgID(), err)
	}

	coll, err := oleutil.GetProperty(disp, family.Collection())
	if err != nil {
		oleutil.CallMethod(disp, "Quit")
		disp.Release()
		return nil, fmt.Errorf("reading %s.%s: %w", family.ProgID(), family.Collection(), err)
	}
	return &comApp{family: family, app: disp, docs: coll.ToIDispatch()}, nil
}

func coInitialize() error {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
		return nil
	}
	return err
}

type comApp struct {
	family formats.Family
	app    *ole.IDispatch
	docs   *ole.IDispatch
}

func (a *comApp) Open(path string) (Document, error) {
	v, err := oleutil.CallMethod(a.docs, "Open", path)
	if err != nil {
		return nil, fmt.Errorf("%s.Open %s: %w", a.family.Collection(), path, err)
	}
	return &comDoc{disp: v.ToIDispatch()}, nil
}

func (a *comApp) SetDisplayAlerts(on bool) error {
	if _, err := oleutil.PutProperty(a.app, "DisplayAlerts", on); err != nil {
		return fmt.Errorf("setting %s.DisplayAlerts: %w", a.family.ProgID(), err)
	}
	return nil
}

func (a *comApp) Quit() error {
	defer runtime.UnlockOSThread()
	defer ole.CoUninitialize()

	a.docs.Release()
	_, err := oleutil.CallMethod(a.app, "Quit")
	a.app.Release()
	if err != nil {
		return fmt.Errorf("%s.Quit: %w", a.family.ProgID(), err)
	}
	return nil
}

type comDoc struct {
	disp *ole.IDispatch
}

func (d *comDoc) SaveAs(path string, code formats.Code) error {
	if _, err := oleutil.CallMethod(d.disp, "SaveAs", path, int32(code)); err != nil {
		return fmt.Errorf("SaveAs %s (format %d): %w", path, code, err)
	}
	return nil
}

func (d *comDoc) Close() error {
	_, err := oleutil.CallMethod(d.disp, "Close")
	d.disp.Release()
	if err != nil {
		return fmt.Errorf("closing document: %w", err)
	}
	return nil
}
