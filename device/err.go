package device

import (
	"errors"

	"github.com/ezrec/icvm/translate"
)

var f = translate.From

var (
	ErrOutputMissing  = errors.New(f("expected output missing"))
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrNotWaiting     = errors.New(f("program is not waiting for input"))
	ErrNodeStalled    = errors.New(f("node stalled after idle input"))
	ErrNatEmpty       = errors.New(f("network idle with no packet buffered"))
	ErrSpringbotFell  = errors.New(f("springbot fell into a hole"))
	ErrTargetMissing  = errors.New(f("no target cell discovered"))
	ErrDroidLost      = errors.New(f("droid failed to retrace its path"))
)

// ErrRouteInvalid is a packet destination with no node behind it.
type ErrRouteInvalid int64

func (er ErrRouteInvalid) Error() string {
	return f("no node at address %v", int64(er))
}

// ErrTileInvalid is an arcade tile id outside the known set.
type ErrTileInvalid int64

func (et ErrTileInvalid) Error() string {
	return f("invalid tile kind %v", int64(et))
}

// ErrCellInvalid is a droid status reply outside the known set.
type ErrCellInvalid int64

func (ec ErrCellInvalid) Error() string {
	return f("invalid status reply %v", int64(ec))
}

// ErrColorInvalid is a robot paint color other than black or white.
type ErrColorInvalid int64

func (ec ErrColorInvalid) Error() string {
	return f("invalid panel color %v", int64(ec))
}
