package evdev

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	ev "github.com/psstoyanov/sc-controller/internal/evdev"
	"github.com/psstoyanov/sc-controller/internal/logging"
)

// EVIOCGRAB takes an int arg: 1 grabs the device, 0 releases it.
const eviocGrab = 0x40044590

// ReaderDriver streams input_event records from one /dev/input node.
type ReaderDriver struct {
	cfg  Config
	file *os.File
}

func (d *ReaderDriver) Configure(cfg Config) error {
	if cfg.Device == "" {
		return errors.New("evdev-driver: no device configured")
	}
	d.cfg = cfg

	f, err := openPersistent(cfg.Device, cfg.OpenRetries, cfg.RetryDelay)
	if err != nil {
		return err
	}
	if cfg.Grab {
		if err := unix.IoctlSetInt(int(f.Fd()), eviocGrab, 1); err != nil {
			_ = f.Close()
			return fmt.Errorf("evdev-driver: grab %s: %w", cfg.Device, err)
		}
	}
	d.file = f
	return nil
}

func (d *ReaderDriver) Run(ctx context.Context, emit EmitFunc) error {
	go func() {
		<-ctx.Done()
		// Unblocks the binary.Read below.
		_ = d.file.Close()
	}()

	for {
		var rec ev.InputEvent
		if err := binary.Read(d.file, binary.LittleEndian, &rec); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("evdev-driver: read %s: %w", d.cfg.Device, err)
		}

		switch rec.Type {
		case ev.EV_KEY, ev.EV_ABS:
			if err := emit(Event{Type: rec.Type, Code: rec.Code, Value: rec.Value}); err != nil {
				return err
			}
		default:
			// SYN and anything else carries no mapping input.
		}
	}
}

func (d *ReaderDriver) Close() error {
	if d.file == nil {
		return nil
	}
	if d.cfg.Grab {
		_ = unix.IoctlSetInt(int(d.file.Fd()), eviocGrab, 0)
	}
	return d.file.Close()
}

// openPersistent retries on EACCES: right after hotplug udev may not
// have applied device permissions yet.
func openPersistent(path string, retries int, delay time.Duration) (*os.File, error) {
	var lastErr error
	for i := 0; i < retries; i++ {
		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err == nil {
			return f, nil
		}
		lastErr = err
		if !errors.Is(err, os.ErrPermission) {
			break
		}
		logging.L().Debug("evdev-driver: open retry", "device", path, "attempt", i+1)
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("evdev-driver: open %s: %w", path, lastErr)
}

func init() {
	Register("reader", func() Adapter { return &ReaderDriver{} })
}
