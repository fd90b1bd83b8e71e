package logs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/2beens/fitcal/pkg"
)

// DiskSlot keeps the slot as <root>/<name>.json. Writes go through a temp
// file and a rename, so a crash never leaves a half written slot.
type DiskSlot struct {
	name string
	path string
}

func NewDiskSlot(rootPath, name string) (*DiskSlot, error) {
	if err := pkg.EnsureDir(rootPath); err != nil {
		return nil, fmt.Errorf("ensure slot dir: %w", err)
	}
	return &DiskSlot{
		name: name,
		path: filepath.Join(rootPath, name+".json"),
	}, nil
}

func (s *DiskSlot) Name() string {
	return s.name
}

func (s *DiskSlot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (s *DiskSlot) Write(_ context.Context, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), s.name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp slot file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename slot file: %w", err)
	}
	return nil
}
