package rawstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/clock"
)

// Store archives raw upstream payloads as timestamped JSON files, one file
// per fetch, e.g. newswire-06_01_24-15_04_05-all_arts.json.
type Store struct {
	dir   string
	clock clock.Clock
}

func New(dir string, clk clock.Clock) (*Store, error) {
	if clk == nil {
		clk = clock.WallClock
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create raw dir: %w", err)
	}
	return &Store{dir: dir, clock: clk}, nil
}

func (s *Store) SaveSnapshot(label string, body []byte) (string, error) {
	ts := s.clock.Now().Format("06_01_02-15_04_05")
	name := fmt.Sprintf("%s-%s.json", label, ts)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
