package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oomph-ac/wedisplay/worker"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Store reads and writes player overrides, one YAML file per player.
type Store struct {
	dir string
	log *logrus.Logger
}

// NewStore returns a Store keeping its files in dir.
func NewStore(dir string, log *logrus.Logger) *Store {
	return &Store{dir: dir, log: log}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+".yml")
}

// Load reads the override of the player with the ID passed. A player without a file gets an empty
// override.
func (s *Store) Load(id string) (*Override, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return &Override{}, nil
	} else if err != nil {
		return &Override{}, fmt.Errorf("error reading player settings: %w", err)
	}
	o := &Override{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return &Override{}, fmt.Errorf("error decoding player settings %s: %w", id, err)
	}
	return o, nil
}

// Save writes the override of the player with the ID passed.
func (s *Store) Save(id string, o *Override) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed creating player data directory: %w", err)
	}
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed encoding player settings: %w", err)
	}
	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return fmt.Errorf("failed writing player settings: %w", err)
	}
	return nil
}

// SaveAsync saves a copy of the override on a worker. Errors are logged.
func (s *Store) SaveAsync(id string, o *Override) {
	c := o.Clone()
	worker.Submit(func() {
		if err := s.Save(id, c); err != nil {
			s.log.Errorf("unable to save settings of %s: %v", id, err)
		}
	})
}
