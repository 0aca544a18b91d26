package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/ledger"
)

// OpenStore opens the configured ledger backend
func (c *Config) OpenStore() (ledger.Store, error) {
	switch c.Ledger.Backend {
	case BackendMemory:
		return ledger.NewMemoryStore(), nil
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(c.Ledger.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return ledger.NewSQLiteStore(c.Ledger.SQLitePath)
	case BackendFile:
		return ledger.NewFileStore(c.Ledger.Dir)
	}
	return nil, fmt.Errorf("unknown ledger backend %q", c.Ledger.Backend)
}

// OpenCatalog loads the configured manifest, or the built-in list when none is set
func (c *Config) OpenCatalog() (*catalog.Catalog, error) {
	if c.Catalog.Manifest == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.Catalog.Manifest)
}
