package storage

import (
	"fmt"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/interfaces"
	"github.com/bobmcallan/vire-review/internal/storage/mock"
	"github.com/bobmcallan/vire-review/internal/storage/tomlfile"
)

// NewDataStore creates the position/quote store selected by config.
func NewDataStore(cfg common.StorageConfig, logger *common.Logger) (interfaces.DataStore, error) {
	switch cfg.Backend {
	case common.StorageMock, "":
		return mock.NewStore(), nil
	case common.StorageFile:
		if cfg.DataFile == "" {
			return nil, fmt.Errorf("storage backend %q requires storage.data_file", cfg.Backend)
		}
		store, err := tomlfile.Load(cfg.DataFile, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
