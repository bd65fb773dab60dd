package storage

import (
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
)

// ConfigRepo provides operations for the Config singleton.
type ConfigRepo struct {
	db *DB
}

// NewConfigRepo creates a new config repository.
func NewConfigRepo(db *DB) *ConfigRepo {
	return &ConfigRepo{db: db}
}

// Get retrieves the config, creating it if it doesn't exist.
func (r *ConfigRepo) Get() (*model.Config, error) {
	config := &model.Config{}
	err := r.db.Get(model.KeyConfig, config)
	if err == nil {
		return config, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	config = model.NewConfig()
	if err := r.db.Set(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Update updates the config.
func (r *ConfigRepo) Update(config *model.Config) error {
	return r.db.Set(config)
}

// SaveDefaultRate remembers the last rate the user entered so the next add
// can reuse it.
func (r *ConfigRepo) SaveDefaultRate(rate float64) error {
	config, err := r.Get()
	if err != nil {
		return err
	}
	config.DefaultRate = rate
	return r.Update(config)
}
