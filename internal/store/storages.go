package store

import (
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// Storages aggregates every persistence-layer collaborator consumed by the
// service layer.
type Storages struct {
	UserRepository UserRepository
	Credentials    CredentialStore
}

// NewStorages wires the user repository to the open database connection and
// seeds the static credential store from configuration.
func NewStorages(db *DB, cfg config.Auth, log *logger.Logger) (*Storages, error) {
	credentials, err := NewStaticCredentialStore(map[string]string{
		cfg.AdminUsername: cfg.AdminPassword,
	}, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Credentials:    credentials,
	}, nil
}
