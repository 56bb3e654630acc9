package service

import (
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
)

// Services aggregates every business-logic collaborator consumed by the
// transport layer.
type Services struct {
	AuthService AuthService
	UserService UserService
}

// NewServices wires the service layer to the persistence layer.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Credentials, cfg, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
