package service

import (
	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
)

type Services struct {
	UserService UserService
	PostService PostService
}

func NewServices(repositories *store.Repositories, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(repositories.UserRepository, hasher, cfg, logger),
		PostService: NewPostService(repositories.PostRepository, cfg, logger),
	}
}
