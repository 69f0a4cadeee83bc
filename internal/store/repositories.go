package store

import "github.com/MKhiriev/go-social-api/internal/logger"

// Repositories bundles every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewRepositories wires the repositories to the shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}
}
