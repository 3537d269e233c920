package store

import "github.com/happydeal-transit/erp/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	CompanyRepository CompanyRepository

	// DB is exposed for liveness probes (the health endpoint pings it).
	DB *DB
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CompanyRepository: NewCompanyRepository(db, log),
		DB:                db,
	}
}
