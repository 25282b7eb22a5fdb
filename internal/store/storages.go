package store

import (
	"context"

	"github.com/antonsh/stockscan/internal/config"
	"github.com/antonsh/stockscan/internal/logger"
)

// Storages aggregates every repository backed by the relational store.
type Storages struct {
	DB                  *DB
	UserRepository      UserRepository
	InventoryRepository InventoryRepository
}

// NewStorages opens the database connection and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		InventoryRepository: NewInventoryRepository(db, log),
	}, nil
}
