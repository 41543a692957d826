package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/taskpulse/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	DataDir string // Path to the data directory
	Backend string // Store backend name, for reporting
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	DataDir string
	Backend string
}

// InitStore creates the data directory and an empty user store.
// Running it again is harmless.
type InitStore struct {
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{storeInit: storeInit, logger: logger}
}

// Execute initializes the store.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	if err := os.MkdirAll(in.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("", "system", fmt.Sprintf("initialized %s store in %s", in.Backend, in.DataDir))
	}

	return &InitStoreOutput{DataDir: in.DataDir, Backend: in.Backend}, nil
}
