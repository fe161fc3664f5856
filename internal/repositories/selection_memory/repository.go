// Package selectionmemory persists per-session tech base selection memory
package selectionmemory

//go:generate mockgen -destination=mock/mock_repository.go -package=selectionmemorymock github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/selection_memory Repository

import (
	"context"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
)

// Repository stores one selection memory per editing session
type Repository interface {
	// Get loads a session's memory. An unknown session yields an empty memory.
	// Returns errors.InvalidArgument for an empty session ID
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces a session's memory and refreshes its expiry
	// Returns errors.InvalidArgument for an empty session ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete forgets a session's memory. Deleting an unknown session is not
	// an error.
	// Returns errors.InvalidArgument for an empty session ID
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for loading a memory
type GetInput struct {
	SessionID string
}

// GetOutput defines the output for loading a memory
type GetOutput struct {
	Memory *techbase.Memory
}

// SaveInput defines the input for saving a memory
type SaveInput struct {
	SessionID string
	Memory    *techbase.Memory
}

// SaveOutput defines the output for saving a memory
type SaveOutput struct{}

// DeleteInput defines the input for deleting a memory
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a memory
type DeleteOutput struct{}
