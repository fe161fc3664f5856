// Package mechdraft defines persistence for mech drafts
package mechdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=mechdraftmock github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft Repository

import (
	"context"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

// Repository stores drafts by ID and indexes them by owner
type Repository interface {
	// Create stores a new draft
	// Returns errors.InvalidArgument for a nil draft or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing draft and refreshes its expiry
	// Returns errors.InvalidArgument for a nil draft or empty ID
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft and its owner index entry
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns an owner's drafts, most recently updated first
	// Returns errors.InvalidArgument for an empty owner ID
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *mech.Draft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Draft *mech.Draft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *mech.Draft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *mech.Draft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Draft *mech.Draft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's drafts
type ListByOwnerInput struct {
	OwnerID string
	// Limit caps the number of drafts returned. Zero means no limit.
	Limit int
}

// ListByOwnerOutput defines the output for listing an owner's drafts
type ListByOwnerOutput struct {
	Drafts []*mech.Draft
}
