// Package errors provides structured errors for the mech construction service.
//
// Errors carry a Code, a user-facing message, an optional cause and free-form
// metadata. Codes map onto gRPC status codes and HTTP statuses.
//
// # Basic Usage
//
//	err := errors.NotFound("draft not found")
//	err := errors.InvalidArgumentf("unknown location: %s", loc)
//
// Adding metadata:
//
//	err := errors.NotFound("draft not found").
//	    WithMeta("draft_id", draftID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get draft")
//	}
//
// # Construction Failures
//
// Building a draft can fail atomically with INVALID_TONNAGE or
// INVALID_ENGINE_RATING. Those errors list the broken rules as reasons:
//
//	err := errors.InvalidTonnage(17, "must be a multiple of 5")
//	errors.GetReasons(err) // ["must be a multiple of 5"]
//
// Rule violations found on an existing draft (overweight, armor over the
// maximum, ...) are never errors; they are reported by the validation
// package.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("draftID", input.DraftID, vb)
//	errors.ValidateRange("tonnage", input.Tonnage, 20, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). The domain code and metadata travel
// as a structpb detail so errors.FromGRPCError restores them on the client.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / InvalidArgument, wrap Redis failures
//
// Orchestrator layer:
//   - Validate inputs, check preconditions (FailedPrecondition)
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
package errors
