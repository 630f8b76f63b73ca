// Package errors provides the coded errors used across the item engine.
//
// Equality under Is compares codes. A package publishes a sentinel
//
//	var ErrFull = errors.Sentinel(errors.CodeResourceExhausted, "collection is full")
//
// and callers match errors that wrap it:
//
//	if errors.Is(err, collection.ErrFull) {
//	    // drop the pickup
//	}
//
// Sentinels are matched by identity, so collection.ErrNotFound and
// registry.ErrNotFound stay apart even though both carry NOT_FOUND. An error
// built with New matches every error of its code; IsNotFound and the other
// helpers do the same.
//
// Wrap keeps the code of a coded cause. Uncoded causes become Internal.
//
// Config structs validate through a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Root", cfg.Root, vb)
//	return vb.Build()
package errors
