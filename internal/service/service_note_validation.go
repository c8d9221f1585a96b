// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package service

import (
	"context"
	"fmt"

	"github.com/mkarpekin/go-notes-keeper/internal/validators"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// NoteValidationService decorates a NoteService with request validation so
// malformed input is rejected before it reaches the repository. Read paths
// with no client-supplied body (GetNote) pass through untouched.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

// NewNoteValidationService returns a wrapper that validates note requests.
// Call Wrap with the service to decorate before first use.
func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{
		validator: validator,
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID string, req models.NoteCreateRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, userID, req)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, userID string, filter models.NoteListFilter) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListNotes(ctx, userID, filter)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, userID, noteID string, req models.NoteUpdateRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, userID, noteID, req)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID string, version int64) error {
	// the version travels as a query parameter, not a struct, so the rule
	// lives here instead of a validate tag
	if version <= 0 {
		return fmt.Errorf("%w: a positive note version is required for deletion", ErrInvalidDataProvided)
	}

	return v.inner.DeleteNote(ctx, userID, noteID, version)
}

// Wrap installs the decorated service and returns the decorator itself.
func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
