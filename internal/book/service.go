package book

import (
	"context"
	"log/slog"
)

// Service sequences validation and persistence. Every failure is logged
// with its operation context and returned unchanged, so callers can still
// branch on the error kind.
type Service struct {
	repo      Repository
	validator *Validator
	logger    *slog.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, validator: NewValidator(), logger: logger}
}

// GetAllBooks returns every book, newest first.
func (s *Service) GetAllBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("erro ao obter todos os livros", "err", err)
		return nil, err
	}
	return books, nil
}

// GetBookByID returns the book with the given id, or nil when it does not
// exist. A missing book is not an error here.
func (s *Service) GetBookByID(ctx context.Context, id int64) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao obter livro por ID", "id", id, "err", err)
		return nil, err
	}
	return b, nil
}

// CreateBook runs raw input through parse, validate and persist.
func (s *Service) CreateBook(ctx context.Context, raw RawInput) (*Book, error) {
	created, err := s.createBook(ctx, raw)
	if err != nil {
		s.logger.Error("erro ao criar livro", "err", err)
		return nil, err
	}
	return created, nil
}

func (s *Service) createBook(ctx context.Context, raw RawInput) (*Book, error) {
	in, err := ParseCreateInput(raw)
	if err != nil {
		return nil, err
	}
	b := in.ToBook()
	if err := s.validator.ValidateBook(b); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, b)
}

// UpdateBook loads the book, merges the provided fields onto it, validates
// the result and persists it. A missing id fails with a not-found error.
func (s *Service) UpdateBook(ctx context.Context, id int64, raw RawInput) (*Book, error) {
	updated, err := s.updateBook(ctx, id, raw)
	if err != nil {
		s.logger.Error("erro ao atualizar livro", "id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

func (s *Service) updateBook(ctx context.Context, id int64, raw RawInput) (*Book, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFoundError(id)
	}

	in, err := ParseUpdateInput(id, raw)
	if err != nil {
		return nil, err
	}
	in.ApplyTo(existing)

	if err := s.validator.ValidateBook(existing); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, existing)
}

// DeleteBook removes the book with the given id. A missing id fails with a
// not-found error; the returned flag reports whether a row was removed.
func (s *Service) DeleteBook(ctx context.Context, id int64) (bool, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao deletar livro", "id", id, "err", err)
		return false, err
	}
	if existing == nil {
		err := NotFoundError(id)
		s.logger.Error("erro ao deletar livro", "id", id, "err", err)
		return false, err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao deletar livro", "id", id, "err", err)
		return false, err
	}
	return removed, nil
}
