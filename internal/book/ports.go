package book

import (
	"context"
)

// Repository defines the contract for book data storage. Implementations
// perform no semantic validation; they receive already validated entities.
type Repository interface {
	// FindAll returns every book, newest id first.
	FindAll(ctx context.Context) ([]Book, error)
	// FindByID returns (nil, nil) when no book has the given id.
	FindByID(ctx context.Context, id int64) (*Book, error)
	// Create persists a new book and returns it with the assigned id.
	Create(ctx context.Context, b *Book) (*Book, error)
	// Update rewrites the row for id, preserving its original CreatedAt.
	Update(ctx context.Context, id int64, b *Book) (*Book, error)
	// Delete removes the row for id, reporting false when nothing was
	// removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
