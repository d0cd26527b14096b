package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcli/internal/dateutil"
)

// PostgresRepo persists books in the books table. Acquisition dates cross
// this boundary in display form and are stored as DATE columns.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `id, title, author, publication_year, publisher, genre, acquisition_date, page_count, description, created_at, updated_at`

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY id DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, storageFailure("findAll", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, storageFailure("findAll", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageFailure("findAll", err)
	}
	return books, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (*Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageFailure("findById", err)
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) (*Book, error) {
	const query = `
		INSERT INTO books (title, author, publication_year, publisher, genre,
		                   acquisition_date, page_count, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	acquired, err := acquisitionColumn(b)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var id int64
	err = r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.PublicationYear, b.Publisher, b.Genre,
		acquired, b.PageCount, b.Description, b.CreatedAt, b.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, storageFailure("create", err)
	}

	b.ID = &id
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, b *Book) (*Book, error) {
	// created_at is deliberately absent from the SET list so the original
	// value survives every update.
	const query = `
		UPDATE books SET
			title = $1,
			author = $2,
			publication_year = $3,
			publisher = $4,
			genre = $5,
			acquisition_date = $6,
			page_count = $7,
			description = $8,
			updated_at = $9
		WHERE id = $10`

	acquired, err := acquisitionColumn(b)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		b.Title, b.Author, b.PublicationYear, b.Publisher, b.Genre,
		acquired, b.PageCount, b.Description, b.UpdatedAt, id,
	)
	if err != nil {
		return nil, storageFailure("update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, NotFoundError(id)
	}

	b.ID = &id
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return false, storageFailure("delete", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanBook(row pgx.Row) (*Book, error) {
	var b Book
	var acquired *time.Time
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Publisher, &b.Genre,
		&acquired, &b.PageCount, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if acquired != nil {
		display := dateutil.Format(*acquired)
		b.AcquisitionDate = &display
	}
	return &b, nil
}

func acquisitionColumn(b *Book) (*time.Time, error) {
	if b.AcquisitionDate == nil || *b.AcquisitionDate == "" {
		return nil, nil
	}
	t, err := dateutil.Parse(*b.AcquisitionDate)
	if err != nil {
		return nil, invalidFormat("acquisitionDate", *b.AcquisitionDate,
			"A data de aquisição deve estar no formato DD/MM/YYYY e ser uma data válida")
	}
	return &t, nil
}
