package book

import "time"

// Book is a catalog record. Optional fields are pointers so an absent value
// survives the round-trip through storage as NULL.
type Book struct {
	ID              *int64     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	PublicationYear int        `json:"publication_year"`
	Publisher       *string    `json:"publisher,omitempty"`
	Genre           *string    `json:"genre,omitempty"`
	AcquisitionDate *string    `json:"acquisition_date,omitempty"` // DD/MM/YYYY
	PageCount       *int       `json:"page_count,omitempty"`
	Description     *string    `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Touch refreshes UpdatedAt. Every mutation of business fields must be
// followed by a Touch before the row is written back; CreatedAt never
// changes after construction.
func (b *Book) Touch() {
	now := time.Now().UTC()
	b.UpdatedAt = &now
}
