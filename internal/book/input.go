package book

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Numeric fields must be unsigned digit runs: no sign, no decimal point.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// RawInput carries field values exactly as typed at the prompt. An empty
// string means the field was not provided.
type RawInput struct {
	Title           string
	Author          string
	PublicationYear string
	Publisher       string
	Genre           string
	AcquisitionDate string
	PageCount       string
	Description     string
}

// CreateInput is the sanitized form of RawInput for a new book: required
// fields present and trimmed, optional fields trimmed to nil when blank.
type CreateInput struct {
	Title           string
	Author          string
	PublicationYear int
	Publisher       *string
	Genre           *string
	AcquisitionDate *string
	PageCount       *int
	Description     *string
}

// ParseCreateInput sanitizes raw input for creation. Parsing is eager: the
// first missing or malformed field aborts with the matching error kind.
func ParseCreateInput(raw RawInput) (*CreateInput, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return nil, missingField("title", "O título do livro é obrigatório.")
	}

	author := strings.TrimSpace(raw.Author)
	if author == "" {
		return nil, missingField("author", "O autor do livro é obrigatório.")
	}

	yearText := strings.TrimSpace(raw.PublicationYear)
	if yearText == "" {
		return nil, missingField("publicationYear", "O ano de publicação é obrigatório.")
	}
	year, err := parseDigits("publicationYear", yearText, "O ano de publicação deve ser um número.")
	if err != nil {
		return nil, err
	}

	in := &CreateInput{
		Title:           title,
		Author:          author,
		PublicationYear: year,
		Publisher:       optionalText(raw.Publisher),
		Genre:           optionalText(raw.Genre),
		AcquisitionDate: optionalText(raw.AcquisitionDate),
		Description:     optionalText(raw.Description),
	}

	if s := strings.TrimSpace(raw.PageCount); s != "" {
		count, err := parseDigits("pageCount", s, "O número de páginas deve ser um número.")
		if err != nil {
			return nil, err
		}
		in.PageCount = &count
	}

	return in, nil
}

// ToBook builds a fresh entity from the sanitized input. CreatedAt is set
// here, once; the id stays nil until the repository assigns one.
func (in *CreateInput) ToBook() *Book {
	return &Book{
		Title:           in.Title,
		Author:          in.Author,
		PublicationYear: in.PublicationYear,
		Publisher:       in.Publisher,
		Genre:           in.Genre,
		AcquisitionDate: in.AcquisitionDate,
		PageCount:       in.PageCount,
		Description:     in.Description,
		CreatedAt:       time.Now().UTC(),
	}
}

// UpdateInput holds a partial update. Nil means "keep the current value".
// Blank input is folded into nil as well, so an optional field cannot be
// cleared back to empty through an update.
type UpdateInput struct {
	ID              int64
	Title           *string
	Author          *string
	PublicationYear *int
	Publisher       *string
	Genre           *string
	AcquisitionDate *string
	PageCount       *int
	Description     *string
}

// ParseUpdateInput sanitizes raw input for an update of the given id.
// Numeric fields follow the same digits-only rule as creation, but only
// when provided.
func ParseUpdateInput(id int64, raw RawInput) (*UpdateInput, error) {
	in := &UpdateInput{
		ID:              id,
		Title:           optionalText(raw.Title),
		Author:          optionalText(raw.Author),
		Publisher:       optionalText(raw.Publisher),
		Genre:           optionalText(raw.Genre),
		AcquisitionDate: optionalText(raw.AcquisitionDate),
		Description:     optionalText(raw.Description),
	}

	if s := strings.TrimSpace(raw.PublicationYear); s != "" {
		year, err := parseDigits("publicationYear", s, "O ano de publicação deve ser um número.")
		if err != nil {
			return nil, err
		}
		in.PublicationYear = &year
	}

	if s := strings.TrimSpace(raw.PageCount); s != "" {
		count, err := parseDigits("pageCount", s, "O número de páginas deve ser um número.")
		if err != nil {
			return nil, err
		}
		in.PageCount = &count
	}

	return in, nil
}

// ApplyTo merges the provided fields onto a loaded entity and refreshes its
// update timestamp. Unset fields keep the entity's current values.
func (in *UpdateInput) ApplyTo(b *Book) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.PublicationYear != nil {
		b.PublicationYear = *in.PublicationYear
	}
	if in.Publisher != nil {
		b.Publisher = in.Publisher
	}
	if in.Genre != nil {
		b.Genre = in.Genre
	}
	if in.AcquisitionDate != nil {
		b.AcquisitionDate = in.AcquisitionDate
	}
	if in.PageCount != nil {
		b.PageCount = in.PageCount
	}
	if in.Description != nil {
		b.Description = in.Description
	}
	b.Touch()
}

func optionalText(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

func parseDigits(field, value, message string) (int, error) {
	if !digitsOnly.MatchString(value) {
		return 0, invalidFormat(field, value, message)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalidFormat(field, value, message)
	}
	return n, nil
}
