package book

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookcli/internal/dateutil"
)

const (
	MinPublicationYear = 1
	MinPageCount       = 1
)

// MaxPublicationYear is the current calendar year, recomputed per call so a
// long-lived process never pins the bound at its startup year.
func MaxPublicationYear() int {
	return time.Now().Year()
}

// Validator runs semantic checks over a fully built Book. It is stateless;
// the zero value is ready to use.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequiredFields checks that title, author and publication year are
// present.
func (v *Validator) ValidateRequiredFields(b *Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return missingField("title", "O título do livro é obrigatório.")
	}
	if strings.TrimSpace(b.Author) == "" {
		return missingField("author", "O autor do livro é obrigatório.")
	}
	if b.PublicationYear == 0 {
		return missingField("publicationYear", "O ano de publicação é obrigatório.")
	}
	return nil
}

// ValidatePublicationYear checks the year against
// [MinPublicationYear, MaxPublicationYear()].
func (v *Validator) ValidatePublicationYear(year int) error {
	maxYear := MaxPublicationYear()
	if year < MinPublicationYear || year > maxYear {
		return outOfBounds("publicationYear", strconv.Itoa(year),
			fmt.Sprintf("O ano de publicação deve estar entre %d e %d.", MinPublicationYear, maxYear))
	}
	return nil
}

// ValidatePageCount checks the page count when one is set. Nil is always
// valid: the field is optional.
func (v *Validator) ValidatePageCount(count *int) error {
	if count == nil {
		return nil
	}
	if *count < MinPageCount {
		return outOfBounds("pageCount", strconv.Itoa(*count), "O número de páginas deve ser maior que zero.")
	}
	return nil
}

// ValidateAcquisitionDate checks that the date, when set, is a valid
// DD/MM/YYYY calendar date no later than today. Nil or empty is always
// valid.
func (v *Validator) ValidateAcquisitionDate(date *string) error {
	if date == nil || *date == "" {
		return nil
	}
	parsed, err := dateutil.Parse(*date)
	if err != nil {
		return invalidFormat("acquisitionDate", *date,
			"A data de aquisição deve estar no formato DD/MM/YYYY e ser uma data válida")
	}
	if parsed.After(dateutil.Today()) {
		return futureDate("acquisitionDate", *date, "A data de aquisição não pode ser uma data futura")
	}
	return nil
}

// ValidateBook runs all checks in a fixed order; the first failure wins and
// nothing is aggregated.
func (v *Validator) ValidateBook(b *Book) error {
	if err := v.ValidateRequiredFields(b); err != nil {
		return err
	}
	if err := v.ValidatePublicationYear(b.PublicationYear); err != nil {
		return err
	}
	if err := v.ValidatePageCount(b.PageCount); err != nil {
		return err
	}
	return v.ValidateAcquisitionDate(b.AcquisitionDate)
}
