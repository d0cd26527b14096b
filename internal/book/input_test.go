package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateInput(t *testing.T) {
	t.Run("full input", func(t *testing.T) {
		in, err := ParseCreateInput(RawInput{
			Title:           "  O Hobbit  ",
			Author:          "J.R.R. Tolkien",
			PublicationYear: "1937",
			Publisher:       "HarperCollins",
			Genre:           "Fantasia",
			AcquisitionDate: "15/08/2023",
			PageCount:       "310",
			Description:     "Lá e de volta outra vez.",
		})
		require.NoError(t, err)
		assert.Equal(t, "O Hobbit", in.Title)
		assert.Equal(t, "J.R.R. Tolkien", in.Author)
		assert.Equal(t, 1937, in.PublicationYear)
		require.NotNil(t, in.PageCount)
		assert.Equal(t, 310, *in.PageCount)
		require.NotNil(t, in.AcquisitionDate)
		assert.Equal(t, "15/08/2023", *in.AcquisitionDate)
	})

	t.Run("blank optionals become nil", func(t *testing.T) {
		in, err := ParseCreateInput(RawInput{
			Title:           "Dom Casmurro",
			Author:          "Machado de Assis",
			PublicationYear: "1899",
			Publisher:       "   ",
		})
		require.NoError(t, err)
		assert.Nil(t, in.Publisher)
		assert.Nil(t, in.Genre)
		assert.Nil(t, in.AcquisitionDate)
		assert.Nil(t, in.PageCount)
		assert.Nil(t, in.Description)
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name  string
			raw   RawInput
			field string
		}{
			{"blank title", RawInput{Title: "   ", Author: "A", PublicationYear: "2000"}, "title"},
			{"blank author", RawInput{Title: "T", PublicationYear: "2000"}, "author"},
			{"blank year", RawInput{Title: "T", Author: "A"}, "publicationYear"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseCreateInput(tc.raw)
				require.Error(t, err)
				assert.True(t, IsKind(err, KindMissingField))
				var de *Error
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tc.field, de.Field)
			})
		}
	})

	t.Run("malformed numerics are format errors", func(t *testing.T) {
		for _, year := range []string{"abc", "-1937", "19.37", "1937x"} {
			_, err := ParseCreateInput(RawInput{Title: "T", Author: "A", PublicationYear: year})
			require.Error(t, err, "year %q", year)
			assert.True(t, IsKind(err, KindInvalidFormat), "year %q", year)
		}

		_, err := ParseCreateInput(RawInput{Title: "T", Author: "A", PublicationYear: "2000", PageCount: "31O"})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidFormat))
	})
}

func TestCreateInput_ToBook(t *testing.T) {
	in, err := ParseCreateInput(RawInput{Title: "T", Author: "A", PublicationYear: "2000"})
	require.NoError(t, err)

	b := in.ToBook()
	assert.Nil(t, b.ID, "id stays nil until persisted")
	assert.False(t, b.CreatedAt.IsZero())
	assert.Nil(t, b.UpdatedAt)
}

func TestParseUpdateInput(t *testing.T) {
	t.Run("blank fields stay unset", func(t *testing.T) {
		in, err := ParseUpdateInput(1, RawInput{Genre: "Fantasia/Aventura"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), in.ID)
		assert.Nil(t, in.Title)
		assert.Nil(t, in.Author)
		assert.Nil(t, in.PublicationYear)
		require.NotNil(t, in.Genre)
		assert.Equal(t, "Fantasia/Aventura", *in.Genre)
	})

	t.Run("numerics parse only when provided", func(t *testing.T) {
		in, err := ParseUpdateInput(1, RawInput{PublicationYear: "1984", PageCount: "320"})
		require.NoError(t, err)
		require.NotNil(t, in.PublicationYear)
		assert.Equal(t, 1984, *in.PublicationYear)
		require.NotNil(t, in.PageCount)
		assert.Equal(t, 320, *in.PageCount)

		_, err = ParseUpdateInput(1, RawInput{PublicationYear: "abc"})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidFormat))
	})
}

func TestUpdateInput_ApplyTo(t *testing.T) {
	createdAt := time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC)
	id := int64(1)
	existing := &Book{
		ID:              &id,
		Title:           "O Hobbit",
		Author:          "J.R.R. Tolkien",
		PublicationYear: 1937,
		CreatedAt:       createdAt,
	}

	in, err := ParseUpdateInput(1, RawInput{Genre: "Fantasia/Aventura"})
	require.NoError(t, err)

	before := time.Now().UTC()
	in.ApplyTo(existing)

	assert.Equal(t, "O Hobbit", existing.Title, "unset fields keep current values")
	assert.Equal(t, "J.R.R. Tolkien", existing.Author)
	assert.Equal(t, 1937, existing.PublicationYear)
	require.NotNil(t, existing.Genre)
	assert.Equal(t, "Fantasia/Aventura", *existing.Genre)
	assert.Equal(t, createdAt, existing.CreatedAt)
	require.NotNil(t, existing.UpdatedAt)
	assert.False(t, existing.UpdatedAt.Before(before))
}
