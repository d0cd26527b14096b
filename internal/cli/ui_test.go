package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcli/internal/book"
)

func newTestUI(input string) (*UserInterface, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserInterface(strings.NewReader(input), out, logger), out
}

func TestShowMenu(t *testing.T) {
	t.Run("valid option", func(t *testing.T) {
		ui, out := newTestUI("1\n")
		option, err := ui.ShowMenu(MenuChoices)
		require.NoError(t, err)
		assert.Equal(t, OptionListBooks, option)
		assert.Contains(t, out.String(), "SISTEMA DE GERENCIAMENTO DE LIVROS")
		assert.Contains(t, out.String(), "1. Listar todos os livros")
	})

	t.Run("invalid option re-asks", func(t *testing.T) {
		ui, out := newTestUI("9\n0\n")
		option, err := ui.ShowMenu(MenuChoices)
		require.NoError(t, err)
		assert.Equal(t, OptionExit, option)
		assert.Contains(t, out.String(), "Opção inválida.")
	})
}

func TestPromptForID(t *testing.T) {
	t.Run("accepts a number", func(t *testing.T) {
		ui, _ := newTestUI("12\n")
		id, err := ui.PromptForID("Digite o ID do livro:")
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})

	t.Run("re-asks on junk", func(t *testing.T) {
		ui, out := newTestUI("abc\n-3\n7\n")
		id, err := ui.PromptForID("Digite o ID do livro:")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Contains(t, out.String(), "Por favor, digite um número válido")
	})

	t.Run("fails when input ends", func(t *testing.T) {
		ui, _ := newTestUI("")
		_, err := ui.PromptForID("Digite o ID do livro:")
		assert.Error(t, err)
	})
}

func TestPromptForBookData_Create(t *testing.T) {
	// title, author, year, publisher, genre, date, pages, description
	ui, out := newTestUI("\nO Hobbit\nJ.R.R. Tolkien\n1937\nHarperCollins\nFantasia\n15/08/2023\n310\n\n")

	raw, err := ui.PromptForBookData(nil)
	require.NoError(t, err)

	assert.Equal(t, "O Hobbit", raw.Title)
	assert.Equal(t, "J.R.R. Tolkien", raw.Author)
	assert.Equal(t, "1937", raw.PublicationYear)
	assert.Equal(t, "HarperCollins", raw.Publisher)
	assert.Equal(t, "Fantasia", raw.Genre)
	assert.Equal(t, "15/08/2023", raw.AcquisitionDate)
	assert.Equal(t, "310", raw.PageCount)
	assert.Empty(t, raw.Description)

	// The blank first answer for the required title re-asked.
	assert.Contains(t, out.String(), "O título é obrigatório")
}

func TestPromptForBookData_Update(t *testing.T) {
	id := int64(1)
	genre := "Fantasia"
	existing := &book.Book{
		ID:              &id,
		Title:           "O Hobbit",
		Author:          "J.R.R. Tolkien",
		PublicationYear: 1937,
		Genre:           &genre,
		CreatedAt:       time.Now().UTC(),
	}

	// Blank answers keep the current values; only the genre changes.
	ui, out := newTestUI("\n\n\n\nFantasia/Aventura\n\n\n\n")

	raw, err := ui.PromptForBookData(existing)
	require.NoError(t, err)

	assert.Empty(t, raw.Title)
	assert.Empty(t, raw.Author)
	assert.Empty(t, raw.PublicationYear)
	assert.Equal(t, "Fantasia/Aventura", raw.Genre)

	assert.Contains(t, out.String(), "Título (atual: O Hobbit):")
	assert.Contains(t, out.String(), "Gênero (atual: Fantasia):")
}

func TestConfirmDeletion(t *testing.T) {
	t.Run("explicit s confirms", func(t *testing.T) {
		ui, _ := newTestUI("s\n")
		ok, err := ui.ConfirmDeletion("O Hobbit", "J.R.R. Tolkien")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("anything else declines", func(t *testing.T) {
		for _, answer := range []string{"n\n", "\n", "sim\n"} {
			ui, _ := newTestUI(answer)
			ok, err := ui.ConfirmDeletion("O Hobbit", "J.R.R. Tolkien")
			require.NoError(t, err)
			assert.False(t, ok, "answer %q", answer)
		}
	})
}

func TestDisplayBookList(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		ui, out := newTestUI("")
		ui.DisplayBookList(nil)
		assert.Contains(t, out.String(), "Nenhum livro cadastrado.")
	})

	t.Run("lists every book", func(t *testing.T) {
		ui, out := newTestUI("")
		id := int64(1)
		ui.DisplayBookList([]book.Book{{ID: &id, Title: "O Hobbit", Author: "J.R.R. Tolkien", PublicationYear: 1937}})
		assert.Contains(t, out.String(), "Total de livros: 1")
		assert.Contains(t, out.String(), "Título: O Hobbit")
		assert.Contains(t, out.String(), "Editora: Não informada")
	})
}

func TestDisplayBookDetails(t *testing.T) {
	ui, out := newTestUI("")
	id := int64(3)
	pages := 310
	date := "15/08/2023"
	ui.DisplayBookDetails(&book.Book{
		ID:              &id,
		Title:           "O Hobbit",
		Author:          "J.R.R. Tolkien",
		PublicationYear: 1937,
		AcquisitionDate: &date,
		PageCount:       &pages,
		CreatedAt:       time.Now().UTC(),
	})

	assert.Contains(t, out.String(), "ID: 3")
	assert.Contains(t, out.String(), "Data de Aquisição: 15/08/2023")
	assert.Contains(t, out.String(), "Número de Páginas: 310")
	assert.Contains(t, out.String(), "Última Atualização: Sem atualização")
}
