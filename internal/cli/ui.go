package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"bookcli/internal/book"
	"bookcli/internal/dateutil"
)

// UserInterface handles every prompt and render of the terminal menu.
// Prompt methods re-ask until the input is acceptable, the way the
// interactive flow expects; they only fail when the input stream ends.
type UserInterface struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewUserInterface(in io.Reader, out io.Writer, logger *slog.Logger) *UserInterface {
	return &UserInterface{in: bufio.NewReader(in), out: out, logger: logger}
}

func (ui *UserInterface) readLine() (string, error) {
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (ui *UserInterface) prompt(label string) (string, error) {
	fmt.Fprintf(ui.out, "%s ", label)
	return ui.readLine()
}

// ShowMenu renders the main menu and returns the chosen option.
func (ui *UserInterface) ShowMenu(choices []MenuChoice) (MenuOption, error) {
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, color.Style{color.FgBlue, color.OpBold}.Sprint("SISTEMA DE GERENCIAMENTO DE LIVROS"))
	fmt.Fprintln(ui.out)
	for _, c := range choices {
		fmt.Fprintln(ui.out, c.Label)
	}

	for {
		answer, err := ui.prompt("Escolha uma opção:")
		if err != nil {
			return "", err
		}
		for _, c := range choices {
			if answer == string(c.Value) {
				return c.Value, nil
			}
		}
		ui.DisplayWarning("Opção inválida.")
	}
}

// PromptForID asks for a book id until a valid number is typed.
func (ui *UserInterface) PromptForID(message string) (int64, error) {
	for {
		answer, err := ui.prompt(message)
		if err != nil {
			return 0, err
		}
		id, convErr := strconv.ParseInt(answer, 10, 64)
		if convErr != nil || id <= 0 {
			ui.DisplayWarning("Por favor, digite um número válido")
			continue
		}
		return id, nil
	}
}

// PromptForBookData collects the raw book fields. With an existing book the
// prompts show the current values and blank answers keep them; without one,
// required fields re-ask until filled.
func (ui *UserInterface) PromptForBookData(existing *book.Book) (book.RawInput, error) {
	var raw book.RawInput
	var err error

	isUpdate := existing != nil

	if isUpdate {
		raw.Title, err = ui.prompt(fmt.Sprintf("Título (atual: %s):", existing.Title))
	} else {
		raw.Title, err = ui.promptRequired("Título do livro*:", "O título é obrigatório")
	}
	if err != nil {
		return raw, err
	}

	if isUpdate {
		raw.Author, err = ui.prompt(fmt.Sprintf("Autor (atual: %s):", existing.Author))
	} else {
		raw.Author, err = ui.promptRequired("Autor do livro*:", "O autor é obrigatório")
	}
	if err != nil {
		return raw, err
	}

	yearLabel := "Ano de publicação*:"
	if isUpdate {
		yearLabel = fmt.Sprintf("Ano de publicação (atual: %d):", existing.PublicationYear)
	}
	raw.PublicationYear, err = ui.promptYear(yearLabel, isUpdate)
	if err != nil {
		return raw, err
	}

	publisherLabel := "Editora:"
	if isUpdate {
		publisherLabel = fmt.Sprintf("Editora (atual: %s):", textOrDefault(existing.Publisher, "Não informada"))
	}
	raw.Publisher, err = ui.prompt(publisherLabel)
	if err != nil {
		return raw, err
	}

	genreLabel := "Gênero:"
	if isUpdate {
		genreLabel = fmt.Sprintf("Gênero (atual: %s):", textOrDefault(existing.Genre, "Não informado"))
	}
	raw.Genre, err = ui.prompt(genreLabel)
	if err != nil {
		return raw, err
	}

	dateLabel := "Data de aquisição (formato DD/MM/YYYY):"
	if isUpdate {
		dateLabel = fmt.Sprintf("Data de aquisição (atual: %s, formato DD/MM/YYYY):",
			textOrDefault(existing.AcquisitionDate, "Não informada"))
	}
	raw.AcquisitionDate, err = ui.promptAcquisitionDate(dateLabel)
	if err != nil {
		return raw, err
	}

	pagesLabel := "Número de páginas:"
	if isUpdate {
		current := "Não informado"
		if existing.PageCount != nil {
			current = strconv.Itoa(*existing.PageCount)
		}
		pagesLabel = fmt.Sprintf("Número de páginas (atual: %s):", current)
	}
	raw.PageCount, err = ui.promptPageCount(pagesLabel)
	if err != nil {
		return raw, err
	}

	descriptionLabel := "Descrição:"
	if isUpdate {
		descriptionLabel = fmt.Sprintf("Descrição (atual: %s):", textOrDefault(existing.Description, "Não informada"))
	}
	raw.Description, err = ui.prompt(descriptionLabel)
	if err != nil {
		return raw, err
	}

	return raw, nil
}

func (ui *UserInterface) promptRequired(label, warning string) (string, error) {
	for {
		answer, err := ui.prompt(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		ui.DisplayWarning(warning)
	}
}

func (ui *UserInterface) promptYear(label string, allowBlank bool) (string, error) {
	for {
		answer, err := ui.prompt(label)
		if err != nil {
			return "", err
		}
		if answer == "" {
			if allowBlank {
				return "", nil
			}
			ui.DisplayWarning("O ano de publicação é obrigatório")
			continue
		}
		year, convErr := strconv.Atoi(answer)
		if convErr != nil || !isDigits(answer) {
			ui.DisplayWarning("Por favor, digite um número inteiro positivo")
			continue
		}
		maxYear := book.MaxPublicationYear()
		if year < book.MinPublicationYear {
			ui.DisplayWarning(fmt.Sprintf("O ano deve ser maior que %d", book.MinPublicationYear-1))
			continue
		}
		if year > maxYear {
			ui.DisplayWarning(fmt.Sprintf("O ano não pode ser maior que %d", maxYear))
			continue
		}
		return answer, nil
	}
}

func (ui *UserInterface) promptAcquisitionDate(label string) (string, error) {
	for {
		answer, err := ui.prompt(label)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", nil
		}
		parsed, parseErr := dateutil.Parse(answer)
		if parseErr != nil {
			ui.DisplayWarning("Por favor, digite uma data válida no formato DD/MM/YYYY")
			continue
		}
		if parsed.After(dateutil.Today()) {
			ui.DisplayWarning("A data de aquisição não pode ser uma data futura")
			continue
		}
		return answer, nil
	}
}

func (ui *UserInterface) promptPageCount(label string) (string, error) {
	for {
		answer, err := ui.prompt(label)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", nil
		}
		count, convErr := strconv.Atoi(answer)
		if convErr != nil || !isDigits(answer) {
			ui.DisplayWarning("Por favor, digite um número inteiro positivo")
			continue
		}
		if count < book.MinPageCount {
			ui.DisplayWarning(fmt.Sprintf("O número de páginas deve ser pelo menos %d", book.MinPageCount))
			continue
		}
		return answer, nil
	}
}

// ConfirmDeletion asks for confirmation before a delete. Only an explicit
// "s" confirms.
func (ui *UserInterface) ConfirmDeletion(title, author string) (bool, error) {
	answer, err := ui.prompt(fmt.Sprintf("Tem certeza que deseja deletar o livro %q de %s? (s/N)", title, author))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "s"), nil
}

// WaitForEnter pauses until the user presses ENTER.
func (ui *UserInterface) WaitForEnter() error {
	_, err := ui.prompt("Pressione ENTER para voltar ao menu principal...")
	return err
}

func (ui *UserInterface) DisplayBookDetails(b *book.Book) {
	lastUpdate := "Sem atualização"
	if b.UpdatedAt != nil {
		lastUpdate = b.UpdatedAt.Local().Format("02/01/2006 15:04:05")
	}

	fmt.Fprintln(ui.out, color.Green.Sprint("Livro encontrado:"))
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, color.Cyan.Sprintf("ID: %d", derefID(b.ID)))
	fmt.Fprintf(ui.out, "Título: %s\n", b.Title)
	fmt.Fprintf(ui.out, "Autor: %s\n", b.Author)
	fmt.Fprintf(ui.out, "Ano de Publicação: %d\n", b.PublicationYear)
	fmt.Fprintf(ui.out, "Editora: %s\n", textOrDefault(b.Publisher, "Não informada"))
	fmt.Fprintf(ui.out, "Gênero: %s\n", textOrDefault(b.Genre, "Não informado"))
	fmt.Fprintf(ui.out, "Data de Aquisição: %s\n", textOrDefault(b.AcquisitionDate, "Não informada"))
	pages := "Não informado"
	if b.PageCount != nil {
		pages = strconv.Itoa(*b.PageCount)
	}
	fmt.Fprintf(ui.out, "Número de Páginas: %s\n", pages)
	fmt.Fprintf(ui.out, "Descrição: %s\n", textOrDefault(b.Description, "Não informada"))
	fmt.Fprintf(ui.out, "Data de Criação: %s\n", b.CreatedAt.Local().Format("02/01/2006 15:04:05"))
	fmt.Fprintf(ui.out, "Última Atualização: %s\n", lastUpdate)
}

func (ui *UserInterface) DisplayBookList(books []book.Book) {
	if len(books) == 0 {
		fmt.Fprintln(ui.out, color.Yellow.Sprint("Nenhum livro cadastrado."))
		return
	}

	fmt.Fprintln(ui.out, color.Green.Sprintf("Total de livros: %d", len(books)))

	for _, b := range books {
		fmt.Fprintln(ui.out, color.Cyan.Sprintf("ID: %d", derefID(b.ID)))
		fmt.Fprintf(ui.out, "Título: %s\n", b.Title)
		fmt.Fprintf(ui.out, "Autor: %s\n", b.Author)
		fmt.Fprintf(ui.out, "Ano: %d\n", b.PublicationYear)
		fmt.Fprintf(ui.out, "Editora: %s\n", textOrDefault(b.Publisher, "Não informada"))
		fmt.Fprintf(ui.out, "Gênero: %s\n", textOrDefault(b.Genre, "Não informado"))
		fmt.Fprintln(ui.out, color.Gray.Sprint("------------------------"))
	}
}

func (ui *UserInterface) DisplayHeader(title string) {
	fmt.Fprintf(ui.out, "\n%s\n\n", title)
}

func (ui *UserInterface) DisplaySuccess(message string) {
	fmt.Fprintln(ui.out, color.Green.Sprint(message))
}

func (ui *UserInterface) DisplayWarning(message string) {
	fmt.Fprintln(ui.out, color.Yellow.Sprint(message))
}

func (ui *UserInterface) DisplayError(message string) {
	fmt.Fprintln(ui.out, color.Red.Sprintf("Erro: %s", message))
	ui.logger.Error(message)
}

func (ui *UserInterface) DisplayGoodbye() {
	fmt.Fprintln(ui.out, color.Green.Sprint("Obrigado por usar o sistema!"))
}

func textOrDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
