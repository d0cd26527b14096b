// Package cli implements the interactive terminal menu over the book
// service.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"bookcli/internal/book"
)

// App runs the main menu loop. Every operation renders its outcome and
// returns to the menu; only the exit option or the end of the input stream
// leaves the loop.
type App struct {
	service *book.Service
	ui      *UserInterface
	logger  *slog.Logger
}

func NewApp(service *book.Service, ui *UserInterface, logger *slog.Logger) *App {
	return &App{service: service, ui: ui, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	a.ui.DisplaySuccess("Iniciando o Sistema de Gerenciamento de Livros...")

	for {
		option, err := a.ui.ShowMenu(MenuChoices)
		if err != nil {
			a.logger.Error("erro no menu principal", "err", err)
			return err
		}

		switch option {
		case OptionListBooks:
			err = a.listBooks(ctx)
		case OptionFindBook:
			err = a.findBookByID(ctx)
		case OptionCreateBook:
			err = a.createBook(ctx)
		case OptionUpdateBook:
			err = a.updateBook(ctx)
		case OptionDeleteBook:
			err = a.deleteBook(ctx)
		case OptionExit:
			a.ui.DisplayGoodbye()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) listBooks(ctx context.Context) error {
	a.ui.DisplayHeader("LISTA DE LIVROS")

	books, err := a.service.GetAllBooks(ctx)
	if err != nil {
		a.ui.DisplayError("Erro ao listar livros: " + err.Error())
	} else {
		a.ui.DisplayBookList(books)
	}

	return a.ui.WaitForEnter()
}

func (a *App) findBookByID(ctx context.Context) error {
	a.ui.DisplayHeader("BUSCAR LIVRO POR ID")

	id, err := a.ui.PromptForID("Digite o ID do livro:")
	if err != nil {
		return err
	}

	b, err := a.service.GetBookByID(ctx, id)
	switch {
	case err != nil:
		a.ui.DisplayError("Erro ao buscar livro: " + err.Error())
	case b == nil:
		a.ui.DisplayWarning(book.NotFoundError(id).Error() + ".")
	default:
		a.ui.DisplayBookDetails(b)
	}

	return a.ui.WaitForEnter()
}

func (a *App) createBook(ctx context.Context) error {
	a.ui.DisplayHeader("CADASTRAR NOVO LIVRO")

	raw, err := a.ui.PromptForBookData(nil)
	if err != nil {
		return err
	}

	created, err := a.service.CreateBook(ctx, raw)
	if err != nil {
		a.ui.DisplayError("Erro ao cadastrar livro: " + err.Error())
	} else {
		a.ui.DisplaySuccess(fmt.Sprintf("Livro cadastrado com sucesso! ID: %d", derefID(created.ID)))
	}

	return a.ui.WaitForEnter()
}

func (a *App) updateBook(ctx context.Context) error {
	a.ui.DisplayHeader("ATUALIZAR LIVRO")

	id, err := a.ui.PromptForID("Digite o ID do livro que deseja atualizar:")
	if err != nil {
		return err
	}

	existing, err := a.service.GetBookByID(ctx, id)
	if err != nil {
		a.ui.DisplayError("Erro ao atualizar livro: " + err.Error())
		return a.ui.WaitForEnter()
	}
	if existing == nil {
		a.ui.DisplayWarning(book.NotFoundError(id).Error() + ".")
		return a.ui.WaitForEnter()
	}

	a.ui.DisplaySuccess("Livro encontrado: \"" + existing.Title + "\" de " + existing.Author)
	a.ui.DisplayWarning("Preencha os novos dados do livro (deixe em branco para manter o valor atual):")

	raw, err := a.ui.PromptForBookData(existing)
	if err != nil {
		return err
	}

	if _, err := a.service.UpdateBook(ctx, id, raw); err != nil {
		if book.IsNotFound(err) {
			a.ui.DisplayWarning(err.Error() + ".")
		} else {
			a.ui.DisplayError("Erro ao atualizar livro: " + err.Error())
		}
	} else {
		a.ui.DisplaySuccess(fmt.Sprintf("Livro com ID %d atualizado com sucesso!", id))
	}

	return a.ui.WaitForEnter()
}

func (a *App) deleteBook(ctx context.Context) error {
	a.ui.DisplayHeader("DELETAR LIVRO")

	id, err := a.ui.PromptForID("Digite o ID do livro que deseja deletar:")
	if err != nil {
		return err
	}

	existing, err := a.service.GetBookByID(ctx, id)
	if err != nil {
		a.ui.DisplayError("Erro ao deletar livro: " + err.Error())
		return a.ui.WaitForEnter()
	}
	if existing == nil {
		a.ui.DisplayWarning(book.NotFoundError(id).Error() + ".")
		return a.ui.WaitForEnter()
	}

	confirmed, err := a.ui.ConfirmDeletion(existing.Title, existing.Author)
	if err != nil {
		return err
	}
	if !confirmed {
		a.ui.DisplayWarning("Operação cancelada.")
		return a.ui.WaitForEnter()
	}

	if _, err := a.service.DeleteBook(ctx, id); err != nil {
		if book.IsNotFound(err) {
			a.ui.DisplayWarning(err.Error() + ".")
		} else {
			a.ui.DisplayError("Erro ao deletar livro: " + err.Error())
		}
	} else {
		a.ui.DisplaySuccess(fmt.Sprintf("Livro com ID %d deletado com sucesso!", id))
	}

	return a.ui.WaitForEnter()
}
