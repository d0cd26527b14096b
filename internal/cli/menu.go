package cli

// MenuOption identifies a main-menu action by the digit the user types.
type MenuOption string

const (
	OptionListBooks  MenuOption = "1"
	OptionFindBook   MenuOption = "2"
	OptionCreateBook MenuOption = "3"
	OptionUpdateBook MenuOption = "4"
	OptionDeleteBook MenuOption = "5"
	OptionExit       MenuOption = "0"
)

// MenuChoice pairs an option with its menu label.
type MenuChoice struct {
	Label string
	Value MenuOption
}

// MenuChoices is the main menu in display order.
var MenuChoices = []MenuChoice{
	{"1. Listar todos os livros", OptionListBooks},
	{"2. Buscar livro por ID", OptionFindBook},
	{"3. Cadastrar novo livro", OptionCreateBook},
	{"4. Atualizar livro", OptionUpdateBook},
	{"5. Deletar livro", OptionDeleteBook},
	{"0. Sair", OptionExit},
}
