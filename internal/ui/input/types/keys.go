package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It feeds both key matching and the help bar.
type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	PageSize   key.Binding
	PageSizeDn key.Binding
	SalaryMin  key.Binding
	SalaryMax  key.Binding
	Reset      key.Binding
	Sort       key.Binding
	SortDir    key.Binding
	SortPick   key.Binding
	Export     key.Binding
	Refresh    key.Binding
	Toggle     key.Binding
	Import     key.Binding
	Crawl      key.Binding
	AddJob     key.Binding
	Logs       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Keys is the shared key map
var Keys = KeyMap{
	NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev tab")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Edit:       key.NewBinding(key.WithKeys("/", "e", "enter"), key.WithHelp("/", "edit")),
	NextPage:   key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
	PrevPage:   key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
	PageSize:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
	PageSizeDn: key.NewBinding(key.WithKeys("-")),
	SalaryMin:  key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "min salary")),
	SalaryMax:  key.NewBinding(key.WithKeys("{", "}"), key.WithHelp("{ }", "max salary")),
	Reset:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
	Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
	SortDir:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sort direction")),
	SortPick:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "pick sort")),
	Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
	Refresh:    key.NewBinding(key.WithKeys("R", "ctrl+r"), key.WithHelp("R", "reload")),
	Toggle:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle crawl")),
	Import:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	Crawl:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "crawl")),
	AddJob:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add job")),
	Logs:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view logs")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// TabKeys is the help.KeyMap for one tab
type TabKeys struct {
	Short []key.Binding
}

func (k TabKeys) ShortHelp() []key.Binding { return k.Short }

func (k TabKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.Short} }
