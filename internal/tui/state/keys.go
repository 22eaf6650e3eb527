package state

import "github.com/charmbracelet/bubbles/key"

// listKeys holds key bindings for the catalog list.
type listKeys struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Search    key.Binding
	NextType  key.Binding
	PrevType  key.Binding
	FavOnly   key.Binding
	Favorite  key.Binding
	Open      key.Binding
	Retry     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextType, k.FavOnly, k.Favorite, k.Open, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Search, k.NextType, k.PrevType, k.FavOnly},
		{k.Favorite, k.Open, k.Retry},
		{k.Help, k.Quit},
	}
}

// detailKeys holds key bindings for the detail overlay.
type detailKeys struct {
	Favorite key.Binding
	Close    key.Binding
}

// ShortHelp returns the overlay bindings for the help bar.
func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Favorite, k.Close}
}

// FullHelp returns the overlay bindings grouped for expanded help.
func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Favorite, k.Close}}
}

// searchKeys holds key bindings while the search input is focused.
type searchKeys struct {
	Done key.Binding
}

// ShortHelp returns the search bindings for the help bar.
func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Done}
}

// FullHelp returns the search bindings grouped for expanded help.
func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Done}}
}

// ListKeyMap returns the key bindings for the catalog list.
func ListKeyMap() listKeys {
	return listKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next type"),
		),
		PrevType: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "prev type"),
		),
		FavOnly: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites only"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "favorite"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry load"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// DetailKeyMap returns the key bindings for the detail overlay.
func DetailKeyMap() detailKeys {
	return detailKeys{
		Favorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "favorite"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc/q", "close"),
		),
	}
}

// SearchKeyMap returns the key bindings while searching.
func SearchKeyMap() searchKeys {
	return searchKeys{
		Done: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc/enter", "done"),
		),
	}
}
