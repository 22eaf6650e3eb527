package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
)

// detailOverlay is the open detail panel. gen changes every time an overlay
// is opened or closed so late fetch results can be recognised.
type detailOverlay struct {
	open    bool
	gen     int
	item    domain.Item
	detail  *pokeapi.Detail
	err     error
	loading bool
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx     context.Context
	session *app.Session
	browser *app.Browser

	// Derived state
	view    domain.View
	types   []string // "all" followed by the taxonomy
	typeIdx int
	cursor  int

	// Load state
	loading bool
	loadErr error

	overlay detailOverlay

	// Widgets
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	help      help.Model
	listKeys  listKeys
	detKeys   detailKeys
	srchKeys  searchKeys

	// Status bar
	statusHandler *errors.TUIHandler
	statusSeq     int

	width  int
	height int
}

// Options configure a Model.
type Options struct {
	PageSize int
	Browser  *app.Browser
}

// NewModel creates a new TUI model over session. ctx bounds every remote call
// the model makes; cancel it to abandon in-flight work.
func NewModel(ctx context.Context, session *app.Session, opts Options) *Model {
	if session == nil {
		panic("NewModel: session dependency cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	browser := opts.Browser
	if browser == nil {
		browser = app.NewBrowser(opts.PageSize, nil)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search by name"
	ti.CharLimit = 64
	ti.Width = 24
	ti.SetValue(browser.Filter().Query)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:           ctx,
		session:       session,
		browser:       browser,
		types:         []string{domain.AllTypes},
		loading:       !session.Loaded(),
		search:        ti,
		spinner:       sp,
		help:          help.New(),
		listKeys:      ListKeyMap(),
		detKeys:       DetailKeyMap(),
		srchKeys:      SearchKeyMap(),
		statusHandler: errors.NewTUIHandler(nil),
		width:         defaultViewportWidth,
		height:        defaultViewportHeight,
	}
	if !m.loading {
		m.applyCatalog()
	}
	m.refresh()
	return m
}

// Init starts the spinner and, unless a catalog is already loaded, the load.
func (m *Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		favErr := session.LoadFavorites()
		if err := session.LoadCatalog(ctx); err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{favoritesErr: favErr}
	}
}

func (m *Model) detailCmd(gen, id int) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		d, err := session.Detail(ctx, id)
		return detailLoadedMsg{gen: gen, detail: d, err: err}
	}
}

// applyCatalog copies the taxonomy into the type selector. A selected type
// missing from the taxonomy falls back to "all".
func (m *Model) applyCatalog() {
	m.types = append([]string{domain.AllTypes}, m.session.Types()...)
	m.typeIdx = 0
	selected := m.browser.Filter().SelectedType
	if selected == "" || selected == domain.AllTypes {
		return
	}
	for i, t := range m.types {
		if t == selected {
			m.typeIdx = i
			return
		}
	}
	m.browser.SetType(domain.AllTypes)
}

// refresh recomputes the view and keeps the cursor on the page.
func (m *Model) refresh() {
	if m.loading || m.loadErr != nil {
		m.view = m.browser.View(nil, nil, true)
	} else {
		m.view = m.session.View(m.browser)
	}
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the item under the cursor.
func (m *Model) selected() (domain.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return domain.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) setStatus(text string, msgType errors.MessageType) tea.Cmd {
	switch msgType {
	case errors.MessageTypeError:
		m.statusHandler.Error(text)
	case errors.MessageTypeWarning:
		m.statusHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.statusHandler.Success(text)
	default:
		m.statusHandler.Info(text)
	}
	m.statusSeq++
	return clearStatusAfter(m.statusSeq)
}

// CurrentView returns the view currently on screen.
func (m *Model) CurrentView() domain.View {
	return m.view
}

// Browser returns the browsing state.
func (m *Model) Browser() *app.Browser {
	return m.browser
}
