package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/fetch"
	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input"
	inputtypes "pokebrowse/internal/ui/input/types"
	"pokebrowse/internal/ui/viewmodels"
	"pokebrowse/internal/ui/views"
)

// Options configures the UI model
type Options struct {
	Collection string
	// ShowReady prints a marker once data is displayed, for pty-driven tests
	ShowReady bool
	// StaticCursor disables cursor blinking in the text inputs
	StaticCursor bool
}

// Model represents the UI state. It is the single owner of the query store
// and the fetch coordinator; both are only touched from Update.
type Model struct {
	store   *query.Store
	fetcher *fetch.Coordinator

	// UI-specific state
	width       int
	height      int
	table       table.Model
	inPagerMode bool
	cursorCmd   tea.Cmd // returned once from Init

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(store *query.Store, fetcher *fetch.Coordinator, opts Options) *Model {
	if opts.Collection == "" {
		opts.Collection = "pokemons"
	}

	styles := views.NewStyles()
	m := &Model{
		store:        store,
		fetcher:      fetcher,
		table:        views.NewTable(styles, 80, 10),
		renderer:     views.NewRenderer(styles),
		viewModel:    viewmodels.NewViewModel(opts.Collection, opts.ShowReady),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		pager:        NewPagerOps(nil),
	}
	if opts.StaticCursor {
		m.cursorCmd = m.inputHandler.SetCursorMode(cursor.CursorStatic)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init issues the initial fetch for the default query
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.cursorCmd, m.fetcher.Trigger(m.store.Descriptor()))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.resizeTable()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{
			State: m.store.State(),
			Pages: m.fetcher.View().TotalPages,
			Row:   m.table.Cursor(),
			Rows:  len(m.fetcher.View().Entities),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	case fetch.ResultMsg:
		if m.fetcher.Apply(msg) {
			m.syncTable()
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("%s pager failed: %v", msg.what, msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other messages for the text input
		return m, m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.DispatchAction:
		d, changed := m.store.Dispatch(a.Action)
		if !changed {
			return nil
		}
		return m.fetcher.Trigger(d)

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.table.MoveUp(1)
		case "down":
			m.table.MoveDown(1)
		case "home":
			m.table.GotoTop()
		case "end":
			m.table.GotoBottom()
		}
		return nil

	case inputtypes.FocusFieldAction:
		m.viewModel.Input().SetFocusedField(a.Field, a.Bound)
		return nil

	case inputtypes.UpdateSortIndexAction:
		m.viewModel.Input().SetSortIndex(a.Index)
		return nil

	case inputtypes.ReloadAction:
		return m.fetcher.Reload()

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRender.RenderHelpContentPlain())

	case inputtypes.OpenDetailAction:
		entities := m.fetcher.View().Entities
		if a.Row < 0 || a.Row >= len(entities) {
			return nil
		}
		return m.showInPager("detail", m.renderer.DetailContent(entities[a.Row]))

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Printf("unhandled action %s", action.Type())
		return nil
	}
}

// showInPager returns a command that pages content with ov, pausing rendering meanwhile
func (m *Model) showInPager(what, content string) tea.Cmd {
	if m.program == nil {
		log.Printf("%s pager unavailable: program not set", what)
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerClosedMsg{what: what, err: err}
	}
}

// syncTable loads the current page into the table, keeping the cursor on a valid row
func (m *Model) syncTable() {
	rows := views.Rows(m.fetcher.View().Entities)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
}

// resizeTable fits the table to the terminal
func (m *Model) resizeTable() {
	m.table.SetColumns(views.Columns(m.width))
	m.table.SetWidth(m.width - 4)

	h := m.height - views.ChromeHeight
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.Input().SetMode(m.inputHandler.CurrentMode(), m.inputHandler.TextInput())

	state := m.viewModel.BuildViewState(
		m.store.State(),
		m.fetcher.View(),
		m.fetcher.InFlight(),
		m.table.View(),
	)
	return m.renderer.Render(state)
}
