package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenOutput
)

type itemKind int

const (
	itemExample itemKind = iota
	itemInit
	itemQuit
)

type menuItem struct {
	title string
	desc  string
	kind  itemKind
	index int
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr     screen
	menu    list.Model
	output  viewport.Model
	spin    spinner.Model
	active  string
	failed  bool
	toast   string
	running bool

	width, height int

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	l := list.New(menuItems(deps), list.NewDefaultDelegate(), 0, 0)
	l.Title = "primer"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = t.Spinner

	return model{
		theme:          t,
		deps:           deps,
		log:            log,
		scr:            screenHome,
		menu:           l,
		output:         viewport.New(0, 0),
		spin:           sp,
		workspaceFound: deps.WorkspaceFound,
		workspaceRoot:  deps.WorkspaceRoot,
	}
}

func menuItems(deps Deps) []list.Item {
	items := make([]list.Item, 0, len(deps.Examples)+2)
	for i, ex := range deps.Examples {
		items = append(items, menuItem{title: ex.Title, desc: ex.Desc, kind: itemExample, index: i})
	}
	if !deps.WorkspaceFound && deps.WorkspaceInitializer != nil {
		items = append(items, menuItem{title: "Init workspace", desc: "Write primer.yaml, data/ and .env.example here", kind: itemInit})
	}
	items = append(items, menuItem{title: "Quit", desc: "Exit primer", kind: itemQuit})
	return items
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.output.Width = msg.Width - 8
		m.output.Height = msg.Height - 12
		return m, nil

	case exampleDoneMsg:
		m.running = false
		m.scr = screenOutput
		m.active = msg.title
		m.failed = msg.err != nil
		m.toast = userMessage(msg.err)
		m.output.SetContent(renderOutput(msg))
		m.output.GotoTop()
		return m, nil

	case initWorkspaceDoneMsg:
		m.running = false
		m.scr = screenHome
		if msg.err != nil {
			m.log.Warn("tui.init.failed", "root", msg.root, "error", msg.err.Error())
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.log.Info("workspace.init", "root", msg.root)
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.deps.WorkspaceFound = true
		m.toast = "Workspace initialized"
		cmd := m.menu.SetItems(menuItems(m.deps))
		return m, cmd

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			if m.scr == screenOutput {
				m.scr = screenHome
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenOutput {
				m.scr = screenHome
				m.active = ""
				return m, nil
			}

		case "enter":
			if m.scr == screenHome {
				return m.selectItem()
			}
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenOutput:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) selectItem() (tea.Model, tea.Cmd) {
	it, ok := m.menu.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}

	switch it.kind {
	case itemQuit:
		return m, tea.Quit

	case itemInit:
		m.running = true
		m.scr = screenRunning
		m.active = it.title
		return m, tea.Batch(m.spin.Tick, cmdInitWorkspace(m.deps, m.deps.WorkspaceRoot))

	default:
		if it.index < 0 || it.index >= len(m.deps.Examples) {
			return m, nil
		}
		m.running = true
		m.scr = screenRunning
		m.active = it.title
		m.toast = ""
		return m, tea.Batch(m.spin.Tick, cmdRunExample(m.deps.Examples[it.index], m.log))
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("primer") + "\n" +
		m.theme.Tagline.Render("Directory queries, basic functions and a one-shot API fetch") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No primer.yaml found; using built-in defaults.")
	}

	toast := ""
	if m.toast != "" {
		style := m.theme.Help
		if m.failed {
			style = m.theme.Failed
		}
		toast = "\n" + style.Render(clampString(m.toast, 80))
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenRunning:
		card := m.theme.Card.Render(fmt.Sprintf("%s Running %s…", m.spin.View(), m.active))
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	case screenOutput:
		card := m.theme.Card.Render(
			m.theme.ResultTitle(m.active, m.failed) + "\n\n" + m.output.View(),
		)
		help := m.theme.Help.Render("↑/↓ scroll • esc/b back • q home")
		return wrap.Render(header + "\n" + card + "\n" + help + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
