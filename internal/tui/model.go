package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Catalog, when set, skips the asynchronous catalog load.
	Catalog     *catalog.Catalog
	CatalogPath string
	StartScreen screen.ID
	FrameWidth  int
}

type stage int

const (
	stageLoading stage = iota
	stageReady
)

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := newPageLayout(config.FrameWidth)
	vp := viewport.New(layout.bodyWidth, layout.bodyHeight)
	vp.MouseWheelEnabled = true

	m := &model{
		config:      config,
		stage:       stageLoading,
		keys:        defaultKeyMap(),
		router:      screen.NewRouter(),
		jobs:        newJobBus(),
		spinner:     spin,
		viewport:    vp,
		help:        help.New(),
		layout:      layout,
		infoMessage: "Carregando quadras…",
	}
	if config.Catalog != nil {
		m.install(config.Catalog, "preloaded")
	}
	m.refreshViewport()
	return m
}

type model struct {
	config Config
	stage  stage
	keys   keyMap
	router *screen.Router
	pages  map[screen.ID]page
	jobs   *jobBus

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	layout   pageLayout

	// followFocus asks the next refresh to scroll the focused control into
	// view. Manual scrolling leaves it unset.
	followFocus bool
	lineCount   int

	catalogSource string
	lastJob       jobSnapshot
	infoMessage   string
	errorMessage  string
}

func (m *model) Init() tea.Cmd {
	if m.stage == stageReady {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindCatalog, loadCatalogJob(m.config.CatalogPath)))
}

// install builds every page from c and enters the configured start screen.
func (m *model) install(c *catalog.Catalog, source string) tea.Cmd {
	m.pages = buildPages(c, m, m.keys)
	m.catalogSource = source
	m.stage = stageReady
	m.infoMessage = ""
	return m.GoTo(m.config.StartScreen)
}

// GoTo switches the router to target and remounts the page that ends up
// active. Unknown targets land on the first onboarding screen.
func (m *model) GoTo(target screen.ID) tea.Cmd {
	from := m.router.Current()
	if !target.Valid() {
		log.Printf("[nav] unknown screen %s, falling back to %s", target, screen.OnboardingStep1)
	}
	m.router.GoTo(target)
	log.Printf("[nav] %s -> %s", from, m.router.Current())
	var cmd tea.Cmd
	if p := m.current(); p != nil {
		cmd = p.mount()
	}
	m.viewport.GotoTop()
	m.followFocus = true
	m.refreshViewport()
	return cmd
}

// current resolves the active page through the router's default arm.
func (m *model) current() page {
	if p, ok := m.pages[screen.Resolve(m.router.Current())]; ok {
		return p
	}
	return m.pages[screen.OnboardingStep1]
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshViewport()
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
		return nil
	case jobSignalMsg:
		m.lastJob = msg.Snapshot
		return nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if msg.Payload == nil {
			return nil
		}
		return m.update(msg.Payload)
	case catalogResultMsg:
		return m.handleCatalog(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.bodyWidth
		m.viewport.Height = m.layout.bodyHeight
		m.help.Width = m.layout.windowWidth
		m.followFocus = true
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

// refreshViewport re-renders the active page into the viewport. When focus
// moved, the offset is adjusted so the focused control's lines are visible;
// otherwise the current offset is kept.
func (m *model) refreshViewport() {
	var view displayView
	if m.stage == stageReady {
		view = m.current().view(m.layout.bodyWidth)
	} else {
		view = staticView(stack("", fmt.Sprintf("%s %s", m.spinner.View(), m.infoMessage)))
	}
	m.lineCount = view.lines
	m.viewport.SetContent(view.content)

	target := m.viewport.YOffset
	if m.followFocus && view.focusTop >= 0 {
		if view.focusTop < target {
			target = view.focusTop
		} else if view.focusBottom >= target+m.viewport.Height {
			target = view.focusBottom - m.viewport.Height + 1
		}
	}
	m.followFocus = false
	m.viewport.SetYOffset(m.clampYOffset(target))
}

func (m *model) clampYOffset(offset int) int {
	maxOffset := m.lineCount - m.viewport.Height
	if m.viewport.Height <= 0 {
		maxOffset = m.lineCount - 1
	}
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

func (m *model) handleCatalog(msg catalogResultMsg) tea.Cmd {
	if msg.err == nil && msg.catalog != nil {
		return m.install(msg.catalog, msg.source)
	}
	log.Printf("[catalog] load from %s failed: %v", msg.source, msg.err)
	fallback, err := catalog.Default()
	if err != nil {
		m.errorMessage = fmt.Sprintf("catalog unavailable: %v", err)
		return nil
	}
	cmd := m.install(fallback, "embedded")
	m.errorMessage = fmt.Sprintf("catalog error: %v (using sample data)", msg.err)
	return cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if m.stage != stageReady {
		return nil
	}
	p := m.current()
	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return nil
	case key.Matches(msg, m.keys.Help) && !p.capturesText():
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	m.errorMessage = ""
	m.followFocus = true
	return p.update(msg)
}
