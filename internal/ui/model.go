package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"persona-trace/internal/archive"
	"persona-trace/internal/classify"
	"persona-trace/internal/clipboard"
	"persona-trace/internal/config"
	"persona-trace/internal/export"
	"persona-trace/internal/highlight"
	"persona-trace/internal/index"
	"persona-trace/internal/summarize"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	cfg        config.Config
	store      *index.Store
	exporter   *export.Exporter
	summarizer *summarize.Summarizer

	list     list.Model
	viewport viewport.Model
	help     help.Model
	spinner  spinner.Model
	search   textinput.Model
	prompt   textinput.Model
	keys     keyMap

	width  int
	height int

	loading     bool
	searchMode  bool
	promptMode  bool
	summarizing bool
	focusOnList bool
	rendering   bool
	renderNonce int

	loadCancel  context.CancelFunc
	initialLoad tea.Cmd

	searchQuery     string
	enabled         map[string]struct{}
	cleaned         map[string]struct{}
	confirmDeleteID string

	conversations []archive.Conversation
	filtered      []archive.Conversation
	selectedID    string
	rendered      map[string]string
	matchCount    int

	status string
	err    error
}

type loadedMsg struct {
	convs   []archive.Conversation
	cleaned map[string]struct{}
	deleted map[string]struct{}
	err     error
}
type renderMsg struct {
	convID   string
	cacheKey string
	rendered string
	nonce    int
}

// summaryMsg deliberately carries no nonce: a new request simply
// overwrites the pending display slot, and a stale response that still
// arrives wins. Last writer wins.
type summaryMsg struct {
	text string
	err  error
}
type exportMsg struct {
	path string
	err  error
}
type deleteDoneMsg struct {
	id  string
	err error
}
type cleanDoneMsg struct {
	id      string
	cleaned bool
	err     error
}
type copyMsg struct{ err error }

type convItem struct {
	c       archive.Conversation
	cleaned bool
}

func (i convItem) Title() string {
	title := i.c.DisplayTitle()
	if i.cleaned {
		return "* " + title
	}
	return title
}

func (i convItem) Description() string {
	meta := archive.FormatCreateTime(i.c.CreateTime) + " | " + fmt.Sprintf("%d msgs", i.c.MessageCount())
	if name, ok := classify.Classify(i.c); ok {
		return name + " | " + meta
	}
	return meta
}

func (i convItem) FilterValue() string {
	return strings.ToLower(i.c.Title)
}

func NewModel(cfg config.Config, store *index.Store, exp *export.Exporter, sum *summarize.Summarizer) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 20)
	l.Title = "Conversations"
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	vp := viewport.New(60, 20)
	vp.SetContent("Loading archive...")

	h := help.New()
	h.ShowAll = false

	sp := spinner.New()
	sp.Spinner = spinner.Points

	search := textinput.New()
	search.Placeholder = "Search titles..."
	search.Prompt = "/ "
	search.CharLimit = 256

	prompt := textinput.New()
	prompt.Placeholder = "Summarize all Osho-conversations about ..."
	prompt.Prompt = "> "
	prompt.CharLimit = 512

	m := Model{
		cfg:        cfg,
		store:      store,
		exporter:   exp,
		summarizer: sum,
		list:       l,
		viewport:   vp,
		help:       h,
		spinner:    sp,
		search:     search,
		prompt:     prompt,
		keys:       defaultKeys(),

		loading:     true,
		focusOnList: true,
		enabled:     make(map[string]struct{}),
		cleaned:     make(map[string]struct{}),
		rendered:    make(map[string]string),
	}
	// The initial load's cancel handle must live on the model the
	// program runs, not on a copy, or reload and quit cannot abort it.
	// Init has a value receiver, so the command is prepared here.
	m.initialLoad = m.loadCmd()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initialLoad)
}

// loadCmd starts an archive load, canceling any load still in flight.
func (m *Model) loadCmd() tea.Cmd {
	if m.loadCancel != nil {
		m.loadCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.loadCancel = cancel
	return loadArchiveCmd(ctx, m.cfg, m.store)
}

func loadArchiveCmd(ctx context.Context, cfg config.Config, store *index.Store) tea.Cmd {
	return func() tea.Msg {
		cleaned, err := store.CleanedIDs(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		deleted, err := store.DeletedIDs(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		convs, err := archive.Load(ctx, cfg.ArchivePath)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{convs: convs, cleaned: cleaned, deleted: deleted}
	}
}

func (m Model) summarizeCmd(prompt string) tea.Cmd {
	convs := m.conversations
	sum := m.summarizer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text, err := sum.Run(ctx, convs, prompt)
		return summaryMsg{text: text, err: err}
	}
}

func (m Model) exportCmd(conv archive.Conversation) tea.Cmd {
	exp := m.exporter
	return func() tea.Msg {
		path, err := exp.Export(conv)
		return exportMsg{path: path, err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return deleteDoneMsg{id: id, err: store.DeleteConversation(ctx, id)}
	}
}

func (m Model) cleanCmd(id string, mark bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var err error
		if mark {
			err = store.MarkCleaned(ctx, id)
		} else {
			err = store.UnmarkCleaned(ctx, id)
		}
		return cleanDoneMsg{id: id, cleaned: mark, err: err}
	}
}

func (m Model) copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return copyMsg{err: clipboard.Copy(ctx, text)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		cmds = append(cmds, m.renderSelected(true))

	case loadedMsg:
		if errors.Is(msg.err, context.Canceled) {
			// A superseded load reporting its own cancellation.
			break
		}
		m.loading = false
		if msg.err != nil {
			// Load failures leave the list empty; there is no retry.
			m.err = msg.err
			m.status = "Load failed: " + msg.err.Error()
			m.viewport.SetContent("No conversations loaded.")
			break
		}
		m.err = nil
		m.cleaned = msg.cleaned
		m.conversations = index.WithoutDeleted(msg.convs, msg.deleted)
		m.status = fmt.Sprintf("Loaded %d conversations", len(m.conversations))
		m.applyFilters()
		cmds = append(cmds, m.renderSelected(true))

	case renderMsg:
		if msg.nonce != m.renderNonce {
			break
		}
		m.rendering = false
		m.rendered[msg.cacheKey] = msg.rendered
		if m.selectedID == msg.convID {
			m.setViewportContent(msg.rendered, true)
		}

	case summaryMsg:
		m.summarizing = false
		switch {
		case msg.err == nil:
			m.status = "Summary ready (C to copy)"
			m.showSummary(msg.text)
		case errors.Is(msg.err, summarize.ErrUsage):
			m.status = summarize.Usage
		case errors.Is(msg.err, summarize.ErrNoContent):
			m.status = "No content found for that topic"
		case errors.Is(msg.err, summarize.ErrMissingAPIKey):
			m.status = msg.err.Error()
		default:
			m.status = "Summarization failed, please try again"
		}

	case exportMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Exported: " + msg.path
		}

	case deleteDoneMsg:
		if msg.err != nil {
			// The conversation already left the in-memory list; the
			// store write failing leaves it resurrectable on restart.
			m.err = msg.err
			m.status = "Delete not persisted: " + msg.err.Error()
		} else {
			m.status = "Conversation deleted"
		}

	case cleanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "Cleaned marker not persisted: " + msg.err.Error()
		} else if msg.cleaned {
			m.status = "Marked cleaned"
		} else {
			m.status = "Cleaned marker removed"
		}

	case copyMsg:
		if msg.err != nil {
			if errors.Is(msg.err, clipboard.ErrToolNotFound) {
				m.status = "Could not copy: clipboard tool not found"
			} else {
				m.status = "Could not copy: " + msg.err.Error()
			}
		} else {
			m.status = "Summary copied to clipboard"
		}

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.loading || m.summarizing {
		var spin tea.Cmd
		m.spinner, spin = m.spinner.Update(msg)
		cmds = append(cmds, spin)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.searchMode {
		switch msg.String() {
		case "esc":
			m.searchMode = false
			m.searchQuery = ""
			m.search.SetValue("")
			m.search.Blur()
			m.applyFilters()
			return m, m.renderSelected(true)
		case "enter":
			m.searchMode = false
			m.search.Blur()
			m.searchQuery = strings.TrimSpace(m.search.Value())
			m.applyFilters()
			return m, m.renderSelected(true)
		}
		before := strings.TrimSpace(m.search.Value())
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		if after := strings.TrimSpace(m.search.Value()); after != before {
			m.searchQuery = after
			m.applyFilters()
			cmds = append(cmds, m.renderSelected(true))
		}
		return m, tea.Batch(cmds...)
	}

	if m.promptMode {
		switch msg.String() {
		case "esc":
			m.promptMode = false
			m.prompt.Blur()
			return m, nil
		case "enter":
			m.promptMode = false
			m.prompt.Blur()
			text := strings.TrimSpace(m.prompt.Value())
			if text == "" {
				return m, nil
			}
			m.summarizing = true
			m.status = "Summarizing..."
			return m, tea.Batch(m.spinner.Tick, m.summarizeCmd(text))
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	if m.confirmDeleteID != "" {
		switch msg.String() {
		case "y", "Y":
			id := m.confirmDeleteID
			m.confirmDeleteID = ""
			m.removeConversation(id)
			return m, m.deleteCmd(id)
		default:
			m.confirmDeleteID = ""
			m.status = "Delete cancelled"
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.loadCancel != nil {
			m.loadCancel()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.search.SetValue(m.searchQuery)
		m.search.CursorEnd()
		m.search.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Summarize):
		m.promptMode = true
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.focusOnList = !m.focusOnList
		return m, nil
	case key.Matches(msg, m.keys.FocusLeft):
		m.focusOnList = true
		return m, nil
	case key.Matches(msg, m.keys.FocusRight):
		m.focusOnList = false
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		if !m.focusOnList {
			m.viewport.HalfViewUp()
		}
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		if !m.focusOnList {
			m.viewport.HalfViewDown()
		}
		return m, nil
	case key.Matches(msg, m.keys.Persona1):
		m.togglePersona(0)
		return m, m.renderSelected(true)
	case key.Matches(msg, m.keys.Persona2):
		m.togglePersona(1)
		return m, m.renderSelected(true)
	case key.Matches(msg, m.keys.Persona3):
		m.togglePersona(2)
		return m, m.renderSelected(true)
	case key.Matches(msg, m.keys.Clean):
		if m.selectedID != "" {
			id := m.selectedID
			_, marked := m.cleaned[id]
			if marked {
				delete(m.cleaned, id)
			} else {
				m.cleaned[id] = struct{}{}
			}
			m.applyFilters()
			return m, m.cleanCmd(id, !marked)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if m.selectedID != "" {
			m.confirmDeleteID = m.selectedID
			if conv, ok := m.conversationByID(m.selectedID); ok {
				m.status = fmt.Sprintf("Delete %q? y/n", conv.DisplayTitle())
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Export):
		if conv, ok := m.conversationByID(m.selectedID); ok {
			return m, m.exportCmd(conv)
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if summary := m.lastSummary(); summary != "" {
			return m, m.copyCmd(summary)
		}
		m.status = "No summary to copy"
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.status = "Reloading archive..."
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	}

	if m.focusOnList {
		prev := m.selectedID
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		m.selectedID = m.currentSelectedID()
		if m.selectedID != prev {
			cmds = append(cmds, m.renderSelected(false))
		}
	} else {
		switch msg.String() {
		case "up", "k":
			m.viewport.LineUp(1)
		case "down", "j":
			m.viewport.LineDown(1)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) togglePersona(idx int) {
	if idx < 0 || idx >= len(classify.Personas) {
		return
	}
	name := classify.Personas[idx]
	if _, on := m.enabled[name]; on {
		delete(m.enabled, name)
	} else {
		m.enabled[name] = struct{}{}
	}
	m.applyFilters()
}

func (m *Model) applyFilters() {
	m.filtered = index.Filter(m.conversations, m.searchQuery, m.enabled)

	items := make([]list.Item, 0, len(m.filtered))
	for _, c := range m.filtered {
		_, cleaned := m.cleaned[c.ID]
		items = append(items, convItem{c: c, cleaned: cleaned})
	}
	m.list.SetItems(items)

	if len(m.filtered) == 0 {
		m.selectedID = ""
		if strings.TrimSpace(m.searchQuery) == "" && len(m.enabled) == 0 {
			m.viewport.SetContent("No conversations in the archive.")
		} else {
			m.viewport.SetContent("No conversations matched the active filters.")
		}
		return
	}

	selectIdx := 0
	for idx, c := range m.filtered {
		if c.ID == m.selectedID {
			selectIdx = idx
			break
		}
	}
	m.list.Select(selectIdx)
	m.selectedID = m.filtered[selectIdx].ID
}

func (m *Model) removeConversation(id string) {
	kept := make([]archive.Conversation, 0, len(m.conversations))
	for _, c := range m.conversations {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.conversations = kept
	if m.selectedID == id {
		m.selectedID = ""
	}
	m.applyFilters()
}

func (m Model) conversationByID(id string) (archive.Conversation, bool) {
	for _, c := range m.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return archive.Conversation{}, false
}

func (m Model) currentSelectedID() string {
	item, ok := m.list.SelectedItem().(convItem)
	if !ok {
		return ""
	}
	return item.c.ID
}

func (m *Model) renderSelected(force bool) tea.Cmd {
	if m.selectedID == "" {
		m.matchCount = 0
		return nil
	}
	conv, ok := m.conversationByID(m.selectedID)
	if !ok {
		return nil
	}

	cacheKey := m.renderCacheKey(conv.ID)
	if !force {
		if rendered, hit := m.rendered[cacheKey]; hit {
			m.setViewportContent(rendered, false)
			return nil
		}
	}

	m.rendering = true
	m.renderNonce++
	nonce := m.renderNonce
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}
	m.viewport.SetContent("Rendering thread...")
	return renderThreadCmd(conv, cacheKey, wrap, nonce)
}

func renderThreadCmd(conv archive.Conversation, cacheKey string, wrap, nonce int) tea.Cmd {
	return func() tea.Msg {
		md := threadMarkdown(conv)
		rendered := md
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(config.DefaultGlamourStyle),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, renderErr := r.Render(md); renderErr == nil {
				rendered = out
			}
		}
		return renderMsg{convID: conv.ID, cacheKey: cacheKey, rendered: rendered, nonce: nonce}
	}
}

func threadMarkdown(conv archive.Conversation) string {
	var b strings.Builder
	b.WriteString("# " + conv.DisplayTitle() + "\n\n")
	b.WriteString("_" + archive.FormatCreateTime(conv.CreateTime) + "_\n\n")
	body := export.BuildThreadMarkdown(conv)
	if strings.TrimSpace(body) == "" {
		body = "_This conversation has no displayable messages._"
	}
	b.WriteString(body)
	return b.String()
}

func (m Model) renderCacheKey(convID string) string {
	return fmt.Sprintf("%s|w=%d", convID, m.viewport.Width)
}

func (m *Model) setViewportContent(rendered string, gotoTop bool) {
	content := rendered
	m.matchCount = 0
	if query := strings.TrimSpace(m.searchQuery); query != "" {
		res := highlight.Apply(rendered, query, func(s string) string {
			return searchMatchStyle.Render(s)
		})
		content = res.Text
		m.matchCount = res.Count
	}
	m.viewport.SetContent(content)
	if gotoTop {
		m.viewport.GotoTop()
	}
}

const summaryMarker = "# Summary\n\n"

func (m *Model) showSummary(text string) {
	md := summaryMarker + text
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}
	rendered := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(config.DefaultGlamourStyle),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, renderErr := r.Render(md); renderErr == nil {
			rendered = out
		}
	}
	m.rendered["summary"] = text
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
	m.focusOnList = false
}

func (m Model) lastSummary() string {
	return m.rendered["summary"]
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	left, right := m.paneWidths()

	bodyHeight := m.height - 2
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	m.list.SetSize(left-2, bodyHeight-2)
	m.viewport.Width = right - 2
	m.viewport.Height = bodyHeight - 2
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting..."
	}

	status := m.statusLine()
	left, right := m.paneWidths()
	leftPane := panelStyle(m.focusOnList).Width(left).Height(m.height - 2).Render(m.list.View())
	rightPane := panelStyle(!m.focusOnList).Width(right).Height(m.height - 2).Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	footer := m.help.View(m.keys)
	if m.searchMode {
		footer = m.search.View() + "  " + footer
	} else if m.promptMode {
		footer = m.prompt.View() + "  " + footer
	} else if m.searchQuery != "" {
		footer = "search: " + m.searchQuery + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, body, footer)
}

func (m Model) statusLine() string {
	status := ""
	if m.loading {
		status = m.spinner.View() + " loading..."
	}
	if m.summarizing {
		status = m.spinner.View() + " summarizing..."
	}
	if m.selectedID != "" && status == "" {
		if conv, ok := m.conversationByID(m.selectedID); ok {
			status = fmt.Sprintf(
				"%s  created=%s  msgs=%d",
				shorten(conv.DisplayTitle(), 32),
				archive.FormatCreateTime(conv.CreateTime),
				conv.MessageCount(),
			)
		}
	}
	if len(m.enabled) > 0 {
		names := make([]string, 0, len(m.enabled))
		for _, p := range classify.Personas {
			if _, on := m.enabled[p]; on {
				names = append(names, p)
			}
		}
		status += "  [" + strings.Join(names, ",") + "]"
	}
	if m.searchQuery != "" {
		status += fmt.Sprintf("  [search: %d matches]", m.matchCount)
	}
	if m.rendering {
		status += "  [rendering]"
	}
	if strings.TrimSpace(m.status) != "" {
		status += "  " + shorten(strings.TrimSpace(m.status), 80)
	}
	return statusStyle.Render(status)
}

func (m Model) paneWidths() (int, int) {
	left := m.width / 3
	if left < 32 {
		left = 32
	}
	if left > m.width-32 {
		left = m.width - 32
	}
	if left < 20 {
		left = 20
	}
	right := m.width - left - 1
	if right < 20 {
		right = 20
	}
	return left, right
}

func shorten(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	Tab        key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Search     key.Binding
	Persona1   key.Binding
	Persona2   key.Binding
	Persona3   key.Binding
	Clean      key.Binding
	Delete     key.Binding
	Export     key.Binding
	Summarize  key.Binding
	Copy       key.Binding
	Reload     key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "focus list"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "focus thread"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle focus"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search titles"),
		),
		Persona1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "toggle Osho"),
		),
		Persona2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "toggle Neville"),
		),
		Persona3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "toggle Lester"),
		),
		Clean: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle cleaned"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export markdown"),
		),
		Summarize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summarize"),
		),
		Copy: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "copy summary"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload archive"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Search, k.Summarize, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.FocusLeft, k.FocusRight, k.Tab, k.PageUp, k.PageDown},
		{k.Search, k.Persona1, k.Persona2, k.Persona3},
		{k.Clean, k.Delete, k.Export, k.Summarize, k.Copy, k.Reload, k.Quit},
	}
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)
	searchMatchStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("220"))
)

func panelStyle(active bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	color := lipgloss.Color("240")
	if active {
		color = lipgloss.Color("39")
	}
	return lipgloss.NewStyle().
		Border(border, true).
		BorderForeground(color).
		Padding(0, 1)
}
