// Package tui implements the two-pane terminal interface. It is a consumer
// of the view pipeline: it reads rows through RowCount/EntryAt, resolves
// cursor positions through RowForPath, and issues every mutation (toggle,
// tag edits, file operations) by path, never by row, so a mapping going
// stale mid-interaction cannot misdirect a write.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"twopane/internal/config"
	"twopane/internal/errors"
	"twopane/internal/fileops"
	"twopane/internal/log"
	"twopane/internal/naming"
	"twopane/internal/source"
	"twopane/internal/tags"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeAddTag
	modeNewFolder
	modeConfirmDelete
)

// clipboard remembers a pending copy or cut, by path.
type clipboard struct {
	path string
	cut  bool
}

// changeMsg reports a file-system change under one pane's directory.
type changeMsg struct {
	pane   int
	change source.Change
}

// Model is the bubbletea model for the two-pane browser.
type Model struct {
	cfg      *config.Config
	styles   Styles
	tagStore *tags.Store

	panes  [2]*Pane
	active int

	mode      inputMode
	input     textinput.Model
	clip      clipboard
	statusMsg string
	errMsg    string

	width  int
	height int
}

// New builds the model: one shared tag store, one source and watcher per
// pane. A corrupt tag document degrades to an empty store with a warning.
func New(cfg *config.Config) (*Model, error) {
	store, err := tags.Load(cfg.Tags.File)
	if err != nil {
		log.LogWithError(err).Warn("tag store degraded to empty")
	}

	m := &Model{
		cfg:      cfg,
		styles:   NewStyles(cfg),
		tagStore: store,
		input:    textinput.New(),
	}

	for i, dir := range []string{cfg.Panes.Left, cfg.Panes.Right} {
		watcher, err := source.NewWatcher()
		if err != nil {
			return nil, err
		}
		pane, err := NewPane(source.NewWithConfig(cfg), store, watcher, dir)
		if err != nil {
			return nil, err
		}
		m.panes[i] = pane
	}
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i, pane := range m.panes {
		if w := pane.Watcher(); w != nil {
			if err := w.Start(); err != nil {
				log.LogWithError(err).Warn("watcher did not start")
				continue
			}
			cmds = append(cmds, m.waitForChange(i))
		}
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on one pane's watcher channel and feeds the event
// into the update loop, where it is fully processed before the next key.
func (m *Model) waitForChange(pane int) tea.Cmd {
	w := m.panes[pane].Watcher()
	return func() tea.Msg {
		change, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return changeMsg{pane: pane, change: change}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changeMsg:
		// Drain the notification before accepting further input: the
		// listing is re-derived here, synchronously.
		if err := m.panes[msg.pane].Refresh(); err != nil {
			m.errMsg = err.Error()
		}
		return m, m.waitForChange(msg.pane)

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.handlePromptKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}
	return m, nil
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.panes[m.active]
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		for _, p := range m.panes {
			if w := p.Watcher(); w != nil {
				w.Stop()
			}
		}
		return m, tea.Quit

	case "tab":
		m.active = 1 - m.active

	case "j", "down":
		pane.MoveCursor(1)
	case "k", "up":
		pane.MoveCursor(-1)
	case "g":
		pane.MoveCursor(-pane.RowCount())
	case "G":
		pane.MoveCursor(pane.RowCount())

	case "enter", "l":
		if e, err := pane.Selected(); err == nil && e.IsDir {
			m.report(pane.Navigate(e.Path))
		}
	case "backspace", "h":
		m.report(pane.Up())
	case "[":
		m.report(pane.Back())
	case "]":
		m.report(pane.Forward())

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "search name or tag"
		m.input.SetValue(pane.Search())
		m.input.Focus()
	case "esc":
		pane.SetSearch("")

	case "t":
		m.toggleSelected()
	case "a":
		if _, err := pane.Selected(); err == nil {
			m.mode = modeAddTag
			m.input.Placeholder = "tag"
			m.input.SetValue("")
			m.input.Focus()
		}
	case "R":
		m.removeAllTags()

	case "n":
		m.mode = modeNewFolder
		m.input.Placeholder = "folder name"
		m.input.SetValue("")
		m.input.Focus()

	case "y":
		if e, err := pane.Selected(); err == nil {
			m.clip = clipboard{path: e.Path}
			m.statusMsg = "copied " + e.RawName
		}
	case "x":
		if e, err := pane.Selected(); err == nil {
			m.clip = clipboard{path: e.Path, cut: true}
			m.statusMsg = "cut " + e.RawName
		}
	case "p":
		m.paste()

	case "D":
		if _, err := pane.Selected(); err == nil {
			if m.cfg.ConfirmDelete {
				m.mode = modeConfirmDelete
			} else {
				m.deleteSelected()
			}
		}

	case "r":
		m.report(pane.Refresh())
	}
	return m, nil
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.panes[m.active]

	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.deleteSelected()
		}
		m.mode = modeBrowse
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			pane.SetSearch("")
		}
		m.closePrompt()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case modeSearch:
			// Already applied incrementally; enter just leaves the prompt.
		case modeAddTag:
			if e, err := pane.Selected(); err == nil && value != "" {
				if err := m.tagStore.Add(e.Path, value); err != nil {
					m.errMsg = err.Error()
				} else {
					m.statusMsg = fmt.Sprintf("tagged %s with %q", e.RawName, value)
				}
			}
		case modeNewFolder:
			if value != "" {
				_, err := fileops.CreateFolder(pane.Directory(), value)
				m.report(err)
				m.report(pane.Refresh())
			}
		}
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		pane.SetSearch(m.input.Value())
	}
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
}

// toggleSelected flips the enabled/disabled state of the entry under the
// cursor and keeps the cursor on it; the rename also arrives as a change
// event, and the refresh here just avoids a visible lag.
func (m *Model) toggleSelected() {
	pane := m.panes[m.active]
	e, err := pane.Selected()
	if err != nil {
		return
	}

	newPath, err := naming.Toggle(e.Path)
	if err != nil {
		if errors.IsRenameConflict(err) {
			m.errMsg = "cannot toggle: target name already exists"
		} else {
			m.errMsg = err.Error()
		}
		return
	}
	m.report(pane.Refresh())
	pane.SelectPath(newPath)
}

func (m *Model) removeAllTags() {
	pane := m.panes[m.active]
	e, err := pane.Selected()
	if err != nil {
		return
	}
	if err := m.tagStore.Set(e.Path, nil); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "cleared tags on " + e.RawName
}

func (m *Model) paste() {
	if m.clip.path == "" {
		return
	}
	pane := m.panes[m.active]

	var err error
	if m.clip.cut {
		_, err = fileops.MoveInto(m.clip.path, pane.Directory())
		m.clip = clipboard{}
	} else {
		_, err = fileops.CopyInto(m.clip.path, pane.Directory())
	}
	m.report(err)
	for _, p := range m.panes {
		m.report(p.Refresh())
	}
}

func (m *Model) deleteSelected() {
	pane := m.panes[m.active]
	e, err := pane.Selected()
	if err != nil {
		return
	}
	if err := fileops.Delete(e.Path); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "deleted " + e.RawName
	m.report(pane.Refresh())
}

func (m *Model) report(err error) {
	if err != nil {
		m.errMsg = err.Error()
		log.LogWithError(err).Error("pane operation failed")
	}
}

// View implements tea.Model
func (m *Model) View() string {
	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 4
	if paneHeight < 5 {
		paneHeight = 5
	}

	left := m.renderPane(0, paneWidth, paneHeight)
	right := m.renderPane(1, paneWidth, paneHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return body + "\n" + m.renderStatusLine()
}

func (m *Model) renderStatusLine() string {
	if m.errMsg != "" {
		return m.styles.Error.Render(m.errMsg)
	}
	switch m.mode {
	case modeSearch, modeAddTag, modeNewFolder:
		return m.input.View()
	case modeConfirmDelete:
		if e, err := m.panes[m.active].Selected(); err == nil {
			return m.styles.Error.Render(fmt.Sprintf("delete %s? [y/N]", e.RawName))
		}
	}

	parts := []string{"tab:pane  /:search  t:toggle  a:tag  y/x/p:copy/cut/paste  D:delete  q:quit"}
	if m.clip.path != "" {
		op := "copy"
		if m.clip.cut {
			op = "cut"
		}
		parts = append([]string{fmt.Sprintf("[%s: %s]", op, m.clip.path)}, parts...)
	}
	if m.statusMsg != "" {
		parts = append([]string{m.statusMsg}, parts...)
	}
	return m.styles.Status.Render(strings.Join(parts, "   "))
}
