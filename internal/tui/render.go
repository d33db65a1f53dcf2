package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"twopane/pkg/types"
)

// renderPane draws one pane: the directory title, the visible rows in a
// window around the cursor, and per-row decorations (directory marker,
// disabled styling, tag chips, humanized size).
func (m *Model) renderPane(idx, width, height int) string {
	pane := m.panes[idx]
	var b strings.Builder

	title := pane.Directory()
	if search := pane.Search(); search != "" {
		title += "  /" + search
	}
	b.WriteString(m.styles.Title.Render(truncate(title, width)) + "\n")

	entries, err := pane.Entries()
	if err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()))
		return m.frame(idx).Width(width).Render(b.String())
	}

	if len(entries) == 0 {
		b.WriteString(m.styles.Status.Render("empty"))
		return m.frame(idx).Width(width).Render(b.String())
	}

	start, end := window(pane.Cursor(), len(entries), height-1)
	for row := start; row < end; row++ {
		line := m.renderRow(entries[row], width-2)
		if row == pane.Cursor() && idx == m.active {
			line = m.styles.Cursor.Render(line)
		}
		b.WriteString(line + "\n")
	}

	return m.frame(idx).Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderRow(e types.Entry, width int) string {
	name := e.EffectiveName
	if e.IsDir {
		name += "/"
	}

	var decorated string
	switch {
	case e.Disabled:
		decorated = m.styles.Disabled.Render(name)
	case e.IsDir:
		decorated = m.styles.Directory.Render(name)
	default:
		decorated = name
	}

	suffix := ""
	if tags := m.tagStore.Get(e.Path); len(tags) > 0 {
		suffix = " " + m.styles.Tag.Render("#"+strings.Join(tags, " #"))
	}
	if !e.IsDir {
		suffix += fmt.Sprintf(" %s", m.styles.Status.Render(humanize.Bytes(uint64(e.Size))))
	}

	return truncate(decorated+suffix, width)
}

func (m *Model) frame(idx int) lipgloss.Style {
	if idx == m.active {
		return m.styles.ActivePane
	}
	return m.styles.InactivePane
}

// window returns the half-open row range to draw so the cursor stays in
// view.
func window(cursor, total, height int) (int, int) {
	if height <= 0 {
		height = 1
	}
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
