package tui

import (
	"strings"

	"github.com/erp/console/internal/domain/catalog"
)

// sidebar is the grouped module navigation on the left edge.
type sidebar struct {
	entities []*catalog.Entity
	cursor   int
	height   int
}

func newSidebar() *sidebar {
	return &sidebar{entities: catalog.All()}
}

func (s *sidebar) Selected() *catalog.Entity {
	return s.entities[s.cursor]
}

func (s *sidebar) Move(delta int) {
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.entities) {
		s.cursor = len(s.entities) - 1
	}
}

// NextGroup jumps to the first entity of the following group.
func (s *sidebar) NextGroup() {
	group := s.entities[s.cursor].Group
	for i := s.cursor + 1; i < len(s.entities); i++ {
		if s.entities[i].Group != group {
			s.cursor = i
			return
		}
	}
}

// PrevGroup jumps to the first entity of the preceding group.
func (s *sidebar) PrevGroup() {
	group := s.entities[s.cursor].Group
	for i := s.cursor - 1; i >= 0; i-- {
		if s.entities[i].Group != group {
			first := i
			for first > 0 && s.entities[first-1].Group == s.entities[i].Group {
				first--
			}
			s.cursor = first
			return
		}
	}
}

func (s *sidebar) View() string {
	var b strings.Builder
	lastGroup := ""
	for i, e := range s.entities {
		if e.Group != lastGroup {
			if lastGroup != "" {
				b.WriteString("\n")
			}
			b.WriteString(sidebarGroupStyle.Render(e.Group))
			b.WriteString("\n")
			lastGroup = e.Group
		}
		style := sidebarItemStyle
		if i == s.cursor {
			style = sidebarSelectedStyle
		}
		b.WriteString(style.Render(e.Title))
		b.WriteString("\n")
	}
	view := strings.TrimRight(b.String(), "\n")
	if s.height > 0 {
		view = clampHeight(view, s.height, s.cursorLine())
	}
	return sidebarStyle.Render(view)
}

// cursorLine is the rendered line the selected entity sits on, counting
// group headers and separators.
func (s *sidebar) cursorLine() int {
	line := 0
	lastGroup := ""
	for i, e := range s.entities {
		if e.Group != lastGroup {
			if lastGroup != "" {
				line++
			}
			line++
			lastGroup = e.Group
		}
		if i == s.cursor {
			return line
		}
		line++
	}
	return line
}

// clampHeight windows a multi-line view to h lines, keeping focusLine
// visible.
func clampHeight(view string, h, focusLine int) string {
	lines := strings.Split(view, "\n")
	if len(lines) <= h {
		return view
	}
	top := 0
	if focusLine >= h {
		top = focusLine - h + 1
	}
	if top+h > len(lines) {
		top = len(lines) - h
	}
	return strings.Join(lines[top:top+h], "\n")
}
