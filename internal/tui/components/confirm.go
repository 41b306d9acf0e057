package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/tui/styles"
)

// ConfirmModal asks for explicit confirmation before a destructive action
type ConfirmModal struct {
	visible bool
	prompt  string
}

// NewConfirmModal creates a hidden confirm modal
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal with the given prompt
func (c *ConfirmModal) Show(prompt string) {
	c.visible = true
	c.prompt = prompt
}

// Hide dismisses the modal
func (c *ConfirmModal) Hide() {
	c.visible = false
}

// IsVisible returns whether the modal is shown
func (c ConfirmModal) IsVisible() bool {
	return c.visible
}

// Update handles keys, returns (modal, confirmed, dismissed)
func (c ConfirmModal) Update(msg tea.Msg) (ConfirmModal, bool, bool) {
	if !c.visible {
		return c, false, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false, false
	}

	switch keyMsg.String() {
	case "y", "enter":
		c.Hide()
		return c, true, false
	case "n", "esc":
		c.Hide()
		return c, false, true
	}
	return c, false, false
}

// View renders the confirm modal
func (c ConfirmModal) View() string {
	if !c.visible {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Delete Movie"),
		c.prompt,
		"",
		styles.DimStyle.Render("y/enter confirm · n/esc cancel"),
	)
	return styles.ModalStyle.Render(content)
}
