package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// nextFocus сдвигает индекс фокуса по кругу.
func nextFocus(focus, count, delta int) int {
	focus += delta
	if focus < 0 {
		return count - 1
	}
	if focus >= count {
		return 0
	}
	return focus
}

// applyFocus включает поле с заданным индексом и гасит остальные.
func applyFocus(inputs []*textinput.Model, focus int) tea.Cmd {
	var cmds []tea.Cmd
	for i, ti := range inputs {
		if i == focus {
			cmds = append(cmds, ti.Focus())
		} else {
			ti.Blur()
		}
	}
	return tea.Batch(cmds...)
}

// updateInputs передает сообщение всем полям формы: обновится
// только поле в фокусе.
func updateInputs(inputs []*textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i, ti := range inputs {
		var updated textinput.Model
		updated, cmds[i] = ti.Update(msg)
		*ti = updated
	}
	return tea.Batch(cmds...)
}
