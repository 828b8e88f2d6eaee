package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/utils"
)

// Run starts the interactive browser over an already-decoded class file and
// blocks until the user quits.
func Run(filename string, cf *model.ClassFile) error {
	p := tea.NewProgram(initialModel(filename, cf), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.currentTab = OverviewTab
		case "2":
			m.currentTab = ConstantPoolTab
		case "3":
			m.currentTab = FieldsTab
		case "4":
			m.currentTab = MethodsTab
		case "5":
			m.currentTab = BytecodeTab
		case "left", "h":
			m.currentTab = utils.GetPrevEnum(m.currentTab, BytecodeTab)
		case "right", "l":
			m.currentTab = utils.GetNextEnum(m.currentTab, BytecodeTab)
		case "up", "k":
			m.moveSelection(-1)
		case "down", "j":
			m.moveSelection(1)
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	switch m.currentTab {
	case FieldsTab:
		m.selectedField = clamp(m.selectedField+delta, 0, len(m.cf.Fields)-1)
	case MethodsTab, BytecodeTab:
		m.selectedMethod = clamp(m.selectedMethod+delta, 0, len(m.cf.Methods)-1)
	case ConstantPoolTab:
		m.scrollPositions[ConstantPoolTab] = clamp(m.scrollPositions[ConstantPoolTab]+delta, 0, m.cf.ConstantPool.Count()-1)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
