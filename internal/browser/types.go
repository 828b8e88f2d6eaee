// Package browser implements an interactive terminal viewer over a decoded
// class file: tabbed navigation across the constant pool, fields, methods,
// and bytecode, in the manner of a Bubble Tea dashboard.
package browser

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
)

type Model struct {
	cf       *model.ClassFile
	filename string

	currentTab TabType
	width      int
	height     int

	scrollPositions map[TabType]int
	selectedMethod  int
	selectedField   int

	keys KeyMap
}

type TabType int

const (
	OverviewTab TabType = iota
	ConstantPoolTab
	FieldsTab
	MethodsTab
	BytecodeTab
)

var tabTitles = map[TabType]string{
	OverviewTab:     "Overview",
	ConstantPoolTab: "Constant Pool",
	FieldsTab:       "Fields",
	MethodsTab:      "Methods",
	BytecodeTab:     "Bytecode",
}

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Tab4  key.Binding
	Tab5  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:  k([]string{"1"}, "1", "overview"),
		Tab2:  k([]string{"2"}, "2", "constant pool"),
		Tab3:  k([]string{"3"}, "3", "fields"),
		Tab4:  k([]string{"4"}, "4", "methods"),
		Tab5:  k([]string{"5"}, "5", "bytecode"),
		Left:  k([]string{"left", "h"}, "←/h", "prev tab"),
		Right: k([]string{"right", "l"}, "→/l", "next tab"),
		Up:    k([]string{"up", "k"}, "↑/k", "up"),
		Down:  k([]string{"down", "j"}, "↓/j", "down"),
		Quit:  k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

func initialModel(filename string, cf *model.ClassFile) *Model {
	return &Model{
		cf:              cf,
		filename:        filename,
		currentTab:      OverviewTab,
		scrollPositions: make(map[TabType]int),
		keys:            DefaultKeyMap(),
	}
}
