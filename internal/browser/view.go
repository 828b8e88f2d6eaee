package browser

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jclassdump/internal/classfile/model"
	"github.com/mabhi256/jclassdump/utils"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	header := m.renderTabBar()
	var body string
	switch m.currentTab {
	case OverviewTab:
		body = m.renderOverview()
	case ConstantPoolTab:
		body = m.renderConstantPool()
	case FieldsTab:
		body = m.renderFields()
	case MethodsTab:
		body = m.renderMethods()
	case BytecodeTab:
		body = m.renderBytecode()
	}

	help := utils.MutedStyle.Render("1-5 tabs · ←/→ switch · ↑/↓ select · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m *Model) renderTabBar() string {
	var tabs []string
	for i := OverviewTab; i <= BytecodeTab; i++ {
		title := fmt.Sprintf(" %d:%s ", i+1, tabTitles[i])
		if i == m.currentTab {
			tabs = append(tabs, utils.TabActiveStyle.Render(title))
		} else {
			tabs = append(tabs, utils.TabInactiveStyle.Render(title))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.JoinVertical(lipgloss.Left, utils.TitleStyle.Render(m.filename), bar)
}

func (m *Model) renderOverview() string {
	cf := m.cf
	name, _ := cf.ConstantPool.ClassName(cf.ThisClass, "this_class")

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", utils.InfoStyle.Render(name))
	fmt.Fprintf(&b, "major=%d minor=%d\n", cf.MajorVersion, cf.MinorVersion)
	fmt.Fprintf(&b, "flags: %s\n", utils.FormatAccessFlags(cf.AccessFlags))
	fmt.Fprintf(&b, "constant pool: %d entries\n", cf.ConstantPool.Count()-1)
	fmt.Fprintf(&b, "fields: %d   methods: %d   attributes: %d\n\n",
		len(cf.Fields), len(cf.Methods), len(cf.Attributes))

	if len(cf.Diagnostics) > 0 {
		b.WriteString(utils.WarningStyle.Render(fmt.Sprintf("%d decode diagnostic(s):", len(cf.Diagnostics))) + "\n")
		for _, d := range cf.Diagnostics {
			fmt.Fprintf(&b, "  %s\n", d.Error())
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderAttributeFrequencyChart())
	return b.String()
}

// renderAttributeFrequencyChart draws a bar for each of the eight most
// frequent attribute kinds across the class, fields, and methods combined,
// widest share on top; percentages are shares of all attributes counted.
func (m *Model) renderAttributeFrequencyChart() string {
	counts := attributeFrequency(m.cf)
	if len(counts) == 0 {
		return ""
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > 8 {
		names = names[:8]
	}

	bars := toFrequencyBars(counts, names)
	return renderFrequencyChart("attribute frequency", bars, max(40, m.width-4))
}

func attributeFrequency(cf *model.ClassFile) map[string]int {
	counts := make(map[string]int)
	add := func(attrs []model.Attribute) {
		for _, a := range attrs {
			name := a.Name
			if name == "" {
				name = "(unknown)"
			}
			counts[name]++
		}
	}
	add(cf.Attributes)
	for _, f := range cf.Fields {
		add(f.Attributes)
	}
	for _, mt := range cf.Methods {
		add(mt.Attributes)
	}
	return counts
}

func (m *Model) renderConstantPool() string {
	var b strings.Builder
	pool := &m.cf.ConstantPool
	start := m.scrollPositions[ConstantPoolTab]
	end := min(start+m.visibleRows(), pool.Count())
	if start >= pool.Count() {
		start = 0
	}
	for i := max(1, start); i < end; i++ {
		e, err := pool.Get(i)
		if err != nil || e.Unusable {
			continue
		}
		fmt.Fprintf(&b, "#%-4d %-20s %s\n", i, e.Tag, describeConstant(pool, e))
	}
	return b.String()
}

func describeConstant(pool *model.ConstantPool, e *model.ConstantPoolEntry) string {
	switch e.Tag {
	case model.TagUtf8:
		return fmt.Sprintf("%q", utils.TruncateString(e.Utf8Value, 60))
	case model.TagClass:
		name, _ := pool.Utf8(e.NameIndex, "")
		return name
	case model.TagString:
		s, _ := pool.Utf8(e.NameIndex, "")
		return fmt.Sprintf("%q", utils.TruncateString(s, 60))
	case model.TagInteger:
		return fmt.Sprintf("%d", e.IntValue)
	case model.TagFloat:
		return fmt.Sprintf("%g", e.FloatValue)
	case model.TagLong:
		return fmt.Sprintf("%d", e.LongValue)
	case model.TagDouble:
		return fmt.Sprintf("%g", e.DoubleValue)
	case model.TagFieldref, model.TagMethodref, model.TagInterfaceMethodref:
		return fmt.Sprintf("#%d.#%d", e.ClassIndex, e.NameAndTypeIndex)
	case model.TagNameAndType:
		name, _ := pool.Utf8(e.NameIndex, "")
		desc, _ := pool.Utf8(e.DescriptorIndex, "")
		return name + ":" + desc
	default:
		return ""
	}
}

func (m *Model) renderFields() string {
	var b strings.Builder
	for i, f := range m.cf.Fields {
		name, _ := m.cf.ConstantPool.Utf8(f.NameIndex, "name")
		desc, _ := m.cf.ConstantPool.Utf8(f.DescriptorIndex, "desc")
		line := fmt.Sprintf("%-30s %-10s %s", name, desc, utils.FormatAccessFlags(f.AccessFlags))
		if i == m.selectedField {
			b.WriteString(utils.InfoStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(m.cf.Fields) == 0 {
		b.WriteString(utils.MutedStyle.Render("(no fields)"))
	}
	return b.String()
}

func (m *Model) renderMethods() string {
	var b strings.Builder
	for i, mt := range m.cf.Methods {
		name, _ := m.cf.ConstantPool.Utf8(mt.NameIndex, "name")
		desc, _ := m.cf.ConstantPool.Utf8(mt.DescriptorIndex, "desc")
		line := fmt.Sprintf("%-30s %-10s %s", name, desc, utils.FormatAccessFlags(mt.AccessFlags))
		if i == m.selectedMethod {
			b.WriteString(utils.InfoStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(m.cf.Methods) == 0 {
		b.WriteString(utils.MutedStyle.Render("(no methods)"))
	}
	return b.String()
}

func (m *Model) renderBytecode() string {
	if m.selectedMethod >= len(m.cf.Methods) {
		return utils.MutedStyle.Render("(no methods)")
	}
	mt := m.cf.Methods[m.selectedMethod]
	name, _ := m.cf.ConstantPool.Utf8(mt.NameIndex, "name")

	var code *model.CodeAttribute
	for _, a := range mt.Attributes {
		if c, ok := a.Body.(*model.CodeAttribute); ok {
			code = c
			break
		}
	}
	if code == nil {
		return utils.MutedStyle.Render(name + " has no Code attribute (abstract or native)")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  max_stack=%d max_locals=%d\n\n", utils.InfoStyle.Render(name), code.MaxStack, code.MaxLocals)
	for _, ins := range code.Instructions {
		fmt.Fprintf(&b, "%6d: %s\n", ins.Offset, ins.Mnemonic)
	}

	if len(code.Instructions) > 1 {
		b.WriteString("\n")
		b.WriteString(renderBytecodeOffsetChart(code, max(30, m.width-4)))
	}
	return b.String()
}

// renderBytecodeOffsetChart plots instruction offset against instruction
// index. Instructions holds one entry per code byte, so offset equals index
// and the line rises evenly to code_length-1; operand widths do not show.
func renderBytecodeOffsetChart(code *model.CodeAttribute, width int) string {
	chart := utils.NewChart(width, 8)
	epoch := time.Unix(0, 0)
	for i, ins := range code.Instructions {
		chart.Push(utils.TimePoint{
			Time:  epoch.Add(time.Duration(i) * time.Second),
			Value: float64(ins.Offset),
		})
	}
	chart.SetStyle(lipgloss.NewStyle().Foreground(utils.InfoColor))
	chart.Draw()
	return "offset by instruction index\n" + chart.View()
}

func (m *Model) visibleRows() int {
	if m.height <= 6 {
		return 20
	}
	return m.height - 6
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
