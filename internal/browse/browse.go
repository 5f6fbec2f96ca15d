// Package browse is the interactive property browser: a compound list
// with incremental filtering on the left, the property panel and a
// vaporization curve for the selected compound on the right.
package browse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"chemprop/internal/chemdata"
	"chemprop/internal/critical"
	"chemprop/internal/environ"
	"chemprop/internal/phasechange"
	"chemprop/internal/triple"
)

const listHeight = 18

var (
	listStyle     = lipgloss.NewStyle().Padding(1, 2).Width(34)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(52)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	methodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Compound is one row of the browser list.
type Compound struct {
	CAS  string
	Name string
}

type propertyLine struct {
	label   string
	unit    string
	value   func(string) (float64, bool)
	using   func(string, string) (float64, bool)
	methods func(string) []string
}

var panelProperties = []propertyLine{
	{"Boiling point", "K", phasechange.Tb, phasechange.TbUsing, phasechange.TbMethods},
	{"Melting point", "K", phasechange.Tm, phasechange.TmUsing, phasechange.TmMethods},
	{"Fusion enthalpy", "J/mol", phasechange.Hfus, phasechange.HfusUsing, phasechange.HfusMethods},
	{"Triple point T", "K", triple.Tt, triple.TtUsing, triple.TtMethods},
	{"Triple point P", "Pa", triple.Pt, triple.PtUsing, triple.PtMethods},
	{"Critical T", "K", critical.Tc, critical.TcUsing, critical.TcMethods},
	{"Critical P", "Pa", critical.Pc, critical.PcUsing, critical.PcMethods},
	{"Acentric factor", "", critical.Omega, critical.OmegaUsing, critical.OmegaMethods},
	{"GWP", "", environ.GWP, environ.GWPUsing, environ.GWPMethods},
	{"ODP", "", environ.ODP, environ.ODPUsing, environ.ODPMethods},
	{"log P(o/w)", "", environ.LogP, environ.LogPUsing, environ.LogPMethods},
}

// Census collects every compound any registered table knows, sorted by
// name. Tables that fail to load contribute nothing.
func Census() []Compound {
	seen := make(map[string]string)
	for _, src := range chemdata.All() {
		tbl, err := src.Table()
		if err != nil {
			continue
		}
		for _, cas := range tbl.CAS() {
			if _, ok := seen[cas]; !ok {
				name, _ := tbl.Chemical(cas)
				seen[cas] = name
			}
		}
	}

	compounds := make([]Compound, 0, len(seen))
	for cas, name := range seen {
		compounds = append(compounds, Compound{CAS: cas, Name: name})
	}
	sort.Slice(compounds, func(i, j int) bool {
		return compounds[i].Name < compounds[j].Name
	})
	return compounds
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	compounds   []Compound
	visible     []int
	cursor      int
	offset      int
	filter      string
	filtering   bool
	showMethods bool
}

func NewModel() Model {
	m := Model{compounds: Census()}
	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "enter":
			m.filtering = false
		case "esc":
			m.filtering = false
			m.filter = ""
			m.refilter()
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.refilter()
			}
		case "ctrl+c":
			return m, tea.Quit
		default:
			if key.Type == tea.KeyRunes {
				m.filter += string(key.Runes)
				m.refilter()
			}
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.filtering = true
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup":
		m.move(-listHeight)
	case "pgdown":
		m.move(listHeight)
	case "m":
		m.showMethods = !m.showMethods
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
}

func (m *Model) refilter() {
	needle := strings.ToLower(m.filter)
	m.visible = m.visible[:0]
	for i, c := range m.compounds {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(c.CAS, needle) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m Model) selected() (Compound, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return Compound{}, false
	}
	return m.compounds[m.visible[m.cursor]], true
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), m.panelView())
}

func (m Model) listView() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("COMPOUNDS") + "\n")

	if m.filtering {
		s.WriteString(filterStyle.Render("/"+m.filter+"▌") + "\n")
	} else if m.filter != "" {
		s.WriteString(filterStyle.Render("/"+m.filter) + "\n")
	} else {
		s.WriteString(methodStyle.Render(fmt.Sprintf("%d compounds", len(m.visible))) + "\n")
	}
	s.WriteString("\n")

	end := m.offset + listHeight
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		c := m.compounds[m.visible[i]]
		line := fmt.Sprintf("%-18.18s %s", c.Name, c.CAS)
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	if len(m.visible) == 0 {
		s.WriteString(methodStyle.Render("  (no match)") + "\n")
	}

	s.WriteString(helpStyle.Render("↑↓:Move /:Filter M:Methods Q:Quit"))
	return listStyle.Render(s.String())
}

func (m Model) panelView() string {
	c, ok := m.selected()
	if !ok {
		return panelStyle.Render(methodStyle.Render("nothing selected"))
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(c.Name)) + "\n")
	s.WriteString(methodStyle.Render("CAS "+c.CAS) + "\n\n")

	for _, p := range panelProperties {
		v, ok := p.value(c.CAS)
		if !ok {
			continue
		}
		s.WriteString(labelStyle.Render(p.label) + valueStyle.Render(formatValue(v, p.unit)) + "\n")
		if m.showMethods {
			for _, method := range p.methods(c.CAS) {
				mv, _ := p.using(c.CAS, method)
				s.WriteString(methodStyle.Render(fmt.Sprintf("    %-22s %s", method, formatValue(mv, p.unit))) + "\n")
			}
		}
	}

	if chart := m.curveView(c.CAS); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return panelStyle.Render(s.String())
}

// curveView plots the fitted vaporization curve over the reduced
// temperature range 0.5..0.95, where every fit is defined.
func (m Model) curveView(cas string) string {
	fit, ok := phasechange.HvapFit(cas)
	if !ok {
		return ""
	}

	points := make([]float64, 0, 40)
	for i := 0; i < 40; i++ {
		T := (0.5 + 0.45*float64(i)/39.0) * fit.Tc
		v, ok := phasechange.HvapFromFit(cas, T)
		if !ok {
			return ""
		}
		points = append(points, v)
	}
	return asciigraph.Plot(points,
		asciigraph.Height(6),
		asciigraph.Width(40),
		asciigraph.Caption("Hvap J/mol, 0.50Tc to 0.95Tc"))
}

func formatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'g', 6, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
