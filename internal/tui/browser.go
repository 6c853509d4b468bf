// Package tui is an interactive terminal browser for the interaction
// curves: pick a mode, tweak parameters, render the plot in place.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/radsim/internal/config"
	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/request"
	"github.com/san-kum/radsim/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var modeInfo = map[string]string{
	"xray":     "photoelectric / compton / rayleigh shares (keV)",
	"gamma":    "attenuation with pair threshold (MeV)",
	"bragg":    "proton depth-dose curve",
	"stopping": "bethe-bloch stopping power",
	"range":    "csda range vs energy",
	"lateral":  "highland lateral spread",
}

type screen int

const (
	screenMenu screen = iota
	screenParams
	screenPlot
)

type param struct {
	name  string
	value float64
}

type Model struct {
	screen screen
	cursor int
	modes  []string
	mode   string

	tbl       *material.Table
	materials []string
	matIdx    int

	params      []param
	paramCursor int
	editing     bool
	editBuf     string

	output string
	errMsg string

	width  int
	height int
}

func New(tbl *material.Table, cfg *config.Config) *Model {
	materials := tbl.Names()
	matIdx := 0
	for i, n := range materials {
		if n == cfg.Material {
			matIdx = i
		}
	}
	return &Model{
		screen:    screenMenu,
		modes:     []string{"xray", "gamma", "bragg", "stopping", "range", "lateral"},
		tbl:       tbl,
		materials: materials,
		matIdx:    matIdx,
		width:     80,
		height:    24,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(tbl *material.Table, cfg *config.Config) error {
	_, err := tea.NewProgram(New(tbl, cfg), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEdit(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		switch m.screen {
		case screenPlot:
			m.screen = screenParams
		case screenParams:
			m.screen = screenMenu
		default:
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenParams:
		return m.handleParamsKey(msg)
	case screenPlot:
		if msg.String() == "enter" {
			m.screen = screenParams
		}
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case "enter":
		m.mode = m.modes[m.cursor]
		m.params = defaultParams(m.mode)
		m.paramCursor = 0
		m.errMsg = ""
		m.screen = screenParams
	}
	return m, nil
}

func (m *Model) handleParamsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the material row sits after the numeric params
	matRow := len(m.params)

	switch msg.String() {
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < matRow {
			m.paramCursor++
		}
	case "left", "h":
		if m.paramCursor == matRow && m.matIdx > 0 {
			m.matIdx--
		}
	case "right", "l":
		if m.paramCursor == matRow && m.matIdx < len(m.materials)-1 {
			m.matIdx++
		}
	case "e":
		if m.paramCursor < matRow {
			m.editing = true
			m.editBuf = ""
		}
	case "enter":
		m.compute()
	}
	return m, nil
}

func (m *Model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.params[m.paramCursor].value = v
		}
		m.editing = false
	case "esc":
		m.editing = false
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] == '.' || s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m *Model) compute() {
	req := m.buildRequest()
	curves, err := req.Curves(m.tbl)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.output = viz.Render(curves)
	m.screen = screenPlot
}

func (m *Model) buildRequest() request.Request {
	get := func(name string) float64 {
		for _, p := range m.params {
			if p.name == name {
				return p.value
			}
		}
		return 0
	}
	mat := m.materials[m.matIdx]

	switch m.mode {
	case "xray":
		r := request.DefaultXRay()
		r.EminKeV = get("emin")
		r.EmaxKeV = get("emax")
		r.Material = request.Ref(mat)
		return r
	case "gamma":
		r := request.DefaultGamma()
		r.EminMeV = get("emin")
		r.EmaxMeV = get("emax")
		r.Material = request.Ref(mat)
		return r
	case "bragg":
		r := request.DefaultBragg()
		r.E0MeV = get("e0")
		r.DxCm = get("dx")
		r.Material = mat
		return r
	case "stopping":
		r := request.DefaultStopping()
		r.EminMeV = get("emin")
		r.EmaxMeV = get("emax")
		r.Material = mat
		return r
	case "range":
		r := request.DefaultRange()
		r.EminMeV = get("emin")
		r.EmaxMeV = get("emax")
		r.Material = mat
		return r
	default:
		r := request.DefaultLateral()
		r.E0MeV = get("e0")
		r.ZmaxCm = get("zmax")
		r.Material = mat
		return r
	}
}

func defaultParams(mode string) []param {
	switch mode {
	case "xray":
		return []param{{"emin", 20}, {"emax", 120}}
	case "gamma":
		return []param{{"emin", 0.1}, {"emax", 10}}
	case "bragg":
		return []param{{"e0", 150}, {"dx", 0.01}}
	case "lateral":
		return []param{{"e0", 150}, {"zmax", 25}}
	default: // stopping, range
		return []param{{"emin", 10}, {"emax", 250}}
	}
}

func (m *Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenParams:
		return m.viewParams()
	default:
		return m.viewPlot()
	}
}

func (m *Model) viewMenu() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("radsim") + dim.Render("  interaction curve browser") + "\n\n")
	for i, mode := range m.modes {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = green.Render("> ")
			style = green
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", marker, style.Render(mode), dim.Render(modeInfo[mode])))
	}
	sb.WriteString("\n" + dim.Render("j/k move · enter select · q quit"))
	return sb.String()
}

func (m *Model) viewParams() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render(m.mode) + dim.Render("  "+modeInfo[m.mode]) + "\n\n")

	for i, p := range m.params {
		marker := "  "
		style := white
		if i == m.paramCursor {
			marker = green.Render("> ")
			style = green
		}
		val := fmt.Sprintf("%g", p.value)
		if m.editing && i == m.paramCursor {
			val = yellow.Render(m.editBuf + "_")
		}
		sb.WriteString(fmt.Sprintf("%s%-10s %s\n", marker, style.Render(p.name), val))
	}

	marker := "  "
	style := white
	if m.paramCursor == len(m.params) {
		marker = green.Render("> ")
		style = green
	}
	sb.WriteString(fmt.Sprintf("%s%-10s %s\n", marker, style.Render("material"), m.materials[m.matIdx]))

	if m.errMsg != "" {
		sb.WriteString("\n" + red.Render(m.errMsg) + "\n")
	}
	sb.WriteString("\n" + dim.Render("j/k move · h/l material · e edit · enter plot · esc back"))
	return sb.String()
}

func (m *Model) viewPlot() string {
	return m.output + "\n" + dim.Render("enter params · esc back · q quit")
}
