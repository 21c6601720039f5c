package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/session"
)

const maxHistory = 16

type keyMap struct {
	Quit    key.Binding
	Next    key.Binding
	AppMode key.Binding
	Newline key.Binding
	Backspc key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next codepage"),
		),
		AppMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cursor mode"),
		),
		Newline: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "newline mode"),
		),
		Backspc: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "backspace code"),
		),
	}
}

// entry is one line of the key log.
type entry struct {
	label string
	cp    codepage.Codepage
	seq   []byte
	note  string
}

type model struct {
	sess    *session.Session
	keys    keyMap
	history []entry
	width   int
}

func newModel(tr *codepage.Translator, opts keyboard.Options) model {
	return model{
		sess: session.New("cpkeys", tr, opts),
		keys: defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("cpkeys")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.sess.Keyboard()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.nextCodepage()
		return m, nil
	case key.Matches(msg, m.keys.AppMode):
		opts := kb.Options()
		opts.ApplicationCursor = !opts.ApplicationCursor
		kb.SetOptions(opts)
		return m, nil
	case key.Matches(msg, m.keys.Newline):
		opts := kb.Options()
		opts.NewlineMode = !opts.NewlineMode
		kb.SetOptions(opts)
		return m, nil
	case key.Matches(msg, m.keys.Backspc):
		opts := kb.Options()
		opts.BackspaceSendsDEL = !opts.BackspaceSendsDEL
		kb.SetOptions(opts)
		return m, nil
	}

	m.record(msg)
	return m, nil
}

// record encodes msg in the session and appends the result to the log.
func (m *model) record(msg tea.KeyMsg) {
	e := entry{label: msg.String(), cp: m.sess.Codepage()}
	ks, ok := keystrokeFromTea(msg)
	if !ok {
		e.note = "no keystroke"
	} else {
		e.label = ks.String()
		seq, err := m.sess.EncodeKey(ks)
		switch {
		case errors.Is(err, keyboard.ErrNoSequence):
			e.note = "no sequence"
		case err != nil:
			e.note = err.Error()
		default:
			e.seq = seq
			if _, err := m.sess.Keyboard().Encode(ks); errors.Is(err, codepage.ErrUnrepresentable) {
				e.note = "substituted"
			}
		}
	}
	logging.DebugBytes(e.label, e.seq)

	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// nextCodepage selects the codepage after the active one, wrapping around,
// and refreshes so the session drops any cached state.
func (m *model) nextCodepage() {
	tr := m.sess.Translator()
	next := codepage.Codepage((int(tr.Active()) + 1) % codepage.NumCodepages)
	if err := tr.SetActive(next); err != nil {
		return
	}
	tr.Refresh()
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(22)
	bytesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Width(28)
	cpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m model) View() string {
	var b strings.Builder

	opts := m.sess.Keyboard().Options()
	cursor := "normal"
	if opts.ApplicationCursor {
		cursor = "application"
	}
	bs := "DEL"
	if !opts.BackspaceSendsDEL {
		bs = "BS"
	}
	cp := m.sess.Codepage()
	b.WriteString(titleStyle.Render(fmt.Sprintf(" cpkeys  %s (%s)  cursor:%s  backspace:%s  newline:%t ",
		cp, cp.Description(), cursor, bs, opts.NewlineMode)))
	b.WriteString("\n\n")

	if len(m.history) == 0 {
		b.WriteString(helpStyle.Render("Press a key."))
		b.WriteString("\n")
	}
	for _, e := range m.history {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(e.label),
			bytesStyle.Render(formatBytes(e.seq)),
			cpStyle.Render(e.cp.String()),
			noteStyle.Render(e.note),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var help []string
	for _, k := range []key.Binding{m.keys.Quit, m.keys.Next, m.keys.AppMode, m.keys.Newline, m.keys.Backspc} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

// formatBytes renders seq as hex with ESC spelled out.
func formatBytes(seq []byte) string {
	if len(seq) == 0 {
		return "-"
	}
	parts := make([]string, len(seq))
	for i, c := range seq {
		if c == codepage.ESC {
			parts[i] = "ESC"
			continue
		}
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}
