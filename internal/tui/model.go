// Package tui is the interactive tracker: an entry form, an animated
// balance, the record list, and a category breakdown chart, all over the
// same ledger the CLI commands use.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tally-dev/tally/internal/activitylog"
	"github.com/tally-dev/tally/internal/animator"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/form"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
	"github.com/tally-dev/tally/internal/summary"
)

// Form field focus stops; focusList is the final tab stop.
const (
	fieldDescription = iota
	fieldAmount
	fieldCategory
	fieldDate
	focusList
)

const (
	frameInterval = time.Second / 30
	dateFormat    = "2006-01-02"
	chartBarWidth = 24
)

// frameMsg is one animation frame. run identifies the animation it belongs
// to; frames from a cancelled run are dropped.
type frameMsg struct {
	run int
}

// fileChangedMsg reports an external write to the persisted document.
type fileChangedMsg struct{}

// MutationFunc observes successful mutations, e.g. for the activity log.
type MutationFunc func(action string, rec model.Record)

// Model is the Bubble Tea model for the tracker.
type Model struct {
	cfg      *config.Config
	ledger   *ledger.Service
	frm      *form.Form
	anim     *animator.Animator
	onMutate MutationFunc

	inputs    []textinput.Model
	typ       model.RecordType
	focus     int
	cursor    int
	sugIdx    int
	status    string
	statusErr bool
	width     int

	changes   <-chan struct{}
	stopWatch func() error
}

// New creates the tracker over an already-loaded ledger. docPath is watched
// for external changes; watching is best-effort.
func New(cfg *config.Config, svc *ledger.Service, docPath string) Model {
	m := Model{
		cfg:    cfg,
		ledger: svc,
		frm:    form.New(cfg.Categories.Default, time.Now),
		anim:   animator.New(animator.SystemClock(), time.Duration(cfg.UI.AnimationMs)*time.Millisecond),
		typ:    model.TypeExpense,
	}
	m.anim.Settle(summary.Balance(svc.All()).InexactFloat64())

	m.inputs = make([]textinput.Model, 4)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[fieldDescription].Placeholder = "description"
	m.inputs[fieldAmount].Placeholder = "0.00"
	m.inputs[fieldAmount].CharLimit = 16
	m.inputs[fieldCategory].Placeholder = "category"
	m.inputs[fieldDate].Placeholder = dateFormat
	m.inputs[fieldDate].CharLimit = 10
	m.syncInputs()
	m.inputs[fieldDescription].Focus()

	if ch, stop, err := store.Watch(docPath); err == nil {
		m.changes = ch
		m.stopWatch = stop
	}
	return m
}

// OnMutate registers fn to run after every successful add or remove.
func (m *Model) OnMutate(fn MutationFunc) {
	m.onMutate = fn
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case frameMsg:
		if msg.run != m.anim.Run() {
			return m, nil
		}
		if _, done := m.anim.Tick(); !done {
			return m, frameTick(msg.run)
		}
		return m, nil

	case fileChangedMsg:
		if err := m.ledger.Reload(); err != nil {
			m.status, m.statusErr = err.Error(), true
		}
		m.clampCursor()
		return m, tea.Batch(m.waitForChange(), m.observeBalance())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "tab":
		m.setFocus((m.focus + 1) % (focusList + 1))
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + focusList) % (focusList + 1))
		return m, nil

	case "ctrl+t":
		if m.typ == model.TypeExpense {
			m.typ = model.TypeIncome
		} else {
			m.typ = model.TypeExpense
		}
		return m, nil

	case "ctrl+n":
		// Cycle the category suggestions into the category field.
		if suggestions := m.cfg.Categories.Suggestions; len(suggestions) > 0 {
			m.inputs[fieldCategory].SetValue(suggestions[m.sugIdx%len(suggestions)])
			m.sugIdx++
		}
		return m, nil

	case "enter":
		if m.focus != focusList {
			return m, m.submit()
		}
		return m, nil
	}

	if m.focus == focusList {
		switch msg.String() {
		case "q", "esc":
			return m.quit()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < m.ledger.Len()-1 {
				m.cursor++
			}
			return m, nil
		case "d", "x", "backspace", "delete":
			return m, m.deleteAtCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.stopWatch != nil {
		_ = m.stopWatch()
	}
	return m, tea.Quit
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// submit pushes the form into the ledger. Validation failure preserves the
// fields for correction; success resets them to defaults.
func (m *Model) submit() tea.Cmd {
	m.frm.Description = m.inputs[fieldDescription].Value()
	m.frm.RawAmount = m.inputs[fieldAmount].Value()
	m.frm.Category = m.inputs[fieldCategory].Value()
	m.frm.Type = m.typ

	if raw := strings.TrimSpace(m.inputs[fieldDate].Value()); raw != "" {
		when, err := time.Parse(dateFormat, raw)
		if err != nil {
			m.status, m.statusErr = fmt.Sprintf("date must be %s", dateFormat), true
			return nil
		}
		m.frm.Date = when
	}

	rec, err := m.frm.Submit(m.ledger)
	if err != nil && rec.ID == "" {
		m.status, m.statusErr = err.Error(), true
		return nil
	}
	if err != nil {
		m.status, m.statusErr = "saved with warning: "+err.Error(), true
	} else {
		m.status, m.statusErr = "Added "+rec.Description, false
	}
	if m.onMutate != nil {
		m.onMutate(activitylog.ActionAdd, rec)
	}

	m.typ = m.frm.Type
	m.syncInputs()
	m.setFocus(fieldDescription)
	return m.observeBalance()
}

func (m *Model) deleteAtCursor() tea.Cmd {
	records := m.ledger.All()
	if m.cursor < 0 || m.cursor >= len(records) {
		return nil
	}
	rec := records[m.cursor]
	if err := m.ledger.Remove(rec.ID); err != nil {
		m.status, m.statusErr = "saved with warning: "+err.Error(), true
	} else {
		m.status, m.statusErr = "Removed "+rec.Description, false
	}
	if m.onMutate != nil {
		m.onMutate(activitylog.ActionRemove, rec)
	}
	m.clampCursor()
	return m.observeBalance()
}

// syncInputs copies the form's field state into the text inputs.
func (m *Model) syncInputs() {
	m.inputs[fieldDescription].SetValue(m.frm.Description)
	m.inputs[fieldAmount].SetValue(m.frm.RawAmount)
	m.inputs[fieldCategory].SetValue(m.frm.Category)
	m.inputs[fieldDate].SetValue(m.frm.Date.Format(dateFormat))
}

func (m *Model) clampCursor() {
	if n := m.ledger.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// observeBalance feeds the current balance to the animator and starts a
// frame loop when a new animation begins.
func (m *Model) observeBalance() tea.Cmd {
	balance := summary.Balance(m.ledger.All()).InexactFloat64()
	if m.anim.Observe(balance) {
		return frameTick(m.anim.Run())
	}
	return nil
}

func frameTick(run int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{run: run}
	})
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewBalance())
	b.WriteString("\n\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(m.viewChart())
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(mutedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("tab field/list  enter add  ctrl+t type  ctrl+n category  d delete  ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewBalance() string {
	balance := m.anim.Displayed()
	sign := ""
	if balance < 0 {
		sign = "-"
	}
	text := fmt.Sprintf("Balance: %s%s%.2f", sign, m.cfg.UI.Currency, math.Abs(balance))
	if balance < 0 {
		return titleStyle.Render(expenseStyle.Render(text))
	}
	return titleStyle.Render(incomeStyle.Render(text))
}

func (m Model) viewForm() string {
	labels := []string{"Description", "Amount", "Category", "Date"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("New record"))
	b.WriteString("\n")
	for i, input := range m.inputs {
		marker := "  "
		if m.focus == i {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-12s %s\n", marker, labels[i], input.View()))
	}
	typeText := string(m.typ)
	if m.typ == model.TypeExpense {
		typeText = expenseStyle.Render(typeText)
	} else {
		typeText = incomeStyle.Render(typeText)
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Type", typeText))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Records"))
	b.WriteString("\n")

	records := m.ledger.All()
	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("No records yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range records {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		amount := "+" + m.cfg.UI.Currency + r.Amount.StringFixed(2)
		style := incomeStyle
		if r.Type == model.TypeExpense {
			amount = "-" + m.cfg.UI.Currency + r.Amount.StringFixed(2)
			style = expenseStyle
		}
		b.WriteString(fmt.Sprintf("%s%s  %-12s  %-24s %12s\n",
			marker,
			r.Date.Format(dateFormat),
			truncate(r.Category, 12),
			truncate(r.Description, 24),
			style.Render(amount),
		))
	}
	return b.String()
}

func (m Model) viewChart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Spending by category"))
	b.WriteString("\n")
	totals := summary.CategoryTotals(m.ledger.All())
	lines := renderChart(totals, chartBarWidth, m.cfg.UI.Currency)
	if len(totals) == 0 {
		b.WriteString(mutedStyle.Render(lines[0]))
		b.WriteString("\n")
		return b.String()
	}
	for _, line := range lines {
		b.WriteString(barStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
