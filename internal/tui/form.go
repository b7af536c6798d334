// Package tui provides the interactive questionnaire form that feeds the
// diagnose command when no answers file is supplied.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/cli"
)

type question struct {
	key         string
	prompt      string
	helper      string
	placeholder string
	validate    func(string) error
}

func questionnaire() []question {
	money := func(field string) func(string) error {
		return func(v string) error {
			_, err := answers.ParseMoney(v, field)
			return err
		}
	}

	return []question{
		{
			key:         "revenue",
			prompt:      "What was your total revenue last month?",
			helper:      "Everything invoiced or taken at the till.",
			placeholder: "£8,000",
			validate:    money("revenue"),
		},
		{
			key:         "margin",
			prompt:      "What is your net margin, as a fraction?",
			helper:      "Profit divided by revenue. Negative if you are losing money.",
			placeholder: "0.20",
		},
		{
			key:         "cac",
			prompt:      "What does it cost to win one new customer?",
			helper:      "Last month's marketing spend divided by new customers.",
			placeholder: "£250",
			validate:    money("cac"),
		},
		{
			key:         "ltv",
			prompt:      "What does a customer spend with you over their lifetime?",
			placeholder: "£3,000",
			validate:    money("ltv"),
		},
		{
			key:         "offer_price",
			prompt:      "What is the price of your core offer?",
			placeholder: "£1,000",
			validate:    money("offer_price"),
		},
		{
			key:         "upsell_rate",
			prompt:      "What fraction of customers buy from you again?",
			placeholder: "0.05",
		},
		{
			key:         "cash_balance",
			prompt:      "Total cash in all business accounts right now?",
			helper:      "Include savings and current accounts.",
			placeholder: "£12,000",
			validate:    money("cash_balance"),
		},
		{
			key:         "monthly_burn",
			prompt:      "Total monthly costs (rent + staff + materials)?",
			placeholder: "£4,000",
			validate:    money("monthly_burn"),
		},
		{
			key:    "bottleneck",
			prompt: "What is your biggest headache right now?",
			helper: "survival, stagnation, leadflow, growth or operations",
			validate: func(v string) error {
				_, err := answers.ParseBottleneck(v)
				return err
			},
		},
		{
			key:    "lead_source",
			prompt: "Where do new customers mostly come from?",
			helper: "cold (paid/ads) or organic (word of mouth). Leave blank if unsure.",
			validate: func(v string) error {
				switch strings.ToLower(strings.TrimSpace(v)) {
				case "", "cold", "organic":
					return nil
				}
				return fmt.Errorf("answer cold or organic (or leave blank)")
			},
		},
		{
			key:    "intends_to_expand",
			prompt: "Are you planning to expand soon (new site, new hire)?",
			helper: "y or n",
			validate: func(v string) error {
				switch strings.ToLower(strings.TrimSpace(v)) {
				case "", "y", "yes", "n", "no":
					return nil
				}
				return fmt.Errorf("answer y or n")
			},
		},
	}
}

// FormModel walks through the questionnaire one input at a time.
type FormModel struct {
	values    map[string]string
	errMsg    string
	questions []question
	input     textinput.Model
	index     int
	done      bool
	aborted   bool
}

// NewFormModel creates a fresh questionnaire form.
func NewFormModel() FormModel {
	questions := questionnaire()

	input := textinput.New()
	input.Placeholder = questions[0].placeholder
	input.Focus()
	input.CharLimit = 64
	input.Width = 40

	return FormModel{
		questions: questions,
		values:    make(map[string]string, len(questions)),
		input:     input,
	}
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			q := m.questions[m.index]
			value := strings.TrimSpace(m.input.Value())
			if q.validate != nil {
				if err := q.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}

			m.values[q.key] = value
			m.errMsg = ""
			m.index++
			if m.index >= len(m.questions) {
				m.done = true
				return m, tea.Quit
			}

			m.input.SetValue("")
			m.input.Placeholder = m.questions[m.index].placeholder
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m FormModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	q := m.questions[m.index]

	var b strings.Builder
	b.WriteString(cli.FormatTitle("🧠 Business Diagnosis"))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(cli.BoldStyle.Render(q.prompt))
	b.WriteString("\n")
	if q.helper != "" {
		b.WriteString(cli.SubtleStyle.Render(q.helper))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(cli.DangerStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("enter to continue • esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Raw converts the collected values into an unvalidated answer set.
func (m FormModel) Raw() answers.Raw {
	yes := func(v string) bool {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes":
			return true
		}
		return false
	}

	return answers.Raw{
		Revenue:         m.values["revenue"],
		Margin:          m.values["margin"],
		CAC:             m.values["cac"],
		LTV:             m.values["ltv"],
		OfferPrice:      m.values["offer_price"],
		UpsellRate:      m.values["upsell_rate"],
		CashBalance:     m.values["cash_balance"],
		MonthlyBurn:     m.values["monthly_burn"],
		Bottleneck:      m.values["bottleneck"],
		LeadSource:      m.values["lead_source"],
		IntendsToExpand: yes(m.values["intends_to_expand"]),
	}
}

// RunForm runs the interactive questionnaire and returns the collected raw
// answers. The boolean is false when the user aborted.
func RunForm() (answers.Raw, bool, error) {
	final, err := tea.NewProgram(NewFormModel()).Run()
	if err != nil {
		return answers.Raw{}, false, fmt.Errorf("questionnaire failed: %w", err)
	}

	m, ok := final.(FormModel)
	if !ok || m.aborted || !m.done {
		return answers.Raw{}, false, nil
	}
	return m.Raw(), true, nil
}
