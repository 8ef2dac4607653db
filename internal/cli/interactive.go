package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/platform"
)

// menuItem represents a single configurable option in the TUI.
type menuItem struct {
	label    string
	value    string
	options  []menuOption
	required bool
	editing  bool
	cursor   int // cursor within options when editing
}

type menuOption struct {
	label string
	value string
}

// menuState tracks which phase the TUI is in.
type menuState int

const (
	stateMenu menuState = iota
	stateEditing
	statePersonaPicker
)

// tuiModel is the Bubble Tea model for the interactive menu.
type tuiModel struct {
	items         []menuItem
	cursor        int
	state         menuState
	width         int
	err           error
	confirmed     bool
	cancelled     bool
	personas      map[string]bool // multi-select persona picker
	personaOpts   []menuOption
	personaCursor int
}

// style constants
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	menuLabelStyle = lipgloss.NewStyle().
			Width(18).
			Align(lipgloss.Right).
			MarginRight(2)

	menuValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	menuValueDimStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555")).
				Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true).
				PaddingLeft(2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 3)

	buttonDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Padding(0, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	headerBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#7D56F4")).
			MarginBottom(1).
			PaddingBottom(0)
)

// menu item indices
const (
	idxInput    = 0
	idxOutput   = 1
	idxPlatform = 2
	idxKind     = 3
	idxPersonas = 4
	idxKeywords = 5
	idxProvider = 6
	idxModel    = 7
	// idxGenerate = last item
)

// platformOptions returns a selector entry per supported platform.
func platformOptions() []menuOption {
	var opts []menuOption
	for _, id := range platform.IDs() {
		spec, err := platform.Lookup(id)
		if err != nil {
			continue
		}
		opts = append(opts, menuOption{
			label: fmt.Sprintf("%s (%s)", spec.DisplayName, spec.DisplayFormat),
			value: id,
		})
	}
	return opts
}

// modelOptions returns the model choices for a given provider.
func modelOptions(provider string) []menuOption {
	switch provider {
	case "bedrock":
		return []menuOption{
			{label: "Nova Lite (fast, low cost) (default)", value: "nova-lite"},
		}
	default:
		return []menuOption{
			{label: "Haiku 4.5 (fast, affordable) (default)", value: "haiku"},
			{label: "Sonnet 4.5 (balanced)", value: "sonnet"},
		}
	}
}

// defaultModel returns the default model for a provider.
func defaultModel(provider string) string {
	if provider == "bedrock" {
		return "nova-lite"
	}
	return "haiku"
}

// loadPersonaOptions lists trained and built-in persona names for the
// multi-select picker. A load failure just yields the built-ins.
func loadPersonaOptions() []menuOption {
	var opts []menuOption
	for _, name := range persona.BuiltinNames() {
		opts = append(opts, menuOption{label: name + " (built-in)", value: name})
	}

	store, _, err := openStoreAndBuilder()
	if err != nil {
		return opts
	}
	profiles, err := store.List(context.Background())
	if err != nil {
		return opts
	}
	for _, p := range profiles {
		label := p.Name
		if p.Description != "" {
			label += " - " + p.Description
		}
		opts = append(opts, menuOption{label: label, value: p.Name})
	}
	return opts
}

func buildMenuItems() []menuItem {
	modelVal := flagModel
	if modelVal == "" {
		modelVal = defaultModel(flagProvider)
	}

	items := []menuItem{
		{
			label:    "Input",
			value:    flagInput,
			required: true,
		},
		{
			label: "Output",
			value: flagOutput,
		},
		{
			label:   "Platform",
			value:   flagPlatform,
			options: platformOptions(),
		},
		{
			label: "Kind",
			value: flagKind,
			options: []menuOption{
				{label: "Post - platform-native social post (default)", value: "post"},
				{label: "Blog - long-form article", value: "blog"},
				{label: "Summary - key takeaways", value: "summary"},
				{label: "Diagram - Mermaid diagram of the content", value: "diagram"},
			},
		},
		{
			label: "Personas",
			value: flagPersonas,
		},
		{
			label: "Keywords",
			value: flagKeywords,
		},
		{
			label: "Provider",
			value: flagProvider,
			options: []menuOption{
				{label: "Claude API (default)", value: "claude"},
				{label: "AWS Bedrock", value: "bedrock"},
			},
		},
		{
			label:   "Model",
			value:   modelVal,
			options: modelOptions(flagProvider),
		},
	}

	// Generate button at the end
	items = append(items, menuItem{
		label: ">>> Generate <<<",
	})

	// Pre-select cursor position for options
	for i := range items {
		if len(items[i].options) > 0 {
			for j, opt := range items[i].options {
				if opt.value == items[i].value {
					items[i].cursor = j
					break
				}
			}
		}
	}

	return items
}

func initialTUIModel() tuiModel {
	m := tuiModel{
		items:       buildMenuItems(),
		cursor:      idxInput,
		state:       stateMenu,
		personas:    map[string]bool{},
		personaOpts: loadPersonaOptions(),
	}
	for _, ref := range strings.Split(flagPersonas, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(ref), ":")
		if name != "" {
			m.personas[name] = true
		}
	}
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) generateIdx() int {
	return len(m.items) - 1
}

func (m tuiModel) isTextInput(idx int) bool {
	return idx == idxInput || idx == idxOutput || idx == idxKeywords
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateEditing:
			return m.updateEditing(msg)
		case statePersonaPicker:
			return m.updatePersonaPicker(msg)
		}
	}
	return m, nil
}

func (m tuiModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if m.cursor == m.generateIdx() {
			// Validate required fields
			if m.items[idxInput].value == "" {
				m.err = fmt.Errorf("Input is required")
				return m, nil
			}
			m.confirmed = true
			return m, tea.Quit
		}

		// Input/Output/Keywords are text fields: open inline editor
		if m.isTextInput(m.cursor) {
			m.state = stateEditing
			m.items[m.cursor].editing = true
			m.err = nil
			return m, nil
		}

		// Personas uses multi-select
		if m.cursor == idxPersonas {
			m.state = statePersonaPicker
			m.personaCursor = 0
			m.err = nil
			return m, nil
		}

		// All others: open option selector
		if len(m.items[m.cursor].options) > 0 {
			m.state = stateEditing
			m.items[m.cursor].editing = true
			m.err = nil
			return m, nil
		}
	}
	return m, nil
}

func (m tuiModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := m.cursor
	item := &m.items[idx]

	// Text input for Input/Output/Keywords
	if m.isTextInput(idx) {
		switch msg.String() {
		case "enter":
			item.editing = false
			m.state = stateMenu
			// Auto-advance to next item
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "esc":
			item.editing = false
			m.state = stateMenu
			return m, nil
		case "backspace":
			if len(item.value) > 0 {
				item.value = item.value[:len(item.value)-1]
			}
			return m, nil
		case "ctrl+u":
			item.value = ""
			return m, nil
		default:
			// Accept typed characters and pasted text
			if msg.Type == tea.KeyRunes {
				item.value += string(msg.Runes)
			}
			return m, nil
		}
	}

	// Option selector for other fields
	switch msg.String() {
	case "enter", " ":
		if item.cursor >= 0 && item.cursor < len(item.options) {
			item.value = item.options[item.cursor].value
		}
		item.editing = false
		m.state = stateMenu

		// If provider changed, rebuild the model options for it
		if idx == idxProvider {
			m.items[idxModel].options = modelOptions(item.value)
			m.items[idxModel].value = defaultModel(item.value)
			m.items[idxModel].cursor = 0
		}

		// Auto-advance
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "esc":
		item.editing = false
		m.state = stateMenu
		return m, nil

	case "up", "k":
		if item.cursor > 0 {
			item.cursor--
		}

	case "down", "j":
		if item.cursor < len(item.options)-1 {
			item.cursor++
		}
	}
	return m, nil
}

func (m tuiModel) updatePersonaPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Commit selections in picker order
		var selected []string
		for _, opt := range m.personaOpts {
			if m.personas[opt.value] {
				selected = append(selected, opt.value)
			}
		}
		m.items[idxPersonas].value = strings.Join(selected, ", ")
		m.state = stateMenu
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "esc":
		m.state = stateMenu
		return m, nil

	case " ", "x":
		// Toggle current persona
		if len(m.personaOpts) > 0 {
			opt := m.personaOpts[m.personaCursor]
			m.personas[opt.value] = !m.personas[opt.value]
		}

	case "up", "k":
		if m.personaCursor > 0 {
			m.personaCursor--
		}

	case "down", "j":
		if m.personaCursor < len(m.personaOpts)-1 {
			m.personaCursor++
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	// Title
	title := titleStyle.Render("Repost")
	header := headerBorder.Render(title)
	b.WriteString(header)
	b.WriteString("\n")

	genIdx := m.generateIdx()

	for i, item := range m.items {
		isActive := m.cursor == i

		// Generate button
		if i == genIdx {
			b.WriteString("\n")
			if isActive {
				b.WriteString("  " + buttonStyle.Render(" Generate "))
			} else {
				b.WriteString("  " + buttonDimStyle.Render(" Generate "))
			}
			b.WriteString("\n")
			continue
		}

		// Cursor indicator
		cursor := "  "
		if isActive {
			cursor = cursorStyle.Render("> ")
		}

		// Label
		label := item.label
		if item.required {
			label = label + requiredStyle.Render("*")
		}
		renderedLabel := menuLabelStyle.Render(label)

		// Value display
		var renderedValue string
		if item.editing && m.isTextInput(i) {
			// Show text input with blinking cursor
			renderedValue = menuValueStyle.Render(item.value + "_")
		} else if item.value == "" {
			// Show contextual placeholder text
			placeholder := "(not set)"
			switch i {
			case idxOutput:
				placeholder = "(stdout)"
			case idxPersonas:
				placeholder = "(none, standard voice)"
			case idxKeywords:
				placeholder = "(optional, comma-separated)"
			}
			renderedValue = menuValueDimStyle.Render(placeholder)
		} else {
			displayVal := item.value
			// Show friendly label for option-based items
			for _, opt := range item.options {
				if opt.value == item.value {
					displayVal = opt.label
					break
				}
			}
			renderedValue = menuValueStyle.Render(displayVal)
		}

		b.WriteString(cursor + renderedLabel + " " + renderedValue + "\n")

		// Show expanded options when editing
		if item.editing && len(item.options) > 0 && !m.isTextInput(i) {
			for j, opt := range item.options {
				if j == item.cursor {
					b.WriteString(selectedOptionStyle.Render("> "+opt.label) + "\n")
				} else {
					b.WriteString(optionStyle.Render("  "+opt.label) + "\n")
				}
			}
		}
	}

	// Persona picker overlay
	if m.state == statePersonaPicker {
		b.WriteString("\n")
		if len(m.personaOpts) == 0 {
			b.WriteString(menuValueDimStyle.Render("  No personas trained yet") + "\n")
		}
		for j, opt := range m.personaOpts {
			checked := " "
			if m.personas[opt.value] {
				checked = "x"
			}
			prefix := "  "
			if j == m.personaCursor {
				prefix = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("  %s[%s] %s\n", prefix, checked, opt.label))
		}
	}

	// Error message
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("  Error: "+m.err.Error()) + "\n")
	}

	// Help text
	switch m.state {
	case stateMenu:
		b.WriteString(helpStyle.Render("  j/k or arrows to navigate | enter to edit | q to quit"))
	case stateEditing:
		if m.isTextInput(m.cursor) {
			b.WriteString(helpStyle.Render("  type value | enter to confirm | esc to cancel | ctrl+u to clear"))
		} else {
			b.WriteString(helpStyle.Render("  j/k or arrows to pick | enter to select | esc to cancel"))
		}
	case statePersonaPicker:
		b.WriteString(helpStyle.Render("  j/k or arrows to navigate | space to toggle | enter to confirm | esc to cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

func runInteractiveSetup() error {
	m := initialTUIModel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tuiModel)
	if final.cancelled {
		return fmt.Errorf("cancelled")
	}
	if !final.confirmed {
		return fmt.Errorf("generation cancelled")
	}

	// Apply selections to flags
	flagInput = final.items[idxInput].value
	flagOutput = final.items[idxOutput].value
	flagPlatform = final.items[idxPlatform].value
	flagKind = final.items[idxKind].value
	flagKeywords = final.items[idxKeywords].value
	flagProvider = final.items[idxProvider].value
	flagModel = final.items[idxModel].value
	if final.items[idxPersonas].value != "" {
		flagPersonas = strings.ReplaceAll(final.items[idxPersonas].value, " ", "")
	}

	return nil
}
