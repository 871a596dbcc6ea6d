package onboarding

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// ProviderStep is the terminal setup screen: pick an intent category,
// configure one or more AI providers, optionally import settings, then
// finish. Finishing is gated on at least one chat-capable provider.
type ProviderStep struct {
	store settings.Store
	theme *theme.Theme

	intent     provider.Intent
	candidates []string
	selected   int

	keyEntry bool // True while the API key input is open
	keyInput textinput.Model

	notice    string // Transient gate / import / resend notice
	noticeErr bool   // Render the notice in the error style

	width  int
	height int
}

// NewProviderStep creates the provider setup screen. The highlighted
// provider is restored from the intent's persisted selection slot.
func NewProviderStep(store settings.Store, intent provider.Intent, th *theme.Theme) *ProviderStep {
	p := &ProviderStep{
		store:  store,
		theme:  th,
		intent: intent,
	}
	p.reloadCandidates()
	return p
}

// reloadCandidates rebuilds the provider list for the active intent and
// restores the highlighted entry from the selection slot.
func (p *ProviderStep) reloadCandidates() {
	p.candidates = p.intent.Candidates()
	p.selected = 0

	remembered := p.store.ProviderSelection(p.intent)
	for i, id := range p.candidates {
		if id == remembered {
			p.selected = i
			break
		}
	}
}

func (p *ProviderStep) Init() tea.Cmd {
	return nil
}

func (p *ProviderStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if p.keyEntry {
			var cmd tea.Cmd
			p.keyInput, cmd = p.keyInput.Update(msg)
			return cmd
		}
		return nil
	}

	if p.keyEntry {
		return p.updateKeyEntry(keyMsg)
	}

	switch keyMsg.String() {
	case "left", "h":
		p.cycleIntent(-1)
	case "right", "l":
		p.cycleIntent(1)
	case "up", "k":
		if p.selected > 0 {
			p.selected--
			p.rememberSelection()
		}
	case "down", "j":
		if p.selected < len(p.candidates)-1 {
			p.selected++
			p.rememberSelection()
		}
	case "enter":
		return p.configureSelected()
	case "i":
		return func() tea.Msg {
			return ImportSettingsMsg{}
		}
	case "f":
		return func() tea.Msg {
			return FinishMsg{}
		}
	case "c":
		return func() tea.Msg {
			return FinishMsg{Bypass: true}
		}
	}
	return nil
}

// updateKeyEntry handles keys while the API key input is open.
func (p *ProviderStep) updateKeyEntry(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.keyEntry = false
		return nil
	case "enter":
		key := strings.TrimSpace(p.keyInput.Value())
		if key == "" {
			return nil
		}
		p.keyEntry = false
		return p.saveProvider(p.candidates[p.selected], key)
	}

	var cmd tea.Cmd
	p.keyInput, cmd = p.keyInput.Update(msg)
	return cmd
}

func (p *ProviderStep) cycleIntent(delta int) {
	intents := provider.Intents
	idx := 0
	for i, it := range intents {
		if it == p.intent {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(intents)) % len(intents)
	p.intent = intents[idx]
	p.reloadCandidates()
}

// rememberSelection persists the highlighted provider into the active
// intent's slot.
func (p *ProviderStep) rememberSelection() {
	if p.selected < 0 || p.selected >= len(p.candidates) {
		return
	}
	if err := p.store.SetProviderSelection(p.intent, p.candidates[p.selected]); err != nil {
		logger.Warn("Failed to persist provider selection: %v", err)
	}
}

// configureSelected opens the API key input for the highlighted
// provider, or configures it directly when no key is needed.
func (p *ProviderStep) configureSelected() tea.Cmd {
	if p.selected < 0 || p.selected >= len(p.candidates) {
		return nil
	}
	id := p.candidates[p.selected]

	if !provider.RequiresAPIKey(id) {
		return p.saveProvider(id, "")
	}

	p.keyInput = newPasswordInput(p.theme, "paste API key")
	p.keyInput.Focus()
	p.keyEntry = true
	return textinput.Blink
}

// saveProvider marks the provider configured and seeds its default chat
// models.
func (p *ProviderStep) saveProvider(id, apiKey string) tea.Cmd {
	ps := settings.ProviderSettings{
		DidFillInSettings: true,
		APIKey:            apiKey,
		Models:            provider.DefaultChatModels(id),
	}
	if err := p.store.SetProviderSettings(id, ps); err != nil {
		logger.Error("Failed to save provider settings: %v", err)
		p.notice = fmt.Sprintf("could not save %s settings", provider.DisplayName(id))
		p.noticeErr = true
		return nil
	}
	p.rememberSelection()
	p.notice = provider.DisplayName(id) + " configured"
	p.noticeErr = false
	return nil
}

func (p *ProviderStep) View() string {
	s := p.theme.S()

	// Intent selector line
	var tabs []string
	for _, it := range provider.Intents {
		label := it.Label()
		if it == p.intent {
			tabs = append(tabs, s.HeaderTitle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, s.Hint.Render(" "+label+" "))
		}
	}
	intentLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	// Provider list
	var rows []string
	for i, id := range p.candidates {
		ps := p.store.ProviderSettings(id)
		mark := "○"
		if ps.ChatCapable() {
			mark = "●"
		}
		line := fmt.Sprintf("%s %s", mark, provider.DisplayName(id))
		if !provider.RequiresAPIKey(id) {
			line += s.Hint.Render(" (local, no key)")
		}
		if i == p.selected {
			rows = append(rows, s.HeaderTitle.Render("> "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}

	parts := []string{
		s.Subtitle.Render("Pick what matters most, then configure a provider."),
		"",
		intentLine,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	}

	if p.keyEntry {
		parts = append(parts, "",
			renderField(p.theme, provider.DisplayName(p.candidates[p.selected])+" API key", p.keyInput, ""))
	}

	if p.notice != "" {
		style := s.Warning
		if !p.noticeErr {
			style = s.Success
		}
		parts = append(parts, "", style.Render(p.notice))
	}

	hint := wizard.RenderHintBar(
		p.theme,
		"←→", "category",
		"↑↓", "provider",
		"enter", "configure",
		"i", "import settings",
		"f", "finish",
		"c", "continue anyway",
	)
	parts = append(parts, "", s.Hint.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme, keeping any API key
// being typed.
func (p *ProviderStep) SetTheme(th *theme.Theme) {
	p.theme = th
	p.keyInput.SetStyles(inputStyles(th))
}

func (p *ProviderStep) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *ProviderStep) Focus() {}

func (p *ProviderStep) Blur() {
	p.keyInput.Blur()
}

// InKeyEntry reports whether the API key input is open, so the wizard
// routes ESC here instead of navigating back.
func (p *ProviderStep) InKeyEntry() bool {
	return p.keyEntry
}

// Intent returns the active intent category.
func (p *ProviderStep) Intent() provider.Intent {
	return p.intent
}

// SelectedProvider returns the highlighted provider ID.
func (p *ProviderStep) SelectedProvider() string {
	if p.selected < 0 || p.selected >= len(p.candidates) {
		return ""
	}
	return p.candidates[p.selected]
}

// SetNotice shows a transient message; isErr selects the warning style.
func (p *ProviderStep) SetNotice(msg string, isErr bool) {
	p.notice = msg
	p.noticeErr = isErr
}

// ClearNotice removes the transient message.
func (p *ProviderStep) ClearNotice() {
	p.notice = ""
	p.noticeErr = false
}
