package onboarding

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/onboardr/internal/flow"
	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/metrics"
	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// Modal layout constants
const (
	modalWidth        = 70
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// noticeDuration is how long transient notices stay on screen.
// A variable so tests can shorten the auto-dismiss timer.
var noticeDuration = 5 * time.Second

// Options carries the injected capabilities for the wizard.
type Options struct {
	Stepper      *flow.Stepper
	Store        settings.Store
	Recorder     metrics.Recorder
	Themes       *theme.Manager
	Submitter    forms.Submitter
	SettingsFile string          // Optional editor settings file to import
	Intent       provider.Intent // Initial intent category for provider setup
}

// accountInfo accumulates the values entered across the auth steps.
type accountInfo struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Model is the main Bubble Tea model for the onboarding wizard.
// It owns the stepper and re-creates the active screen component on
// every transition so no stale input survives navigation.
type Model struct {
	stepper      *flow.Stepper
	store        settings.Store
	recorder     metrics.Recorder
	themes       *theme.Manager
	submitter    forms.Submitter
	settingsFile string
	intent       provider.Intent

	width     int
	height    int
	cancelled bool
	finished  bool

	account    accountInfo
	submitting bool

	// Step components, re-created by initCurrentStep
	welcomeStep    *WelcomeStep
	credsStep      *CredentialsStep
	detailsStep    *DetailsStep
	passwordStep   *PasswordStep
	resetStep      *ResetRequestStep
	otpStep        *OTPStep
	providerStep   *ProviderStep
	completionStep *CompletionStep
	showCompletion bool

	// Button bar with focus tracking
	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	// Cached button bars per screen (prevents focus reset on re-render)
	barCache map[flow.ScreenID]*wizard.ButtonBar
}

// New creates the wizard model from its injected capabilities.
func New(opts Options) *Model {
	m := &Model{
		stepper:      opts.Stepper,
		store:        opts.Store,
		recorder:     opts.Recorder,
		themes:       opts.Themes,
		submitter:    opts.Submitter,
		settingsFile: opts.SettingsFile,
		intent:       opts.Intent,
		barCache:     make(map[flow.ScreenID]*wizard.ButtonBar),
	}
	opts.Themes.Subscribe(m.applyTheme)
	return m
}

// applyTheme pushes a new theme into every live step component so the
// current screen re-renders in the new palette without losing typed
// input.
func (m *Model) applyTheme(th *theme.Theme) {
	if m.welcomeStep != nil {
		m.welcomeStep.SetTheme(th)
	}
	if m.credsStep != nil {
		m.credsStep.SetTheme(th)
	}
	if m.detailsStep != nil {
		m.detailsStep.SetTheme(th)
	}
	if m.passwordStep != nil {
		m.passwordStep.SetTheme(th)
	}
	if m.resetStep != nil {
		m.resetStep.SetTheme(th)
	}
	if m.otpStep != nil {
		m.otpStep.SetTheme(th)
	}
	if m.providerStep != nil {
		m.providerStep.SetTheme(th)
	}
	if m.completionStep != nil {
		m.completionStep.SetTheme(th)
	}
}

// Run is the entry point for the onboarding wizard. When onboarding is
// already complete the stepper starts hidden and the wizard never
// launches.
func Run(opts Options) error {
	if opts.Stepper.Hidden() {
		logger.Debug("Onboarding already complete, skipping wizard")
		return nil
	}

	m := New(opts)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("onboarding wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if wizModel.cancelled {
		return fmt.Errorf("onboarding cancelled by user")
	}

	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	m.recorder.Capture("wizard_started", map[string]string{
		"flow": m.stepper.Flow().String(),
	})
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.focusStepContentFirst()
					return m, nil
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.focusStepContentLast()
					return m, nil
				}
				return m, nil
			case "enter", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+t":
			m.themes.CycleNext()
			return m, nil
		case "esc":
			if m.showCompletion {
				// Terminal screen, only the primary action leaves it
				return m, nil
			}
			if m.currentScreenID() == flow.ScreenProviderSetup {
				if m.providerStep != nil && m.providerStep.InKeyEntry() {
					break // Provider step closes its own key input
				}
				return m, nil
			}
			if m.stepper.Page() == 0 {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.goBack()
		case "tab":
			if !m.buttonFocused && m.hasButtons() && !m.stepContentWantsTab() {
				m.buttonFocused = true
				m.blurStepContent()
				m.ensureButtonBar()
				m.buttonBar.FocusFirst()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case AdvanceMsg:
		m.stepper.Advance()
		return m, m.enterStep()

	case SwitchFlowMsg:
		m.stepper.SwitchFlow(msg.Flow)
		m.recorder.Capture("flow_switched", map[string]string{
			"flow": msg.Flow.String(),
		})
		return m, m.enterStep()

	case GoToPageMsg:
		m.stepper.GoTo(msg.Page)
		return m, m.enterStep()

	case SignInSubmittedMsg:
		m.account.Email = msg.Email
		m.account.Password = msg.Password
		return m, m.dispatch(forms.KindSignIn)

	case SignUpSubmittedMsg:
		m.account.Email = msg.Email
		m.account.Password = msg.Password
		return m, m.dispatch(forms.KindRegister)

	case DetailsSubmittedMsg:
		// Name fields are local state, no backend round trip
		m.account.FirstName = msg.FirstName
		m.account.LastName = msg.LastName
		m.stepper.Advance()
		return m, m.enterStep()

	case PasswordSubmittedMsg:
		m.account.Password = msg.Password
		return m, m.dispatch(forms.KindSetPassword)

	case ResetRequestedMsg:
		m.account.Email = msg.Email
		return m, m.dispatch(forms.KindResetRequest)

	case CodeCompletedMsg:
		return m, m.dispatch(forms.KindVerifyCode)

	case ResendCodeMsg:
		return m, m.dispatch(forms.KindResendCode)

	case forms.Result:
		return m.handleSubmitResult(msg)

	case NoticeExpiredMsg:
		if msg.Generation != m.stepper.Generation() {
			return m, nil
		}
		if m.otpStep != nil {
			m.otpStep.ClearNotice()
		}
		if m.providerStep != nil {
			m.providerStep.ClearNotice()
		}
		return m, nil

	case ImportSettingsMsg:
		return m, m.importSettings()

	case FinishMsg:
		return m.handleFinish(msg)

	case CompleteOnboardingMsg:
		return m.completeOnboarding()

	case wizard.TabExitForwardMsg:
		if m.hasButtons() {
			m.buttonFocused = true
			m.blurStepContent()
			m.ensureButtonBar()
			m.buttonBar.FocusFirst()
		}
		return m, nil

	case wizard.TabExitBackwardMsg:
		if m.hasButtons() {
			m.buttonFocused = true
			m.blurStepContent()
			m.ensureButtonBar()
			m.buttonBar.FocusLast()
		}
		return m, nil
	}

	// Forward messages to current step
	return m, m.updateCurrentStep(msg)
}

// dispatch starts a simulated submission for the given kind. A second
// submission while one is in flight is ignored.
func (m *Model) dispatch(kind forms.Kind) tea.Cmd {
	if m.submitting {
		logger.Debug("Ignoring %s submit while another is in flight", kind)
		return nil
	}
	m.submitting = true
	return m.submitter.Submit(forms.Request{
		Kind:       kind,
		Generation: m.stepper.Generation(),
	})
}

// handleSubmitResult routes a finished submission. Results stamped with
// a stale generation mean the user navigated away mid-flight; they are
// dropped without touching state.
func (m *Model) handleSubmitResult(res forms.Result) (tea.Model, tea.Cmd) {
	if res.Request.Generation != m.stepper.Generation() {
		logger.Debug("Dropping stale %s result (gen %d, now %d)",
			res.Request.Kind, res.Request.Generation, m.stepper.Generation())
		return m, nil
	}

	m.submitting = false

	if res.Err != nil {
		m.surfaceSubmitError(res.Err.Error())
		return m, nil
	}

	switch res.Request.Kind {
	case forms.KindSignIn:
		// Straight to provider setup, skipping the reset chain
		m.stepper.GoTo(flow.PageProviderSetup)
		return m, m.enterStep()
	case forms.KindRegister, forms.KindResetRequest, forms.KindVerifyCode, forms.KindSetPassword:
		m.stepper.Advance()
		return m, m.enterStep()
	case forms.KindResendCode:
		if m.otpStep != nil {
			m.otpStep.SetNotice("Code sent, check your inbox")
		}
		return m, m.noticeTimer()
	}
	return m, nil
}

// surfaceSubmitError shows a failed submission inline on the active
// step and leaves the page unchanged so the user can retry.
func (m *Model) surfaceSubmitError(errMsg string) {
	switch m.currentScreenID() {
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			m.credsStep.SetSubmitError(errMsg)
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			m.resetStep.SetSubmitError(errMsg)
		}
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		if m.otpStep != nil {
			m.otpStep.SetSubmitError(errMsg)
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			m.passwordStep.SetSubmitError(errMsg)
		}
	}
}

// handleFinish runs the chat-provider gate on the Finish action.
func (m *Model) handleFinish(msg FinishMsg) (tea.Model, tea.Cmd) {
	if !msg.Bypass && !settings.HasChatProvider(m.store) {
		if m.providerStep != nil {
			m.providerStep.SetNotice(
				"Configure at least one chat provider to finish, or press c to continue anyway", true)
		}
		return m, m.noticeTimer()
	}

	m.showCompletion = true
	m.buttonFocused = false
	m.buttonBar = nil
	m.completionStep = NewCompletionStep(m.store, m.themes.Current())
	m.completionStep.SetSize(m.getModalContentSize())
	return m, m.completionStep.Init()
}

// completeOnboarding persists the flag, emits the completion event and
// exits. Both writes are fire-and-forget for the UI.
func (m *Model) completeOnboarding() (tea.Model, tea.Cmd) {
	// A second Enter can land before the quit message is processed; the
	// flag write and the completion event must stay exactly-once.
	if m.finished {
		return m, tea.Quit
	}

	if err := m.store.SetOnboardingComplete(true); err != nil {
		logger.Error("Failed to persist onboarding flag: %v", err)
	}

	props := map[string]string{
		"flow": m.stepper.Flow().String(),
	}
	if m.providerStep != nil {
		props["provider"] = m.providerStep.SelectedProvider()
		props["intent"] = string(m.providerStep.Intent())
	}
	m.recorder.Capture("wizard_completed", props)

	m.stepper.Complete()
	m.finished = true
	return m, tea.Quit
}

// importSettings copies the configured editor settings file into the
// wizard's data and reports the outcome inline.
func (m *Model) importSettings() tea.Cmd {
	if m.providerStep == nil {
		return nil
	}

	if m.settingsFile == "" {
		m.providerStep.SetNotice("No settings file configured to import", true)
		return m.noticeTimer()
	}

	data, err := os.ReadFile(m.settingsFile)
	if err != nil {
		logger.Warn("Settings import failed: %v", err)
		m.providerStep.SetNotice("Could not read "+filepath.Base(m.settingsFile), true)
		return m.noticeTimer()
	}

	m.recorder.Capture("settings_imported", map[string]string{
		"bytes": fmt.Sprintf("%d", len(data)),
	})
	m.providerStep.SetNotice("Imported settings from "+filepath.Base(m.settingsFile), false)
	return m.noticeTimer()
}

// noticeTimer arms the auto-dismiss timer for transient notices. The
// message carries the current generation so a notice from an abandoned
// screen never clears anything later.
func (m *Model) noticeTimer() tea.Cmd {
	gen := m.stepper.Generation()
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Generation: gen}
	})
}

// enterStep re-creates the component for the current screen and records
// the view.
func (m *Model) enterStep() tea.Cmd {
	cmd := m.initCurrentStep()
	m.recorder.Capture("step_viewed", map[string]string{
		"flow":   m.stepper.Flow().String(),
		"screen": m.currentScreenID().String(),
	})
	return cmd
}

func (m *Model) currentScreenID() flow.ScreenID {
	return m.stepper.Current().ID
}

// initCurrentStep creates a fresh component for the current screen.
// Components are never reused across transitions; going back and
// forward again always lands on a pristine form.
func (m *Model) initCurrentStep() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar = nil
	m.submitting = false

	th := m.themes.Current()

	var cmd tea.Cmd
	switch m.currentScreenID() {
	case flow.ScreenWelcome:
		m.welcomeStep = NewWelcomeStep(m.stepper.Flow(), th)
		cmd = m.welcomeStep.Init()
	case flow.ScreenSignInCredentials:
		m.credsStep = NewCredentialsStep(CredentialsSignIn, th)
		cmd = m.credsStep.Init()
	case flow.ScreenSignUpCredentials:
		m.credsStep = NewCredentialsStep(CredentialsSignUp, th)
		cmd = m.credsStep.Init()
	case flow.ScreenResetRequest:
		m.resetStep = NewResetRequestStep(th)
		cmd = m.resetStep.Init()
	case flow.ScreenResetCode:
		m.otpStep = NewOTPStep(OTPReset, th)
		cmd = m.otpStep.Init()
	case flow.ScreenConfirmCode:
		m.otpStep = NewOTPStep(OTPConfirm, th)
		cmd = m.otpStep.Init()
	case flow.ScreenResetPassword:
		m.passwordStep = NewPasswordStep(PasswordReset, th)
		cmd = m.passwordStep.Init()
	case flow.ScreenCreatePassword:
		m.passwordStep = NewPasswordStep(PasswordCreate, th)
		cmd = m.passwordStep.Init()
	case flow.ScreenSignUpDetails:
		m.detailsStep = NewDetailsStep(th)
		cmd = m.detailsStep.Init()
	case flow.ScreenProviderSetup:
		m.providerStep = NewProviderStep(m.store, m.defaultIntent(), th)
		cmd = m.providerStep.Init()
	}
	m.updateCurrentStepSize()
	return cmd
}

// defaultIntent is the configured starting category, falling back to
// smart.
func (m *Model) defaultIntent() provider.Intent {
	if m.intent == "" {
		return provider.IntentSmart
	}
	return m.intent
}

// updateCurrentStep forwards a message to the active component.
func (m *Model) updateCurrentStep(msg tea.Msg) tea.Cmd {
	if m.showCompletion {
		if m.completionStep != nil {
			return m.completionStep.Update(msg)
		}
		return nil
	}

	switch m.currentScreenID() {
	case flow.ScreenWelcome:
		if m.welcomeStep != nil {
			return m.welcomeStep.Update(msg)
		}
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			return m.credsStep.Update(msg)
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			return m.resetStep.Update(msg)
		}
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		if m.otpStep != nil {
			return m.otpStep.Update(msg)
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			return m.passwordStep.Update(msg)
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			return m.detailsStep.Update(msg)
		}
	case flow.ScreenProviderSetup:
		if m.providerStep != nil {
			return m.providerStep.Update(msg)
		}
	}
	return nil
}

// getModalContentSize returns the internal content dimensions for the
// modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	height = height - 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the active component.
func (m *Model) updateCurrentStepSize() {
	contentWidth, contentHeight := m.getModalContentSize()

	if m.showCompletion {
		if m.completionStep != nil {
			m.completionStep.SetSize(contentWidth, contentHeight)
		}
		return
	}

	switch m.currentScreenID() {
	case flow.ScreenWelcome:
		if m.welcomeStep != nil {
			m.welcomeStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			m.credsStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			m.resetStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		if m.otpStep != nil {
			m.otpStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			m.passwordStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			m.detailsStep.SetSize(contentWidth, contentHeight)
		}
	case flow.ScreenProviderSetup:
		if m.providerStep != nil {
			m.providerStep.SetSize(contentWidth, contentHeight)
		}
	}
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderCurrentStep renders the modal for the active screen.
func (m *Model) renderCurrentStep() string {
	th := m.themes.Current()
	s := th.S()

	var title, subtitle, stepContent string
	if m.showCompletion {
		title = "Setup complete"
		if m.completionStep != nil {
			stepContent = m.completionStep.View()
		}
	} else {
		screen := m.stepper.Current()
		title = screen.Title
		subtitle = screen.Subtitle
		stepContent = m.renderStepContent()
	}

	parts := []string{s.HeaderTitle.MarginBottom(1).Render(title)}
	if subtitle != "" {
		parts = append(parts, s.Subtitle.MarginBottom(1).Render(subtitle))
	}
	parts = append(parts, stepContent)

	if m.hasButtons() {
		m.ensureButtonBar()
		parts = append(parts, "", m.buttonBar.Render(th))
	}

	if m.submitting {
		parts = append(parts, "", s.Hint.Render("Submitting..."))
	}

	hint := wizard.RenderHintBar(th, "tab", "navigate", "esc", "back", "ctrl+t", "theme", "ctrl+c", "quit")
	parts = append(parts, "", s.Hint.Render(hint))

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.BgSurface1))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderStepContent() string {
	switch m.currentScreenID() {
	case flow.ScreenWelcome:
		if m.welcomeStep != nil {
			return m.welcomeStep.View()
		}
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			return m.credsStep.View()
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			return m.resetStep.View()
		}
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		if m.otpStep != nil {
			return m.otpStep.View()
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			return m.passwordStep.View()
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			return m.detailsStep.View()
		}
	case flow.ScreenProviderSetup:
		if m.providerStep != nil {
			return m.providerStep.View()
		}
	}
	return ""
}

// hasButtons reports whether the current screen uses the shared
// Back/Next bar. The provider and completion screens navigate
// themselves.
func (m *Model) hasButtons() bool {
	if m.showCompletion {
		return false
	}
	return m.currentScreenID() != flow.ScreenProviderSetup
}

// stepContentWantsTab reports whether the active component consumes Tab
// itself (multi-field forms cycle fields before releasing focus).
func (m *Model) stepContentWantsTab() bool {
	switch m.currentScreenID() {
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials,
		flow.ScreenSignUpDetails,
		flow.ScreenResetPassword, flow.ScreenCreatePassword,
		flow.ScreenResetRequest,
		flow.ScreenResetCode, flow.ScreenConfirmCode:
		return true
	}
	return false
}

// ensureButtonBar creates the button bar if needed, reusing the cached
// instance for the screen so focus survives re-renders.
func (m *Model) ensureButtonBar() {
	id := m.currentScreenID()
	if cached, ok := m.barCache[id]; ok {
		m.buttonBar = cached
		return
	}

	nextLabel := "Next →"
	switch id {
	case flow.ScreenSignInCredentials:
		nextLabel = "Sign in"
	case flow.ScreenSignUpCredentials:
		nextLabel = "Create account"
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		nextLabel = "Verify"
	}

	bar := wizard.NewButtonBar(wizard.CreateBackNextButtons(m.stepper.Page() > 0, true, nextLabel))
	bar.SetWidth(modalContentWidth)
	m.barCache[id] = bar
	m.buttonBar = bar
}

// activateButton handles button activation.
func (m *Model) activateButton(btnID wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch btnID {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m, m.goNext()
	}
	return m, nil
}

// goBack moves to the previous page.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if m.stepper.Page() == 0 {
		return m, nil
	}
	m.stepper.Retreat()
	m.barCache = make(map[flow.ScreenID]*wizard.ButtonBar)
	return m, m.enterStep()
}

// goNext submits the current step. Validation happens inside the step;
// an invalid form emits nothing and the page does not move.
func (m *Model) goNext() tea.Cmd {
	if m.submitting {
		return nil
	}
	switch m.currentScreenID() {
	case flow.ScreenWelcome:
		if m.welcomeStep != nil {
			return m.welcomeStep.Submit()
		}
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			return m.credsStep.Submit()
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			return m.resetStep.Submit()
		}
	case flow.ScreenResetCode, flow.ScreenConfirmCode:
		if m.otpStep != nil {
			return m.otpStep.Submit()
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			return m.passwordStep.Submit()
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			return m.detailsStep.Submit()
		}
	}
	return nil
}

// focusStepContentFirst focuses the first element in step content.
func (m *Model) focusStepContentFirst() {
	switch m.currentScreenID() {
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			m.credsStep.Focus()
		}
	case flow.ScreenResetRequest:
		if m.resetStep != nil {
			m.resetStep.Focus()
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			m.passwordStep.Focus()
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			m.detailsStep.Focus()
		}
	}
}

// focusStepContentLast focuses the last element in step content.
func (m *Model) focusStepContentLast() {
	switch m.currentScreenID() {
	case flow.ScreenSignInCredentials, flow.ScreenSignUpCredentials:
		if m.credsStep != nil {
			m.credsStep.FocusLast()
		}
	case flow.ScreenResetPassword, flow.ScreenCreatePassword:
		if m.passwordStep != nil {
			m.passwordStep.FocusLast()
		}
	case flow.ScreenSignUpDetails:
		if m.detailsStep != nil {
			m.detailsStep.FocusLast()
		}
	default:
		m.focusStepContentFirst()
	}
}

// blurStepContent blurs all step content.
func (m *Model) blurStepContent() {
	if m.credsStep != nil {
		m.credsStep.Blur()
	}
	if m.resetStep != nil {
		m.resetStep.Blur()
	}
	if m.passwordStep != nil {
		m.passwordStep.Blur()
	}
	if m.detailsStep != nil {
		m.detailsStep.Blur()
	}
}

// Cancelled reports whether the user aborted the wizard.
func (m *Model) Cancelled() bool { return m.cancelled }

// Finished reports whether onboarding completed during this run.
func (m *Model) Finished() bool { return m.finished }
