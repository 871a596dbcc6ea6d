package wizard

// TabExitForwardMsg is sent when Tab is pressed on a step's last input,
// asking the parent to move focus onto the button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on a step's
// first input, asking the parent to move focus onto the button bar
// from the end.
type TabExitBackwardMsg struct{}
