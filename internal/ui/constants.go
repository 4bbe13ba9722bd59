package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	WindowWidth  float32 = 700
	WindowHeight float32 = 500

	LogoSize float32 = 32
)

// Timeouts
const (
	NotificationAutoHide = 5 * time.Second
)
