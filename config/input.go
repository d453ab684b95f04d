package config

// ActionID represents a logical action on the settings screen
type ActionID int

const (
	ActionNone          ActionID = iota
	ActionPause                  // Open or close the settings menu
	ActionConsole                // Show or hide the settings console
	ActionConsoleSubmit          // Run the console line
	ActionConsoleErase           // Delete the last console character
	ActionCount                  // Must be last - used for array sizing
)
