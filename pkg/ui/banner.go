package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pathoracle/pathoracle/pkg/defaults"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses most output)
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
                 __  __                          __
    ____  ____ _/ /_/ /_  ____  _________ ______/ /__
   / __ \/ __ '/ __/ __ \/ __ \/ ___/ __ '/ ___/ / _ \
  / /_/ / /_/ / /_/ / / / /_/ / /  / /_/ / /__/ /  __/
 / .___/\__,_/\__/_/ /_/\____/_/   \__,_/\___/_/\___/
/_/
`

const bannerSeparator = "________________________________________________"

// PrintBanner prints the application banner with version info to stderr.
func PrintBanner() {
	if IsSilent() {
		return
	}
	for _, line := range strings.Split(bannerArt, "\n") {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                       v%s\n\n", VersionStyle.Render(defaults.Version))
}

// printOption prints a configuration option in ffuf/nuclei style
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner prints the run settings before execution starts.
// Known keys print first in a stable order.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}
	order := []string{
		"Target", "Seeds", "Vocabulary", "Fuzzer", "Iterations",
		"Threshold", "Throttle", "Suffix", "Timeout", "Proxy", "Output",
	}

	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", DividerStyle.Render(bannerSeparator))
}

// PrintInfo prints an info message (to stderr)
func PrintInfo(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, InfoStyle.Render("  [i] "+message))
}

// PrintSuccess prints a success message (to stderr)
func PrintSuccess(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, ConfirmedStyle.Render("  [+] "+message))
}

// PrintWarning prints a warning message (to stderr)
func PrintWarning(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, UnreachableStyle.Render("  [!] "+message))
}

// PrintError prints an error message (to stderr)
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("  [X] "+message))
}
