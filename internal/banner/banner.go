// Package banner prints the human-readable startup and shutdown messages.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	title   = color.New(color.FgGreen, color.Bold)
	rule    = color.New(color.FgHiBlack)
	address = color.New(color.FgCyan, color.Underline)
	heading = color.New(color.Bold)
)

var separator = strings.Repeat("=", 60)

// Info is what the banner reports about the running server.
type Info struct {
	// Port is the port actually bound.
	Port int
	// LANAddress is the IPv4 address other devices should use.
	LANAddress string
}

// LocalURL is the address for a browser on this machine.
func (i Info) LocalURL() string {
	return fmt.Sprintf("http://localhost:%d", i.Port)
}

// LANURL is the address for a phone or another device on the same network.
func (i Info) LANURL() string {
	return fmt.Sprintf("http://%s:%d", i.LANAddress, i.Port)
}

// Print writes the startup banner to w.
func Print(w io.Writer, info Info) {
	title.Fprintln(w, "🚀 Mobile server started")
	rule.Fprintln(w, separator)
	fmt.Fprintf(w, "📱 Local:   %s\n", address.Sprint(info.LocalURL()))
	fmt.Fprintf(w, "📱 Network: %s\n", address.Sprint(info.LANURL()))
	rule.Fprintln(w, separator)
	heading.Fprintln(w, "📋 Usage:")
	fmt.Fprintln(w, "1. Connect the phone and this computer to the same Wi-Fi network")
	fmt.Fprintln(w, "2. Open the Network address above in the phone's browser")
	fmt.Fprintln(w, "3. Anyone else on the network can use the same address")
	fmt.Fprintln(w, "4. Press Ctrl+C to stop the server")
	rule.Fprintln(w, separator)
	fmt.Fprintf(w, "🌐 Serving on port %d...\n", info.Port)
}

// PrintStopped writes the shutdown message to w.
func PrintStopped(w io.Writer) {
	fmt.Fprintln(w)
	title.Fprintln(w, "👋 Server stopped")
}
