// Command ggshow renders figure descriptions.
//
// Usage:
//
//	ggshow figure.toml                 # print SVG to stdout
//	ggshow -o figure.png figure.yaml   # write a PNG
//	cat figure.json | ggshow -         # read JSON from stdin
//	ggshow --watch figure.toml         # print again on every save
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
