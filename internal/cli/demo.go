package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/widgetlist/internal/demo"
	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// NewDemoCmd creates the demo command that runs an interactive list.
func NewDemoCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "demo [variant]",
		Short: "Browse a demo list interactively",
		Long: `Runs an interactive list in the alternate screen.

Variants: ` + strings.Join(demo.Names(), ", ") + `

Keys: ↑/k and ↓/j move, f/b page, g/G jump to the ends, esc clears the
selection, ? toggles help and q quits.`,
		Example: `  # Simple list
  widgetlist demo

  # Horizontal list with wraparound
  widgetlist demo horizontal --infinite`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := flags.buildView(cmd, variantArg(args))
			if err != nil {
				return err
			}
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			return runInteractiveList(view)
		},
	}

	flags.register(cmd)
	return cmd
}

// runInteractiveList runs the Bubble Tea program until the user quits.
func runInteractiveList(view *listview.View[listview.Item]) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug().Err(err).Msg("terminal size unavailable, waiting for resize")
	}

	p := tea.NewProgram(listview.NewModel(view, width, height), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
