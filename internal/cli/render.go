package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/rshade/widgetlist/internal/demo"
	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// Frame size used when neither flags nor the terminal provide one.
const (
	defaultRenderWidth  = 40
	defaultRenderHeight = 10
)

// renderOptions holds the render command flags.
type renderOptions struct {
	listFlags

	width    int
	height   int
	selected int
	steps    int
	all      bool
	plain    bool
}

// NewRenderCmd creates the render command that prints static list frames.
func NewRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "Print list frames without starting an interactive session",
		Long: `Lays out a demo list once and prints the result to stdout.

With --steps the selection advances by one item between frames, which shows
how the window follows the selection. With --all every variant is rendered.`,
		Example: `  # Render item 25 of the simple list into a 40x10 frame
  widgetlist render simple --width 40 --height 10 --select 25

  # Watch the window follow the selection for five steps
  widgetlist render padding --select 0 --steps 5 --plain

  # Render every variant, one after another
  widgetlist render --all --plain`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts, variantArg(args))
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width (default terminal width or 40)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height (default terminal height or 10)")
	cmd.Flags().IntVar(&opts.selected, "select", -1, "index of the selected item (-1 = none)")
	cmd.Flags().IntVar(&opts.steps, "steps", 1, "number of frames, advancing the selection between them")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every variant")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print text without styling")

	return cmd
}

// runRender validates the options and prints the requested frames.
func runRender(cmd *cobra.Command, opts *renderOptions, variant string) error {
	width, height := opts.size(cmd)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if opts.steps < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, opts.steps)
	}

	if opts.all {
		return renderAll(cmd, opts, width, height)
	}

	frames, err := opts.renderFrames(cmd, variant, width, height)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(frames, "\n\n"))
	return nil
}

// size resolves the frame size from flags, then the terminal, then defaults.
func (o *renderOptions) size(cmd *cobra.Command) (int, int) {
	width, height := defaultRenderWidth, defaultRenderHeight
	if isTerminal(os.Stdout) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
	}
	if cmd.Flags().Changed("width") {
		width = o.width
	}
	if cmd.Flags().Changed("height") {
		height = o.height
	}
	return width, height
}

// renderFrames lays the variant out steps times with its own state.
func (o *renderOptions) renderFrames(cmd *cobra.Command, variant string, width, height int) ([]string, error) {
	view, err := o.buildView(cmd, variant)
	if err != nil {
		return nil, err
	}

	area := listview.NewRect(0, 0, width, height)
	state := listview.NewState()
	state.SetItemCount(view.ItemCount)
	state.SetInfinite(view.Config.InfiniteScrolling)
	if o.selected >= 0 {
		state.Select(o.selected)
	}

	frames := make([]string, 0, o.steps)
	for step := range o.steps {
		if step > 0 {
			state.SelectNext()
		}
		buf := listview.NewBuffer(area)
		view.Render(area, buf, state)
		frames = append(frames, o.format(buf))
	}
	return frames, nil
}

func (o *renderOptions) format(buf *listview.Buffer) string {
	if o.plain {
		return strings.Join(buf.Lines(), "\n")
	}
	return buf.String()
}

// renderAll renders every variant concurrently and prints them in order.
func renderAll(cmd *cobra.Command, opts *renderOptions, width, height int) error {
	names := demo.Names()
	out := make([]string, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames, err := opts.renderFrames(cmd, name, width, height)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", name, err)
			}
			out[i] = "== " + name + " ==\n" + strings.Join(frames, "\n\n")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n\n"))
	return nil
}
