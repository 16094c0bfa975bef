package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/widgetlist/internal/config"
	"github.com/rshade/widgetlist/internal/demo"
	listview "github.com/rshade/widgetlist/internal/tui/list"
)

// listFlags are the list options shared by demo and render.
type listFlags struct {
	axis     string
	padding  int
	infinite bool
	border   string
	count    int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.axis, "axis", "", "scroll axis: vertical or horizontal")
	cmd.Flags().IntVar(&f.padding, "padding", 0, "cells kept visible around the selection")
	cmd.Flags().BoolVar(&f.infinite, "infinite", false, "wrap around the ends of the list")
	cmd.Flags().StringVar(&f.border, "border", "", "frame border: none, normal, rounded, thick, double, hidden")
	cmd.Flags().IntVar(&f.count, "count", 0, "number of items (0 = variant default)")
}

// buildView creates the named variant and applies, in increasing priority,
// the variant defaults, the config file and the command line flags.
func (f *listFlags) buildView(cmd *cobra.Command, variantName string) (*listview.View[listview.Item], error) {
	variant, err := demo.Lookup(variantName)
	if err != nil {
		return nil, err
	}

	cfg := config.GetGlobalConfig()
	listCfg := cfg.List
	flags := cmd.Flags()
	if flags.Changed("axis") {
		listCfg.Axis = f.axis
	}
	if flags.Changed("padding") {
		listCfg.ScrollPadding = f.padding
	}
	if flags.Changed("infinite") {
		listCfg.InfiniteScrolling = f.infinite
	}
	if flags.Changed("border") {
		listCfg.Frame.Border = f.border
	}

	resolved := *cfg
	resolved.List = listCfg
	viewCfg, err := resolved.ViewConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid list options: %w", err)
	}

	view := variant.View(f.count, theme(listCfg))
	base := view.Config

	// Variant defaults only give way to values that were set explicitly.
	if !flags.Changed("axis") && listCfg.Axis == config.Default().List.Axis {
		viewCfg.Axis = base.Axis
	}
	if !flags.Changed("padding") && listCfg.ScrollPadding == 0 {
		viewCfg.ScrollPadding = base.ScrollPadding
	}
	if !flags.Changed("infinite") && !listCfg.InfiniteScrolling {
		viewCfg.InfiniteScrolling = base.InfiniteScrolling
	}
	if viewCfg.Frame != nil && viewCfg.Frame.Title == "" {
		viewCfg.Frame.Title = " " + variant.Name + " "
	}
	viewCfg.Logger = logger.With().Str("variant", variant.Name).Logger()

	view.Config = viewCfg
	logger.Debug().
		Str("variant", variant.Name).
		Int("items", view.ItemCount).
		Str("axis", viewCfg.Axis.String()).
		Int("scroll_padding", viewCfg.ScrollPadding).
		Bool("infinite", viewCfg.InfiniteScrolling).
		Msg("list configured")
	return view, nil
}

// theme applies the configured highlight colors to the demo theme.
func theme(listCfg config.ListConfig) demo.Theme {
	t := demo.DefaultTheme()
	if listCfg.Highlight != (config.ColorConfig{}) {
		t.Selected = listCfg.Highlight.Style()
	}
	return t
}

// variantArg returns the optional variant name argument.
func variantArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
