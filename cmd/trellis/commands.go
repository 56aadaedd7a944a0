package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/config"
	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
)

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the linked layout tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tree, err := cfg.Tree()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}
}

func computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Solve the layout for a terminal size and print the rects",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			asJSON, _ := cmd.Flags().GetBool("json")
			all, _ := cmd.Flags().GetBool("all")
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must both be positive (got %dx%d)", width, height)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tree, err := cfg.Tree()
			if err != nil {
				return err
			}

			res := compute(cfg, tree, width, height, all)
			if asJSON {
				return writeComputeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatCompute(res))
			return nil
		},
	}
	cmd.Flags().Int("width", 0, "terminal width in cells")
	cmd.Flags().Int("height", 0, "terminal height in cells")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	cmd.Flags().Bool("all", false, "include containers, not only gadgets")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate trellis.toml and link the layout tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tree, err := cfg.Tree()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatCheck(cfg, tree))
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create trellis.toml with the default layout in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open a full-screen preview that re-solves the layout on resize",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			return runPreview(cfg, debug)
		},
	}
	cmd.Flags().Bool("debug", false, "enable debug logging (overrides log.debug)")
	return cmd
}

// computeResult is the outcome of one solve, shaped for both output formats.
type computeResult struct {
	Terminal  layout.Rect `json:"terminal"`
	Fits      bool        `json:"fits"`
	MinWidth  int         `json:"min_width"`
	MinHeight int         `json:"min_height"`
	Rects     []namedRect `json:"rects"`
}

type namedRect struct {
	Identifier string `json:"identifier"`
	layout.Rect
}

func compute(cfg *config.Config, tree *layout.ItemTree, width, height int, all bool) computeResult {
	term := layout.Rect{Width: width, Height: height}
	rects := layout.Compute(tree, term)
	if !all {
		rects = rects.Gadgets()
	}

	res := computeResult{
		Terminal: term,
		Fits:     cfg.Window.Fits(term),
		Rects:    make([]namedRect, 0, len(rects)),
	}
	res.MinWidth, res.MinHeight = cfg.Window.Minimum()
	for _, id := range rects.Identifiers() {
		res.Rects = append(res.Rects, namedRect{Identifier: id.String(), Rect: rects[id]})
	}
	return res
}

func writeComputeJSON(w io.Writer, res computeResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// formatCompute renders a compute result as an aligned table.
func formatCompute(res computeResult) string {
	var sb strings.Builder
	if !res.Fits {
		fmt.Fprintf(&sb, "warning: terminal %dx%d is below the window bounds (at least %dx%d)\n",
			res.Terminal.Width, res.Terminal.Height, res.MinWidth, res.MinHeight)
	}
	nameW := len("identifier")
	for _, r := range res.Rects {
		nameW = max(nameW, len(r.Identifier))
	}
	fmt.Fprintf(&sb, "%-*s  %5s %5s %5s %5s\n", nameW, "identifier", "x", "y", "width", "height")
	for _, r := range res.Rects {
		fmt.Fprintf(&sb, "%-*s  %5d %5d %5d %5d\n", nameW, r.Identifier, r.X, r.Y, r.Width, r.Height)
	}
	return sb.String()
}

// formatCheck summarizes a validated configuration.
func formatCheck(cfg *config.Config, tree *layout.ItemTree) string {
	minW, minH := cfg.Window.Minimum()
	return fmt.Sprintf("config OK: %d items, %d nodes, %d gadgets, minimum terminal %dx%d\n",
		len(cfg.Items), tree.Len(), len(tree.Gadgets()), minW, minH)
}
