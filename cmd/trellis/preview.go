package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/config"
	"github.com/LISSConsulting/LISSTech.Trellis/internal/logger"
	"github.com/LISSConsulting/LISSTech.Trellis/internal/tui"
)

// runPreview opens the alt-screen preview and blocks until the user quits or
// the process is signalled.
func runPreview(cfg *config.Config, debug bool) error {
	tree, err := cfg.Tree()
	if err != nil {
		return err
	}

	logger.SetDebug(debug || cfg.Log.Debug)
	if err := logger.Init(cfg.Log.Path); err != nil {
		return err
	}
	defer logger.Close()

	ctx, cancel := signalContext()
	defer cancel()

	model := tui.New(tree, tui.Options{
		Window:      cfg.Window,
		Popup:       cfg.Popup,
		AccentColor: cfg.Theme.AccentColor,
		Border:      cfg.Theme.Border,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	logger.Info("preview started: %d nodes, %d gadgets", tree.Len(), len(tree.Gadgets()))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("preview: %w", err)
	}
	logger.Info("preview stopped")
	return nil
}
