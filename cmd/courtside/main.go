package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/csheth/courtside/internal/config"
	"github.com/csheth/courtside/internal/screen"
	"github.com/csheth/courtside/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default $HOME/.config/courtside/config)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	startScreen := flag.String("screen", "", "screen to open first (onboarding1, onboarding2, login, emailVerification, search, history, profile)")
	catalogPath := flag.String("catalog", "", "path to a sample catalog JSON file (default embedded sample)")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	if *startScreen != "" {
		cfg.UI.StartScreen = *startScreen
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if *noAltScreen {
		cfg.UI.AltScreen = false
	}

	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "courtside")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("[session] %s start (screen=%s catalog=%q)", uuid.NewString(), cfg.UI.StartScreen, cfg.Catalog.Path)

	start, err := screen.Parse(cfg.UI.StartScreen)
	if err != nil {
		log.Printf("[session] %v, starting on %s", err, start)
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			CatalogPath: cfg.Catalog.Path,
			StartScreen: start,
			FrameWidth:  cfg.UI.FrameWidth,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
