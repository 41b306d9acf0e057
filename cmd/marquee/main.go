package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/library"
	"marquee/internal/log"
	"marquee/internal/printer"
	"marquee/internal/store"
	"marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var printOnly bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&printOnly, "print", false, "print the catalog as a table and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(printOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(printOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to a null logger if file logging fails
		logger = log.Null()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout(), logger)
	svc := library.NewService(client, logger)

	if printOnly {
		return printCatalog(cfg, svc)
	}

	session, err := store.Open(config.DataPath(), cfg.UI.SearchHistory)
	if err != nil {
		logger.Warn("session store unavailable", "error", err)
		session, _ = store.Open("", cfg.UI.SearchHistory)
	}
	defer session.Close()

	model := tui.NewModel(svc, session)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// printCatalog fetches the collection once and renders it as a table
func printCatalog(cfg *config.Config, svc *library.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.Timeout())
	defer cancel()

	movies, err := svc.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	printer.Render(os.Stdout, movies, styled)
	return nil
}

// runSetupFlow prompts for the catalog URL on first run
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to marquee!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter your catalog URL (e.g., http://localhost:3000): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		url := strings.TrimSpace(input)
		if url == "" {
			fmt.Println("Catalog URL cannot be empty. Please try again.")
			continue
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			fmt.Println("Catalog URL must start with http:// or https://. Please try again.")
			continue
		}

		cfg.Catalog.URL = url
		break
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run marquee again to start the application.")

	return nil
}
