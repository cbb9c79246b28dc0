package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/fitremind/internal/cli"
	"github.com/alexanderramin/fitremind/internal/config"
	"github.com/alexanderramin/fitremind/internal/db"
	"github.com/alexanderramin/fitremind/internal/notify"
	"github.com/alexanderramin/fitremind/internal/repository"
	"github.com/alexanderramin/fitremind/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(configFlag(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	observer, err := useCaseObserver(cfg)
	if err != nil {
		return err
	}

	// Wire repositories
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	selector, err := notify.NewSelector(notify.NewSeededSource(uint64(cfg.Notify.Seed)), cfg.Notify.Templates...)
	if err != nil {
		return fmt.Errorf("building notification selector: %w", err)
	}

	app := &cli.App{
		Reminders: service.NewReminderService(reminderRepo, observer),
		Calendar:  service.NewCalendarService(reminderRepo, observer),
		Notify:    service.NewNotifyService(reminderRepo, selector, observer),
		Import:    service.NewImportService(uow, observer),
	}
	if cfg.Notify.OnStart {
		app.Startup = &cli.StartupCheck{Source: reminderRepo, Selector: selector}
	}

	// Forms and colors only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.fitremind/config.yaml)")
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func useCaseObserver(cfg *config.Config) (service.UseCaseObserver, error) {
	if !cfg.Log.UseCases {
		return service.NoopUseCaseObserver{}, nil
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return service.NewLevelUseCaseObserver(os.Stderr, level), nil
}

// configFlag pulls --config out of args before cobra parses them, since the
// config decides how the command tree is wired.
func configFlag(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
	}
	return ""
}
