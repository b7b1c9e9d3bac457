package app

import (
	"context"

	"github.com/noctalia-dev/noctalia-cli/internal/application/lifecycle"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/archive"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/config"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/distro"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/executor"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/github"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/journal"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/pkgmgr"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/systemd"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/term"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/logger"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Lifecycle        *lifecycle.Service
	ServiceInstaller *systemd.Installer
	Store            ports.ConfigStore
	Runner           ports.CommandRunner
	Prompter         ports.Prompter
	Journal          ports.Journal
	UI               ports.UI
	Logger           ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	ui := term.NewConsoleUI(nil, nil)
	prompter := term.NewPrompter()
	runner := executor.NewRunner()
	store := config.NewStore("")
	journalStore := journal.NewSQLiteStore()

	lifecycleService := &lifecycle.Service{
		Store:    store,
		Detector: distro.New(),
		Packages: pkgmgr.NewInstaller(runner, prompter, ui, log),
		Fetcher:  github.NewClient(),
		Archive:  archive.NewInstaller(runner, ui, log),
		Journal:  journalStore,
		Logger:   log,
		UI:       ui,
	}

	return &Container{
		Lifecycle:        lifecycleService,
		ServiceInstaller: systemd.NewInstaller(runner, prompter, ui),
		Store:            store,
		Runner:           runner,
		Prompter:         prompter,
		Journal:          journalStore,
		UI:               ui,
		Logger:           log,
	}, nil
}
