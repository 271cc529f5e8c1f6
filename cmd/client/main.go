package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joycesaquino/customer/internal/adapter"
	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("customer-client", os.Stderr)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	customerAdapter, err := adapter.NewHTTPCustomerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create customer adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{
		adapter: customerAdapter,
		out:     os.Stdout,
		build:   fmt.Sprintf("%s (date: %s, commit: %s)", orNA(buildVersion), orNA(buildDate), orNA(buildCommit)),
	}
	if err = cli.run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
