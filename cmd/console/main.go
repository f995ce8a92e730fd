// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/relabs-tech/viewer_demos/internal/app"
	"github.com/relabs-tech/viewer_demos/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to KEY=VALUE config file (defaults when empty)")
	demo := flag.String("demo", "chart", "demo to run without a broker: orbit or chart")
	flag.Parse()

	log.Printf("starting viewer demos mock console (%s)", *demo)

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunMockConsole(ctx, *demo); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
