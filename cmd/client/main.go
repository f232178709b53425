// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownCommand = errors.New("unknown command")

const usage = `usage: go-blog-client [-a address] [-t timeout] [-token token] <command> [flags]

commands:
  register -account A -password P -nickname N
  login    -account A -password P
  logout
  me`

func main() {
	log := logger.NewLogger("go-blog-client")
	log.Logger = log.Level(zerolog.WarnLevel)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if args[0] == "version" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := run(ctx, serverAdapter, args[0], args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func run(ctx context.Context, a adapter.ServerAdapter, command string, args []string) (any, error) {
	var params models.LoginParams

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.StringVar(&params.Account, "account", "", "Account")
	fs.StringVar(&params.Password, "password", "", "Password")
	fs.StringVar(&params.Nickname, "nickname", "", "Nickname")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch command {
	case "register":
		token, err := a.Register(ctx, params)
		return map[string]string{"token": token}, err
	case "login":
		token, err := a.Login(ctx, params)
		return map[string]string{"token": token}, err
	case "logout":
		return map[string]bool{"ok": true}, a.Logout(ctx)
	case "me":
		return a.CurrentUser(ctx)
	default:
		return nil, fmt.Errorf("%w %q", errUnknownCommand, command)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
