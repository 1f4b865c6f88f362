// SPDX-License-Identifier: Apache-2.0

// Package app implements the sitectl probe application.
//
// It wires the backend client provider and the content fetchers into a
// non-interactive command dispatcher: each subcommand runs one operation
// against the backend and writes the result to the configured output.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sitebridge/internal/logger"
	"sitebridge/internal/service"
	"sitebridge/models"
)

const usage = `usage: sitectl [flags] <command>

commands:
  ping          check backend liveness
  info          show backend project info
  siteconfig    fetch the global site configuration
  page <slug>   fetch a page by slug

run sitectl -h for the list of flags`

// App bundles the client source and the content fetchers behind the sitectl
// subcommands.
type App struct {
	source      service.ClientSource
	siteConfigs service.SiteConfigService
	pages       service.PageService
	logger      *logger.Logger
	out         io.Writer
}

// NewApp wires services into a runnable App. Command results are written to
// out; ping prints the backend's reply, every other command prints indented
// JSON.
func NewApp(source service.ClientSource, services *service.Services, out io.Writer, log *logger.Logger) *App {
	return &App{
		source:      source,
		siteConfigs: services.SiteConfig,
		pages:       services.Pages,
		logger:      log,
		out:         out,
	}
}

// Run executes the subcommand named by args[0]. A missing or unknown command
// prints the usage text and returns an error; command failures are returned
// as-is for the caller to report.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]

	switch command {
	case "ping":
		return a.runPing(ctx)
	case "info":
		return a.runInfo(ctx)
	case "siteconfig":
		return a.runSiteConfig(ctx)
	case "page":
		if len(rest) == 0 {
			return fmt.Errorf("%w: page needs a slug", ErrMissingArgument)
		}
		return a.runPage(ctx, rest[0])
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) runPing(ctx context.Context) error {
	client, err := a.source.Get(ctx)
	if err != nil {
		return fmt.Errorf("connect to backend: %w", err)
	}

	if err = client.Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "pong")
	return nil
}

func (a *App) runInfo(ctx context.Context) error {
	client, err := a.source.Get(ctx)
	if err != nil {
		return fmt.Errorf("connect to backend: %w", err)
	}

	var resp models.ServerInfoResponse
	if err = client.Request(ctx, http.MethodGet, "/server/info", nil, &resp); err != nil {
		return fmt.Errorf("fetch server info: %w", err)
	}

	return a.printJSON(resp.Data)
}

func (a *App) runSiteConfig(ctx context.Context) error {
	cfg, err := a.siteConfigs.GetSiteConfig(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(cfg)
}

func (a *App) runPage(ctx context.Context, slug string) error {
	page, err := a.pages.GetPage(ctx, slug)
	if err != nil {
		return err
	}

	if page.IsZero() {
		a.logger.Warn().Str("slug", slug).Msg("no page matched slug")
	}

	return a.printJSON(page)
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
