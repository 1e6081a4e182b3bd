package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/starudream/e2e-kit/server/browser"
	"github.com/starudream/e2e-kit/server/config"
	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/export"
	"github.com/starudream/e2e-kit/server/logger"
	"github.com/starudream/e2e-kit/server/router"
)

var (
	pHelp    bool
	pVersion bool
	pPrint   string
	pOpen    bool
	pServe   bool
)

func init() {
	flag.BoolVar(&pHelp, "h", false, "show help")
	flag.BoolVar(&pVersion, "v", false, "show version")
	flag.StringVar(&pPrint, "print", "", "print one of "+strings.Join(export.Formats(), ", ")+" and exit")
	flag.BoolVar(&pOpen, "open", false, "open a browser on the target ui")
	flag.BoolVar(&pServe, "serve", false, "serve settings and browser options over http")
	flag.Parse()

	if pHelp {
		flag.Usage()
		os.Exit(0)
	}
	if pVersion {
		fmt.Print(config.GetVersion().String())
		os.Exit(0)
	}
}

func main() {
	target, err := env.FromConfig(config.G())
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve target environment error")
	}

	if pPrint != "" {
		if err = printFormat(pPrint, target); err != nil {
			logger.Fatal().Err(err).Msg("print error")
		}
		return
	}

	if !pOpen && !pServe {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case <-ctx.Done():
		case sig := <-ch:
			println()
			logger.Info().Msgf("received signal: %s", sig.String())
			cancel()
		}
	}()

	logger.Info().Str("target", target.Name).Msg("app starting")

	wg := &sync.WaitGroup{}

	if pServe {
		router.Start(ctx, wg, target)
	}
	if pOpen {
		openBrowser(ctx, wg, target)
	}

	<-ctx.Done()
	wg.Wait()

	logger.Info().Msg("app stopped")
}

func openBrowser(ctx context.Context, wg *sync.WaitGroup, target env.Settings) {
	sess, err := browser.Open(ctx, target, browser.ParamsFromConfig(config.G()))
	if err != nil {
		logger.Fatal().Err(err).Msg("browser open error")
	}

	url := target.UIURL
	if !target.HasUI() {
		url = target.URL
	}
	if err = sess.Goto(ctx, url); err != nil {
		logger.Error().Err(err).Msg("browser goto error")
	}

	wg.Add(1)

	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Warn().Msg("browser stopping")
		if err := sess.Close(); err != nil {
			logger.Error().Err(err).Msg("browser close error")
		}
		logger.Info().Msg("browser stopped")
	}()
}

func printFormat(format string, target env.Settings) error {
	bs, err := export.Render(format, target)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(bs))
	return err
}
