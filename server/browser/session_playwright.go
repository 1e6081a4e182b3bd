package browser

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/internal/writer"
	"github.com/starudream/e2e-kit/server/logger"
)

type pwSession struct {
	id  string
	log logger.ZLogger

	dir     string
	tempDir bool
	timeout time.Duration

	pw *playwright.Playwright
	bc playwright.BrowserContext
}

func openPlaywright(ctx context.Context, id string, o *Options, p *Params, log logger.ZLogger) (_ *pwSession, err error) {
	s := &pwSession{id: id, log: log, timeout: p.Timeout}

	s.dir, s.tempDir, err = profileDir(p)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	if err = o.WritePreferences(s.dir); err != nil {
		return nil, err
	}

	s.pw, err = playwright.Run(&playwright.RunOptions{
		SkipInstallBrowsers: true,
		Stdout:              writer.NewPrefixWriter("playwright"),
		Stderr:              writer.NewPrefixWriter("playwright"),
		Logger:              slog.Default(),
	})
	if err != nil {
		return nil, eris.Wrap(err, "playwright run")
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	s.bc, err = s.pw.Chromium.LaunchPersistentContext(s.dir, o.LaunchPersistentContextOptions(p))
	if err != nil {
		return nil, eris.Wrap(err, "playwright launch persistent context")
	}

	s.bc.OnClose(func(playwright.BrowserContext) {
		s.log.Warn().Msg("browser closed")
	})

	return s, nil
}

func (s *pwSession) Id() string {
	return s.id
}

// Goto reuses an open page already on url before opening a new one.
func (s *pwSession) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pages := s.bc.Pages()
	for i := range pages {
		if strings.HasPrefix(pages[i].URL(), url) {
			return nil
		}
	}

	var page playwright.Page
	if len(pages) == 1 && pages[0].URL() == "about:blank" {
		page = pages[0]
	} else {
		var err error
		page, err = s.bc.NewPage()
		if err != nil {
			return eris.Wrap(err, "browser new page")
		}
	}

	_, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(s.timeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return eris.Wrapf(err, "page goto %q", url)
	}

	s.log.Info().Msgf("page goto %q ready", url)
	return nil
}

func (s *pwSession) Close() error {
	var errs []error
	if s.bc != nil {
		errs = append(errs, s.bc.Close())
	}
	if s.pw != nil {
		errs = append(errs, s.pw.Stop())
	}
	if s.tempDir && s.dir != "" {
		errs = append(errs, os.RemoveAll(s.dir))
	}
	for _, err := range errs {
		if err != nil {
			return eris.Wrap(err, "close playwright session")
		}
	}
	return nil
}
