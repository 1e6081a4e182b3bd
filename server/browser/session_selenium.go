package browser

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tebeka/selenium"

	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/logger"
)

type wdSession struct {
	id      string
	log     logger.ZLogger
	timeout time.Duration
	wd      selenium.WebDriver
}

// headless mode for chromedriver is a command line switch
const argHeadless = "--headless=new"

func openSelenium(ctx context.Context, id string, o *Options, p *Params, s env.Settings, log logger.ZLogger) (*wdSession, error) {
	args := p.ExtraArgs
	if p.Headless {
		args = append([]string{argHeadless}, args...)
	}
	caps := o.Capabilities(s.Browser, args...)

	wd, err := withTimeout(ctx, p.Timeout, func() (selenium.WebDriver, error) {
		return selenium.NewRemote(caps, p.RemoteURL)
	}, func(wd selenium.WebDriver) {
		_ = wd.Quit()
	})
	if err != nil {
		return nil, eris.Wrapf(err, "webdriver connect %s", p.RemoteURL)
	}

	if err = wd.SetPageLoadTimeout(p.Timeout); err != nil {
		log.Warn().Err(err).Msg("webdriver set page load timeout error")
	}

	return &wdSession{id: id, log: log, timeout: p.Timeout, wd: wd}, nil
}

func (s *wdSession) Id() string {
	return s.id
}

func (s *wdSession) Goto(ctx context.Context, url string) error {
	_, err := withTimeout(ctx, s.timeout, func() (struct{}, error) {
		return struct{}{}, s.wd.Get(url)
	}, nil)
	if err != nil {
		return eris.Wrapf(err, "webdriver get %q", url)
	}
	s.log.Info().Msgf("page goto %q ready", url)
	return nil
}

func (s *wdSession) Close() error {
	if err := s.wd.Quit(); err != nil {
		return eris.Wrap(err, "webdriver quit")
	}
	return nil
}
