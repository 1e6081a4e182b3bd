package browser

import (
	"time"

	"github.com/starudream/e2e-kit/server/config"
	"github.com/starudream/e2e-kit/server/env"
)

const (
	DriverPlaywright = "playwright"
	DriverChromedp   = "chromedp"
	DriverSelenium   = "selenium"

	defaultTimeout   = 60 * time.Second
	defaultRemoteURL = "http://127.0.0.1:4444/wd/hub"
)

type Params struct {
	// playwright, chromedp or selenium
	Driver   string
	Headless bool
	// playwright channel, chrome picks the branded build
	Channel        string
	ExecutablePath string
	// profile directory, a temporary one is used when empty
	UserDataDir string
	// webdriver hub for the selenium driver
	RemoteURL string
	ExtraArgs []string
	Timeout   time.Duration
}

func ParamsFromConfig(c *config.Config) *Params {
	return &Params{
		Driver:         c.BrowserDriver,
		Headless:       c.BrowserHeadless,
		Channel:        c.BrowserChannel,
		ExecutablePath: c.BrowserExecutable,
		UserDataDir:    c.BrowserUserdata,
		RemoteURL:      c.BrowserRemote,
		ExtraArgs:      c.BrowserArgs,
	}
}

func (p *Params) init(s env.Settings) *Params {
	if p == nil {
		//goland:noinspection GoAssignmentToReceiver
		p = &Params{}
	}
	if p.Driver == "" {
		p.Driver = DriverPlaywright
	}
	if p.Channel == "" && p.Driver == DriverPlaywright && s.Browser == env.BrowserChrome {
		p.Channel = env.BrowserChrome
	}
	if p.RemoteURL == "" {
		p.RemoteURL = defaultRemoteURL
	}
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	return p
}
