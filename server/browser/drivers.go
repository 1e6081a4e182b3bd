package browser

import (
	"slices"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/playwright-community/playwright-go"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// Capabilities builds webdriver capabilities with the options as goog:chromeOptions.
func (o *Options) Capabilities(browserName string, extraArgs ...string) selenium.Capabilities {
	caps := selenium.Capabilities{"browserName": browserName}
	caps.AddChrome(chrome.Capabilities{
		Prefs:           o.Clone().Prefs,
		Args:            append(slices.Clone(o.Args), extraArgs...),
		ExcludeSwitches: slices.Clone(o.ExcludeSwitches),
	})
	return caps
}

// chromedpDisabledFeatures is the disable-features value set by
// chromedp.DefaultExecAllocatorOptions, a later flag with the same name replaces it.
const chromedpDisabledFeatures = "site-per-process,Translate,BlinkGenPropertyTrees"

type allocatorFlag struct {
	name  string
	value any
}

// allocatorFlags turns the args into chromedp flags. Every disable-features
// list, chromedp's own included, is folded into one flag.
func (o *Options) allocatorFlags(extraArgs ...string) []allocatorFlag {
	flags := make([]allocatorFlag, 0, len(o.Args)+len(extraArgs)+len(o.ExcludeSwitches))
	features := strings.Split(chromedpDisabledFeatures, ",")
	featureAt := -1
	for _, arg := range append(slices.Clone(o.Args), extraArgs...) {
		name, value := splitArg(arg)
		if name == switchDisableFeatures {
			if v, ok := value.(string); ok {
				for _, f := range strings.Split(v, ",") {
					if f != "" && !slices.Contains(features, f) {
						features = append(features, f)
					}
				}
			}
			if featureAt < 0 {
				featureAt = len(flags)
				flags = append(flags, allocatorFlag{name: name})
			}
			continue
		}
		flags = append(flags, allocatorFlag{name: name, value: value})
	}
	if featureAt >= 0 {
		flags[featureAt].value = strings.Join(features, ",")
	}
	for _, sw := range o.ExcludeSwitches {
		flags = append(flags, allocatorFlag{name: sw, value: false})
	}
	return flags
}

// ExecAllocatorOptions maps the args onto chromedp flags, excluded switches are
// turned off so chromedp defaults such as enable-automation are dropped.
func (o *Options) ExecAllocatorOptions(extraArgs ...string) []chromedp.ExecAllocatorOption {
	flags := o.allocatorFlags(extraArgs...)
	opts := make([]chromedp.ExecAllocatorOption, len(flags))
	for i, f := range flags {
		opts[i] = chromedp.Flag(f.name, f.value)
	}
	return opts
}

// IgnoreDefaultArgs lists the excluded switches in command line form.
func (o *Options) IgnoreDefaultArgs() []string {
	ss := make([]string, len(o.ExcludeSwitches))
	for i, sw := range o.ExcludeSwitches {
		ss[i] = "--" + strings.TrimLeft(sw, "-")
	}
	return ss
}

// LaunchPersistentContextOptions converts the options for playwright, prefs are
// not part of it and go through WritePreferences.
func (o *Options) LaunchPersistentContextOptions(p *Params) playwright.BrowserTypeLaunchPersistentContextOptions {
	opts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Args:              append(slices.Clone(o.Args), p.ExtraArgs...),
		IgnoreDefaultArgs: o.IgnoreDefaultArgs(),
		Headless:          playwright.Bool(p.Headless),
		IgnoreHttpsErrors: playwright.Bool(true),
		Timeout:           playwright.Float(float64(p.Timeout.Milliseconds())),
	}
	if p.Channel != "" {
		opts.Channel = playwright.String(p.Channel)
	}
	if p.ExecutablePath != "" {
		opts.ExecutablePath = playwright.String(p.ExecutablePath)
	}
	return opts
}
