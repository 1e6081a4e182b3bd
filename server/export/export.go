// Package export renders the target settings and the browser launch
// configuration in the forms other test runners consume.
package export

import (
	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/browser"
	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/internal/json"
)

const (
	FormatSettings    = "settings"
	FormatRaw         = "raw"
	FormatSelenium    = "selenium"
	FormatPreferences = "preferences"
)

var ErrUnknownFormat = eris.New("unknown export format")

func Formats() []string {
	return []string{FormatSettings, FormatRaw, FormatSelenium, FormatPreferences}
}

// Value returns what format exports for target, the empty format is raw.
func Value(format string, target env.Settings) (any, error) {
	o := browser.ChromeOptions()
	switch format {
	case FormatSettings:
		return target, nil
	case FormatRaw, "":
		return o, nil
	case FormatSelenium:
		name := target.Browser
		if name == "" {
			name = env.BrowserChrome
		}
		return o.Capabilities(name), nil
	case FormatPreferences:
		return o.NestedPrefs(), nil
	}
	return nil, eris.Wrapf(ErrUnknownFormat, "%q, want one of %v", format, Formats())
}

// Render is Value as indented json.
func Render(format string, target env.Settings) ([]byte, error) {
	v, err := Value(format, target)
	if err != nil {
		return nil, err
	}
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, eris.Wrapf(err, "marshal %s", format)
	}
	return bs, nil
}
