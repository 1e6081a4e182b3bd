// Package env holds the named target environments the UI and API suites run
// against. There is one registry; suites pick an entry by name and get their own
// copy of it.
package env

import (
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/config"
)

var ErrUnknownEnvironment = eris.New("unknown environment")

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Settings struct {
	Name string `json:"name"`
	// base url of the target application, also the api root
	URL string `json:"url" validate:"required,url"`
	// admin web interface, empty when the target has no ui
	UIURL   string `json:"ui_url,omitempty" validate:"omitempty,url"`
	Browser string `json:"browser" validate:"required"`

	API Credentials `json:"api"`
	UI  Credentials `json:"ui"`
}

const (
	BrowserChrome = "chrome"

	Demo = "demo"
)

var environments = map[string]Settings{
	Demo: {
		Name:    Demo,
		URL:     "https://restful-booker.herokuapp.com/",
		UIURL:   "https://automationintesting.online/admin",
		Browser: BrowserChrome,
		API:     Credentials{Username: "admin", Password: "password123"},
		UI:      Credentials{Username: "admin", Password: "password"},
	},
}

// Lookup returns a copy of the named environment, the empty name selects Demo.
func Lookup(name string) (Settings, error) {
	if name == "" {
		name = Demo
	}
	s, ok := environments[name]
	if !ok {
		return Settings{}, eris.Wrapf(ErrUnknownEnvironment, "%q", name)
	}
	return s, nil
}

func Names() []string {
	return slices.Sorted(maps.Keys(environments))
}

func Default() Settings {
	return environments[Demo]
}

// Merge returns a copy of s with every non-empty field of o applied on top.
func (s Settings) Merge(o Settings) Settings {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.Name, o.Name)
	set(&s.URL, o.URL)
	set(&s.UIURL, o.UIURL)
	set(&s.Browser, o.Browser)
	set(&s.API.Username, o.API.Username)
	set(&s.API.Password, o.API.Password)
	set(&s.UI.Username, o.UI.Username)
	set(&s.UI.Password, o.UI.Password)
	return s
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return eris.Wrapf(err, "environment %q", s.Name)
	}
	return nil
}

// HasUI reports whether the environment exposes an admin web interface.
func (s Settings) HasUI() bool {
	return s.UIURL != ""
}

// FromConfig resolves the configured target and applies the target overrides.
func FromConfig(c *config.Config) (Settings, error) {
	s, err := Lookup(c.TargetName)
	if err != nil {
		return Settings{}, err
	}
	s = s.Merge(Settings{
		URL:     c.TargetURL,
		UIURL:   c.TargetUIURL,
		Browser: c.TargetBrowser,
		API:     Credentials{Username: c.TargetAPIUsername, Password: c.TargetAPIPassword},
		UI:      Credentials{Username: c.TargetUIUsername, Password: c.TargetUIPassword},
	})
	if err = s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
