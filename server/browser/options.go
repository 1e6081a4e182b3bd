package browser

import (
	"maps"
	"slices"
	"strings"
)

// chrome preference keys
const (
	PrefCredentialsEnableService         = "credentials_enable_service"
	PrefPasswordManagerEnabled           = "profile.password_manager_enabled"
	PrefAutofillEnabled                  = "autofill.enabled"
	PrefSafeBrowsingEnabled              = "safebrowsing.enabled"
	PrefSafeBrowsingNoDownloadProtection = "safebrowsing.disable_download_protection"
)

// chrome features behind the password breach and password manager popups
const (
	FeaturePasswordBreachDetection       = "PasswordBreachDetection"
	FeaturePasswordGeneration            = "PasswordGeneration"
	FeatureAutofillServerCommunication   = "AutofillServerCommunication"
	FeatureUnifiedPasswordManagerAndroid = "UnifiedPasswordManagerAndroid"
)

const (
	SwitchEnableAutomation = "enable-automation"

	switchDisableFeatures = "disable-features"
)

var disabledFeatures = []string{
	FeaturePasswordBreachDetection,
	FeaturePasswordGeneration,
	FeatureAutofillServerCommunication,
	FeatureUnifiedPasswordManagerAndroid,
}

// Options is the launch configuration handed to a chromium driver.
type Options struct {
	Prefs           map[string]any `json:"prefs"`
	Args            []string       `json:"args"`
	ExcludeSwitches []string       `json:"excludeSwitches"`
}

// ChromeOptions returns a new launch configuration that keeps the password
// manager, autofill and safe browsing dialogs from interrupting a run.
func ChromeOptions() *Options {
	return &Options{
		Prefs: map[string]any{
			PrefCredentialsEnableService:         false,
			PrefPasswordManagerEnabled:           false,
			PrefAutofillEnabled:                  false,
			PrefSafeBrowsingEnabled:              false,
			PrefSafeBrowsingNoDownloadProtection: true,
		},
		Args: []string{
			"--" + switchDisableFeatures + "=" + strings.Join(disabledFeatures, ","),
			"--disable-notifications",
			"--disable-infobars",
			"--disable-popup-blocking",
			"--disable-save-password-bubble",
		},
		ExcludeSwitches: []string{SwitchEnableAutomation},
	}
}

func (o *Options) Clone() *Options {
	return &Options{
		Prefs:           maps.Clone(o.Prefs),
		Args:            slices.Clone(o.Args),
		ExcludeSwitches: slices.Clone(o.ExcludeSwitches),
	}
}

// NestedPrefs expands the dotted preference keys into the object layout chrome
// keeps in the profile Preferences file.
func (o *Options) NestedPrefs() map[string]any {
	root := map[string]any{}
	for _, k := range slices.Sorted(maps.Keys(o.Prefs)) {
		setNested(root, strings.Split(k, "."), o.Prefs[k])
	}
	return root
}

func setNested(m map[string]any, path []string, v any) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}

// splitArg turns "--name=value" into (name, value) and "--name" into (name, true).
func splitArg(arg string) (string, any) {
	arg = strings.TrimLeft(arg, "-")
	if name, value, ok := strings.Cut(arg, "="); ok {
		return name, value
	}
	return arg, true
}
