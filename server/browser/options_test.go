package browser

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium/chrome"

	"github.com/starudream/e2e-kit/server/internal/json"
)

func TestChromeOptions_Prefs(t *testing.T) {
	o := ChromeOptions()
	assert.Len(t, o.Prefs, 5)
	assert.Equal(t, false, o.Prefs["credentials_enable_service"])
	assert.Equal(t, false, o.Prefs["profile.password_manager_enabled"])
	assert.Equal(t, false, o.Prefs["autofill.enabled"])
	assert.Equal(t, false, o.Prefs["safebrowsing.enabled"])
	assert.Equal(t, true, o.Prefs["safebrowsing.disable_download_protection"])
}

func TestChromeOptions_Args(t *testing.T) {
	o := ChromeOptions()
	require.Len(t, o.Args, 5)

	var features []string
	for _, arg := range o.Args {
		if v, ok := strings.CutPrefix(arg, "--disable-features="); ok {
			features = append(features, v)
		}
	}
	require.Len(t, features, 1)
	assert.Equal(t, "PasswordBreachDetection,PasswordGeneration,AutofillServerCommunication,UnifiedPasswordManagerAndroid", features[0])

	assert.ElementsMatch(t, []string{
		"--disable-notifications",
		"--disable-infobars",
		"--disable-popup-blocking",
		"--disable-save-password-bubble",
	}, o.Args[1:])

	assert.Equal(t, []string{"enable-automation"}, o.ExcludeSwitches)
}

func TestChromeOptions_Independent(t *testing.T) {
	a, b := ChromeOptions(), ChromeOptions()
	require.Equal(t, a, b)

	a.Prefs["autofill.enabled"] = true
	a.Args[0] = "--changed"
	a.ExcludeSwitches = append(a.ExcludeSwitches[:0], "other")

	assert.Equal(t, false, b.Prefs["autofill.enabled"])
	assert.NotEqual(t, "--changed", b.Args[0])
	assert.Equal(t, []string{"enable-automation"}, b.ExcludeSwitches)
	assert.Equal(t, ChromeOptions(), b)
}

func TestChromeOptions_Concurrent(t *testing.T) {
	want := ChromeOptions()
	wg := sync.WaitGroup{}
	for range 32 {
		wg.Go(func() {
			o := ChromeOptions()
			o.Args = append(o.Args, "--mine")
			o.Prefs["mine"] = true
			assert.Len(t, o.Args, 6)
		})
	}
	wg.Wait()
	assert.Equal(t, want, ChromeOptions())
}

func TestOptions_Clone(t *testing.T) {
	o := ChromeOptions()
	c := o.Clone()
	require.Equal(t, o, c)
	c.Prefs[PrefAutofillEnabled] = true
	c.Args[1] = "--x"
	assert.Equal(t, false, o.Prefs[PrefAutofillEnabled])
	assert.Equal(t, "--disable-notifications", o.Args[1])
}

func TestOptions_NestedPrefs(t *testing.T) {
	got := ChromeOptions().NestedPrefs()
	assert.Equal(t, map[string]any{
		"credentials_enable_service": false,
		"profile":                    map[string]any{"password_manager_enabled": false},
		"autofill":                   map[string]any{"enabled": false},
		"safebrowsing": map[string]any{
			"enabled":                     false,
			"disable_download_protection": true,
		},
	}, got)
}

func TestOptions_WritePreferences(t *testing.T) {
	dir := t.TempDir()
	path := PreferencesPath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":{"name":"tester","password_manager_enabled":true},"intl":{"accept_languages":"en"}}`), 0o644))

	require.NoError(t, ChromeOptions().WritePreferences(dir))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	prefs, err := json.UnmarshalTo[map[string]any](bs)
	require.NoError(t, err)

	assert.Equal(t, false, prefs["credentials_enable_service"])
	assert.Equal(t, map[string]any{"name": "tester", "password_manager_enabled": false}, prefs["profile"])
	assert.Equal(t, map[string]any{"accept_languages": "en"}, prefs["intl"])
	assert.Equal(t, map[string]any{"enabled": false, "disable_download_protection": true}, prefs["safebrowsing"])
}

func TestOptions_WritePreferencesNewProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, ChromeOptions().WritePreferences(dir))
	assert.FileExists(t, PreferencesPath(dir))
}

func TestOptions_WritePreferencesCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := PreferencesPath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	assert.Error(t, ChromeOptions().WritePreferences(dir))
}

func TestOptions_WritePreferencesNull(t *testing.T) {
	dir := t.TempDir()
	path := PreferencesPath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0o644))

	require.NoError(t, ChromeOptions().WritePreferences(dir))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	prefs, err := json.UnmarshalTo[map[string]any](bs)
	require.NoError(t, err)
	assert.Equal(t, ChromeOptions().NestedPrefs(), prefs)
}

func TestOptions_Capabilities(t *testing.T) {
	o := ChromeOptions()
	caps := o.Capabilities("chrome", "--headless=new")
	assert.Equal(t, "chrome", caps["browserName"])

	cc, ok := caps[chrome.CapabilitiesKey].(chrome.Capabilities)
	require.True(t, ok)
	assert.Equal(t, o.Prefs, cc.Prefs)
	assert.Equal(t, []string{"enable-automation"}, cc.ExcludeSwitches)
	assert.Equal(t, append(o.Clone().Args, "--headless=new"), cc.Args)

	cc.Prefs[PrefAutofillEnabled] = true
	assert.Equal(t, false, o.Prefs[PrefAutofillEnabled])
	assert.Len(t, o.Args, 5)
}

func TestOptions_ExecAllocatorOptions(t *testing.T) {
	o := ChromeOptions()
	assert.Len(t, o.ExecAllocatorOptions(), 6)
	assert.Len(t, o.ExecAllocatorOptions("--window-size=1280,800"), 7)
}

func TestOptions_LaunchPersistentContextOptions(t *testing.T) {
	o := ChromeOptions()
	p := (&Params{Headless: true, ExtraArgs: []string{"--lang=en"}}).init(envDemo())
	opts := o.LaunchPersistentContextOptions(p)

	assert.Equal(t, append(o.Clone().Args, "--lang=en"), opts.Args)
	assert.Equal(t, []string{"--enable-automation"}, opts.IgnoreDefaultArgs)
	require.NotNil(t, opts.Headless)
	assert.True(t, *opts.Headless)
	require.NotNil(t, opts.Channel)
	assert.Equal(t, "chrome", *opts.Channel)
	assert.Nil(t, opts.ExecutablePath)
	require.NotNil(t, opts.Timeout)
	assert.Equal(t, float64(60*1000), *opts.Timeout)
}

func TestOptions_AllocatorFlags(t *testing.T) {
	flags := ChromeOptions().allocatorFlags("--disable-features=Translate,MediaRouter", "--lang=en")
	require.Len(t, flags, 7)

	assert.Equal(t, allocatorFlag{
		name:  "disable-features",
		value: "site-per-process,Translate,BlinkGenPropertyTrees,PasswordBreachDetection,PasswordGeneration,AutofillServerCommunication,UnifiedPasswordManagerAndroid,MediaRouter",
	}, flags[0])
	assert.Equal(t, allocatorFlag{name: "disable-notifications", value: true}, flags[1])
	assert.Equal(t, allocatorFlag{name: "lang", value: "en"}, flags[5])
	assert.Equal(t, allocatorFlag{name: "enable-automation", value: false}, flags[6])

	n := 0
	for _, f := range flags {
		if f.name == "disable-features" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestSplitArg(t *testing.T) {
	for _, c := range []struct {
		arg   string
		name  string
		value any
	}{
		{"--disable-infobars", "disable-infobars", true},
		{"--disable-features=A,B", "disable-features", "A,B"},
		{"--window-size=1280,800", "window-size", "1280,800"},
		{"no-sandbox", "no-sandbox", true},
	} {
		name, value := splitArg(c.arg)
		assert.Equal(t, c.name, name, c.arg)
		assert.Equal(t, c.value, value, c.arg)
	}
}
