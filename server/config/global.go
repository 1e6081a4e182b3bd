package config

type Config struct {
	LogLevel   string `config:"log.level"`
	LogNoColor bool   `config:"log.nocolor"`

	ServerAddr string `config:"server.addr"`

	// target environment, fields other than name override the registered values
	TargetName        string `config:"target.name"`
	TargetURL         string `config:"target.url"`
	TargetUIURL       string `config:"target.ui.url"`
	TargetBrowser     string `config:"target.browser"`
	TargetAPIUsername string `config:"target.api.username"`
	TargetAPIPassword string `config:"target.api.password"`
	TargetUIUsername  string `config:"target.ui.username"`
	TargetUIPassword  string `config:"target.ui.password"`

	BrowserDriver     string        `config:"browser.driver"`
	BrowserHeadless   bool          `config:"browser.headless"`
	BrowserChannel    string        `config:"browser.channel"`
	BrowserExecutable string        `config:"browser.executable"`
	BrowserUserdata   string        `config:"browser.userdata"`
	BrowserRemote     string        `config:"browser.remote"`
	BrowserArgs       Array[string] `config:"browser.args"`
}

func defaults() *Config {
	return &Config{
		LogLevel:   "INFO",
		LogNoColor: false,

		ServerAddr: ServerAddress,

		TargetName: DefaultTarget,

		BrowserDriver:   DefaultDriver,
		BrowserHeadless: true,
	}
}

var g = defaults()

func G() *Config {
	return g
}
