package config

const (
	AppName = "e2e-kit"

	EnvPrefix = "E2E_KIT_"

	ServerAddress = "127.0.0.1:9560"

	DefaultTarget = "demo"
	DefaultDriver = "playwright"
)
