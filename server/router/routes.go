package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/starudream/e2e-kit/server/config"
	"github.com/starudream/e2e-kit/server/docs"
	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/export"
	"github.com/starudream/e2e-kit/server/internal/echox"
	"github.com/starudream/e2e-kit/server/internal/errx"
)

// General Swagger API Info
//
//	@title			E2E Kit API
//	@version		1.0
//	@description	Target environment settings and browser launch options for end-to-end test runners.
//	@contact.name	github repo
//	@contact.url	https://github.com/starudream/e2e-kit
//	@license.name	Apache-2.0
//	@license.url	https://www.apache.org/licenses/LICENSE-2.0
//	@tag.name		common
//	@tag.name		environment
//	@tag.name		browser
//	@produce		json
//	@schemes		http
func setupSwagger(app *echo.Echo) {
	docs.SwaggerInfo.Version = config.GetVersion().GitVersion
	app.GET("/swagger/*", echoSwagger.WrapHandler)
}

func setupRoutes(app *echo.Echo, h *handler) {
	app.GET("/health", hdrHealth)
	app.GET("/version", hdrVersion)

	v1 := app.Group("/v1", echox.MiddlewareLogger())
	{
		v1.GET("/environments", hdrEnvironments)
		v1.GET("/environments/:name", h.hdrEnvironment)
		v1.GET("/browser/options", h.hdrBrowserOptions)
	}
}

type handler struct {
	// configured target, overrides already applied
	target env.Settings
}

// Health Check
//
//	@router		/health [get]
//	@summary	Health Check
//	@tags		common
//	@produce	plain
//	@success	200	{string}	string	"OK"
func hdrHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Version
//
//	@router		/version [get]
//	@summary	Version
//	@tags		common
//	@success	200	{object}	config.Version
func hdrVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, config.GetVersion())
}

type ListEnvironmentResp struct {
	// 按名称排序
	Data []string `json:"data"`
}

// Environment List
//
//	@router		/v1/environments [get]
//	@summary	Environment List
//	@tags		environment
//	@success	200	{object}	ListEnvironmentResp
func hdrEnvironments(c echo.Context) error {
	return c.JSON(http.StatusOK, &ListEnvironmentResp{Data: env.Names()})
}

// Environment Settings
//
//	@router			/v1/environments/{name} [get]
//	@summary		Environment Settings
//	@description	name `current` returns the configured target with overrides applied
//	@tags			environment
//	@param			name	path		string	true	"environment name"
//	@success		200		{object}	env.Settings
//	@failure		404		{object}	errx.Error
func (h *handler) hdrEnvironment(c echo.Context) error {
	name := c.Param("name")
	if name == "current" {
		return c.JSON(http.StatusOK, h.target)
	}
	s, err := env.Lookup(name)
	if err != nil {
		if eris.Is(err, env.ErrUnknownEnvironment) {
			return errx.NotFound().WithMsgf("environment %q not found", name)
		}
		return err
	}
	return c.JSON(http.StatusOK, s)
}

type BrowserOptionsReq struct {
	Format  string `query:"format" validate:"omitempty,oneof=raw selenium preferences"`
	Browser string `query:"browser"`
}

// Browser Launch Options
//
//	@router			/v1/browser/options [get]
//	@summary		Browser Launch Options
//	@description	chrome launch configuration, as is, as webdriver capabilities or as profile preferences
//	@tags			browser
//	@param			format	query		string	false	"output format"	Enums(raw, selenium, preferences)
//	@param			browser	query		string	false	"webdriver browserName, defaults to the target browser"
//	@success		200		{object}	object
//	@failure		400		{object}	errx.Error
func (h *handler) hdrBrowserOptions(c echo.Context) error {
	req := &BrowserOptionsReq{}
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	target := h.target
	if req.Browser != "" {
		target.Browser = req.Browser
	}
	v, err := export.Value(req.Format, target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}
