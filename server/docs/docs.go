// Package docs holds the swagger 2.0 document of the http api.
package docs

import (
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "github repo",
            "url": "https://github.com/starudream/e2e-kit"
        },
        "license": {
            "name": "Apache-2.0",
            "url": "https://www.apache.org/licenses/LICENSE-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["common"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/version": {
            "get": {
                "tags": ["common"],
                "summary": "Version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/config.Version"}}
                }
            }
        },
        "/v1/environments": {
            "get": {
                "tags": ["environment"],
                "summary": "Environment List",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.ListEnvironmentResp"}}
                }
            }
        },
        "/v1/environments/{name}": {
            "get": {
                "description": "name ` + "`current`" + ` returns the configured target with overrides applied",
                "tags": ["environment"],
                "summary": "Environment Settings",
                "parameters": [
                    {"type": "string", "description": "environment name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/env.Settings"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errx.Error"}}
                }
            }
        },
        "/v1/browser/options": {
            "get": {
                "description": "chrome launch configuration, as is, as webdriver capabilities or as profile preferences",
                "tags": ["browser"],
                "summary": "Browser Launch Options",
                "parameters": [
                    {"enum": ["raw", "selenium", "preferences"], "type": "string", "name": "format", "in": "query"},
                    {"type": "string", "description": "webdriver browserName, defaults to the target browser", "name": "browser", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errx.Error"}}
                }
            }
        }
    },
    "definitions": {
        "config.Version": {
            "type": "object",
            "properties": {
                "gitVersion": {"type": "string"},
                "gitCommit": {"type": "string"},
                "gitTreeState": {"type": "string"},
                "buildDate": {"type": "string"},
                "goVersion": {"type": "string"},
                "compiler": {"type": "string"},
                "platform": {"type": "string"}
            }
        },
        "env.Credentials": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "env.Settings": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "ui_url": {"type": "string"},
                "browser": {"type": "string"},
                "api": {"$ref": "#/definitions/env.Credentials"},
                "ui": {"$ref": "#/definitions/env.Credentials"}
            }
        },
        "errx.Error": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "router.ListEnvironmentResp": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "E2E Kit API",
	Description:      "Target environment settings and browser launch options for end-to-end test runners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
