// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts": {
            "get": {
                "description": "Returns all registered accounts ordered by id. Amounts are in the smallest currency unit.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "string", "default": "1", "description": "API version", "name": "X-API-Version", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Accounts", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.AccountDTO"}}},
                    "404": {"description": "Unsupported API version", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            },
            "put": {
                "description": "Registers a new account. When currency is omitted it is derived from the customer's locale.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Register an account",
                "parameters": [
                    {"type": "string", "default": "1", "description": "API version", "name": "X-API-Version", "in": "header"},
                    {"description": "Account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.AccountDTO"}}
                ],
                "responses": {
                    "201": {"description": "Account created", "schema": {"$ref": "#/definitions/common.Response"}, "headers": {"Location": {"type": "string", "description": "/account/{id}"}}},
                    "304": {"description": "Account already exists"},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Unsupported API version", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Remove all accounts",
                "parameters": [
                    {"type": "string", "default": "1", "description": "API version", "name": "X-API-Version", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "All accounts removed", "schema": {"$ref": "#/definitions/common.Response"}},
                    "404": {"description": "Unsupported API version", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/accounts/transfer": {
            "post": {
                "description": "Withdraws amount from the source account and deposits its equivalent into the destination account.\nThe amount is in the source account's currency units. Zero amounts are accepted and change nothing.\nTransferring to the same account is allowed and leaves the balance unchanged.\nIf the accounts are removed (and possibly re-created) while the transfer is in flight, it fails with 400 \"account not found\" and nothing is written, even when an account with that id exists again.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Transfer money",
                "parameters": [
                    {"type": "string", "default": "1", "description": "API version", "name": "X-API-Version", "in": "header"},
                    {"description": "Transfer details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.TransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "Transfer successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Negative amount, unknown account, insufficient funds or overflow", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Unsupported API version", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "422": {"description": "Conversion unavailable", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        }
    },
    "definitions": {
        "account.AccountDTO": {
            "type": "object",
            "required": ["amount", "customer", "id"],
            "properties": {
                "amount": {"type": "integer", "minimum": 0},
                "currency": {"type": "string"},
                "customer": {"$ref": "#/definitions/account.CustomerDTO"},
                "id": {"type": "string"}
            }
        },
        "account.CustomerDTO": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "firstname": {"type": "string"},
                "id": {"type": "string"},
                "lastname": {"type": "string"},
                "locale": {"type": "string"}
            }
        },
        "account.TransferRequest": {
            "type": "object",
            "required": ["amount", "fromAccountId", "toAccountId"],
            "properties": {
                "amount": {"type": "integer"},
                "fromAccountId": {"type": "string"},
                "id": {"type": "string"},
                "toAccountId": {"type": "string"}
            }
        },
        "common.ProblemDetails": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "common.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Accounts API",
	Description:      "In-memory account management and money transfer service.\nAll amounts are integers in the smallest currency unit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
