// Package docs registers the OpenAPI description served under /swagger.
// Keep it in step with the @Router annotations in internal/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/solo-hunts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "List solo hunts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Character, Todos for all",
                        "name": "character",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Solo, Corrupted or HCE",
                        "name": "hunt_type",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "Record solo hunt",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateSoloHuntRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.SoloHunt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/solo-hunts/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "Delete solo hunt",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/group-hunts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "List group hunts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Participant",
                        "name": "character",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Minimum group size",
                        "name": "min_size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "Record group hunt",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateGroupHuntRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.GroupHunt"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/group-hunts/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hunts"
                ],
                "summary": "Delete group hunt",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/deaths": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "deaths"
                ],
                "summary": "List deaths",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Character",
                        "name": "character",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "deaths"
                ],
                "summary": "Record death",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateDeathRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Death"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/deaths/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "deaths"
                ],
                "summary": "Delete death",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/builds": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builds"
                ],
                "summary": "List builds with resolved slots",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Content type",
                        "name": "content_type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Character",
                        "name": "character",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builds"
                ],
                "summary": "Create build",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BuildRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Build"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unknown equipment",
                        "schema": {
                            "$ref": "#/definitions/handler.UnknownEquipmentResponse"
                        }
                    }
                }
            }
        },
        "/builds/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builds"
                ],
                "summary": "Get build",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Build"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builds"
                ],
                "summary": "Update build",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BuildRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Build"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unknown equipment",
                        "schema": {
                            "$ref": "#/definitions/handler.UnknownEquipmentResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builds"
                ],
                "summary": "Delete build",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/equipment": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "equipment"
                ],
                "summary": "List catalog categories",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/equipment/resolve": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "equipment"
                ],
                "summary": "Resolve display name to item id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Display name",
                        "name": "name",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ResolveResponse"
                        }
                    }
                }
            }
        },
        "/equipment/{category}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "equipment"
                ],
                "summary": "List catalog entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category",
                        "name": "category",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/characters": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "List known characters",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/stats/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "Get stats summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "daily, weekly, monthly, yearly or all",
                        "name": "period",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.StatsSummary"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns OK if the service is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns OK if the service is ready to accept traffic (database reachable)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Version information",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.VersionInfo"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "build_time": {
                    "type": "string"
                },
                "git_commit": {
                    "type": "string"
                },
                "go_version": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.ResolveResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "external_id": {
                    "type": "string"
                },
                "found": {
                    "type": "boolean"
                }
            }
        },
        "handler.UnknownEquipmentResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "mismatches": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "handler.CreateSoloHuntRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                },
                "hunt_type": {
                    "type": "string"
                },
                "item_profit": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handler.CreateGroupHuntRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "characters": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "total_value": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "handler.CreateDeathRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                },
                "value_lost": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handler.BuildRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "content_type": {
                    "type": "string"
                },
                "primary_weapon": {
                    "type": "string"
                },
                "offhand": {
                    "type": "string"
                },
                "head": {
                    "type": "string"
                },
                "chest": {
                    "type": "string"
                },
                "boots": {
                    "type": "string"
                },
                "cape": {
                    "type": "string"
                },
                "potion": {
                    "type": "string"
                },
                "food": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                }
            }
        },
        "domain.SoloHunt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                },
                "hunt_type": {
                    "type": "string"
                },
                "item_profit": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.GroupHunt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "characters": {
                    "type": "string"
                },
                "total_value": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.Death": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                },
                "value_lost": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.Build": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "content_type": {
                    "type": "string"
                },
                "primary_weapon": {
                    "type": "string"
                },
                "offhand": {
                    "type": "string"
                },
                "head": {
                    "type": "string"
                },
                "chest": {
                    "type": "string"
                },
                "boots": {
                    "type": "string"
                },
                "cape": {
                    "type": "string"
                },
                "potion": {
                    "type": "string"
                },
                "food": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "character": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.StatsSummary": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "solo_hunt_count": {
                    "type": "integer"
                },
                "group_hunt_count": {
                    "type": "integer"
                },
                "death_count": {
                    "type": "integer"
                },
                "solo_profit": {
                    "type": "string"
                },
                "group_value": {
                    "type": "string"
                },
                "losses": {
                    "type": "string"
                },
                "net": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Albion Stats API",
	Description:      "Hunts, deaths, builds and equipment catalog for an Albion Online guild dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
