// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/server/docs.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/mealmatch/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get system health status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recipes/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Search recipes by title",
                "parameters": [
                    {"type": "string", "description": "Title substring", "name": "query", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "query parameter missing", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recipes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Get a recipe by id",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "id is not an integer", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "unknown recipe", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recipes/rate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Rate a recipe",
                "parameters": [
                    {"description": "Rating", "name": "rating", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "invalid body", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "403": {"description": "token subject does not match user_id", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "unknown recipe", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "429": {"description": "too many ratings", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recipes/get_recommendations/{user_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get recommendations for a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of recipes (default 5)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "invalid user id or limit", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "403": {"description": "token subject does not match user_id", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "model not built yet", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recommend/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommendation engine status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/admin/corpus/reload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Reload the recipe corpus",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "403": {"description": "admin role required", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "422": {"description": "corpus file invalid", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "status": {"type": "string"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "query_time_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.RateRequest": {
            "type": "object",
            "properties": {
                "rating": {"type": "number"},
                "recipe_id": {"type": "integer"},
                "user_id": {"type": "string"}
            }
        },
        "models.RatingResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "rating": {"type": "number"},
                "recipe_id": {"type": "integer"},
                "user_id": {"type": "string"}
            }
        },
        "recommend.Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "score": {"type": "number"},
                "tier": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "corpus.Summary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.ReloadResult": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "model_version": {"type": "integer"},
                "recipes": {"type": "integer"},
                "terms": {"type": "integer"},
                "weighting": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT in the Authorization header: Bearer <token>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Mealmatch API",
	Description:      "Content-based recipe recommendations from user ratings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
