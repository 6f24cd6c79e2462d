// Package docs registers the EcoTrack OpenAPI document with swag so that
// gin-swagger can serve it under /swagger. Keep it in step with the
// controller annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/health": {"get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Dependency down"}}}},
        "/api/register": {"post": {"tags": ["auth"], "summary": "Register a user", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "409": {"description": "Email already registered"}}}},
        "/api/login": {"post": {"tags": ["auth"], "summary": "Log in", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "Token issued"}, "401": {"description": "Invalid credentials"}}}},
        "/api/community/stats": {"get": {"tags": ["community"], "summary": "Community impact totals", "responses": {"200": {"description": "OK"}}}},
        "/api/tasks/catalog": {"get": {"tags": ["tasks"], "summary": "Daily task catalog", "responses": {"200": {"description": "OK"}}}},
        "/api/profile": {"get": {"tags": ["auth"], "security": [{"ApiKeyAuth": []}], "summary": "Current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/profile/summary": {"get": {"tags": ["dashboard"], "security": [{"ApiKeyAuth": []}], "summary": "Profile summary", "responses": {"200": {"description": "OK"}}}},
        "/api/dashboard": {"get": {"tags": ["dashboard"], "security": [{"ApiKeyAuth": []}], "summary": "User dashboard", "responses": {"200": {"description": "OK"}}}},
        "/api/stats": {"get": {"tags": ["dashboard"], "security": [{"ApiKeyAuth": []}], "summary": "User statistics", "responses": {"200": {"description": "OK"}}}},
        "/api/tasks/today": {"get": {"tags": ["tasks"], "security": [{"ApiKeyAuth": []}], "summary": "Today's tasks with completion flags", "responses": {"200": {"description": "OK"}}}},
        "/api/tasks/complete": {"post": {"tags": ["tasks"], "security": [{"ApiKeyAuth": []}], "summary": "Complete a daily task", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CompleteTaskRequest"}}], "responses": {"200": {"description": "Points recorded"}, "400": {"description": "Invalid task or points"}, "409": {"description": "Already completed today"}, "429": {"description": "Another completion in progress"}}}},
        "/api/points/total": {"get": {"tags": ["badges"], "security": [{"ApiKeyAuth": []}], "summary": "Total points", "responses": {"200": {"description": "OK"}}}},
        "/api/impact": {"get": {"tags": ["badges"], "security": [{"ApiKeyAuth": []}], "summary": "Environmental impact", "responses": {"200": {"description": "OK"}}}},
        "/api/badges": {"get": {"tags": ["badges"], "security": [{"ApiKeyAuth": []}], "summary": "Earned badges", "responses": {"200": {"description": "OK"}}}},
        "/api/badges/next": {"get": {"tags": ["badges"], "security": [{"ApiKeyAuth": []}], "summary": "Progress to the next badge", "responses": {"200": {"description": "OK"}}}},
        "/api/tips/random": {"get": {"tags": ["tips"], "security": [{"ApiKeyAuth": []}], "summary": "Random eco tip", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/stats": {"get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Platform statistics", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/admin/users": {"get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "List users", "parameters": [{"in": "query", "name": "page", "type": "integer"}, {"in": "query", "name": "limit", "type": "integer"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/admin/tips": {
            "get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "List tips", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Create a tip", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTipRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/api/admin/tips/{id}": {"delete": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Delete a tip", "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}}
    },
    "definitions": {
        "RegisterRequest": {"type": "object", "required": ["name", "email", "password"], "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 6}}},
        "LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "CompleteTaskRequest": {"type": "object", "required": ["task_id"], "properties": {"task_id": {"type": "integer"}, "points": {"type": "integer", "minimum": 1}}},
        "CreateTipRequest": {"type": "object", "required": ["text", "category"], "properties": {"text": {"type": "string"}, "category": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EcoTrack API",
	Description:      "Points, badges and environmental impact for daily eco tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
