// Package docs registers the swagger spec served at /swagger/*.
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
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Get current user", "responses": {"200": {"description": "OK"}}}},
        "/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "Dashboard", "responses": {"200": {"description": "OK"}}}},
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Create user", "responses": {"201": {"description": "Created"}}}
        },
        "/users/agents": {"get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List agents", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get user by ID", "responses": {"200": {"description": "OK"}}}},
        "/customers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Customers"], "summary": "List customers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Customers"], "summary": "Create customer", "responses": {"201": {"description": "Created"}}}
        },
        "/customers/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Customers"], "summary": "Get customer by ID", "responses": {"200": {"description": "OK"}}}},
        "/assignments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Assignments"], "summary": "List assignments", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Assignments"], "summary": "Create assignment", "responses": {"201": {"description": "Created"}}}
        },
        "/assignments/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Assignments"], "summary": "Get assignment by ID", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Assignments"], "summary": "Delete assignment", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/assignments/{id}/review": {"post": {"security": [{"BearerAuth": []}], "tags": ["Assignments"], "summary": "Review assignment", "responses": {"200": {"description": "OK"}}}},
        "/approver": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "List approver tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "Create approver task", "responses": {"201": {"description": "Created"}}}
        },
        "/approver/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "List assignable users", "responses": {"200": {"description": "OK"}}}},
        "/approver/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "Get approver task", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "Update approver task", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Approver"], "summary": "Delete approver task", "responses": {"200": {"description": "OK"}}}
        },
        "/attachments/classify": {"get": {"security": [{"BearerAuth": []}], "tags": ["Attachments"], "summary": "Classify attachment", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the session token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "LPS Admin API",
	Description:      "Admin console for LPS payout assignments, customers and approver tasks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
