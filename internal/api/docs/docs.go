// Package docs registers the OpenAPI document served at /swagger/*.
// The document is maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Bookstore API",
    "description": "Multi-tenant bookstore catalog with JWT authentication and role-based authorization.",
    "version": "1.0"
  },
  "basePath": "/",
  "securityDefinitions": {
    "BearerAuth": {
      "type": "apiKey",
      "name": "Authorization",
      "in": "header",
      "description": "Type \"Bearer\" followed by a space and the JWT token."
    }
  },
  "paths": {
    "/login": {
      "post": {
        "tags": ["auth"],
        "summary": "Login",
        "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
          "400": {"description": "Bad Request"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/register": {
      "post": {
        "tags": ["auth"],
        "summary": "Register a new user",
        "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Bad Request"},
          "409": {"description": "Conflict"}
        }
      }
    },
    "/api/me": {
      "get": {
        "tags": ["auth"],
        "summary": "Current identity",
        "security": [{"BearerAuth": []}],
        "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
      }
    },
    "/api/authors": {
      "get": {
        "tags": ["authors"],
        "summary": "List all authors",
        "security": [{"BearerAuth": []}],
        "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
      },
      "post": {
        "tags": ["authors"],
        "summary": "Create an author (Administrator)",
        "security": [{"BearerAuth": []}],
        "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
      }
    },
    "/api/authors/{id}": {
      "get": {
        "tags": ["authors"],
        "summary": "Get an author",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
      },
      "put": {
        "tags": ["authors"],
        "summary": "Update an author (Administrator)",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
      },
      "delete": {
        "tags": ["authors"],
        "summary": "Delete an author (Administrator)",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
      }
    },
    "/api/books": {
      "get": {
        "tags": ["books"],
        "summary": "List all books",
        "security": [{"BearerAuth": []}],
        "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
      },
      "post": {
        "tags": ["books"],
        "summary": "Create a book (Administrator)",
        "security": [{"BearerAuth": []}],
        "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
      }
    },
    "/api/books/{id}": {
      "get": {
        "tags": ["books"],
        "summary": "Get a book",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
      },
      "put": {
        "tags": ["books"],
        "summary": "Update a book (Administrator)",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
      },
      "delete": {
        "tags": ["books"],
        "summary": "Delete a book (Administrator)",
        "security": [{"BearerAuth": []}],
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
        "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
      }
    }
  },
  "definitions": {
    "loginRequest": {
      "type": "object",
      "required": ["emailAddress", "password"],
      "properties": {
        "emailAddress": {"type": "string"},
        "password": {"type": "string"}
      }
    },
    "registerRequest": {
      "type": "object",
      "required": ["emailAddress", "password", "confirmPassword"],
      "properties": {
        "emailAddress": {"type": "string"},
        "password": {"type": "string", "minLength": 6, "maxLength": 20},
        "confirmPassword": {"type": "string"}
      }
    },
    "tokenResponse": {
      "type": "object",
      "properties": {"token": {"type": "string"}}
    }
  }
}`

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return docTemplate }

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
