// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List registered users",
                "description": "Every stored registration, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Registration"}}
                    },
                    "500": {"description": "Failed to fetch users", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "description": "Validate a registration form, attach a predicted age and store it",
                "parameters": [
                    {
                        "description": "Registration form",
                        "name": "registration",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RegistrationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "User created successfully", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Validation failed", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Failed to create user", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/users/export/pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["export"],
                "summary": "Export registered users as PDF",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Failed to export users", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/users/export/csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["export"],
                "summary": "Export registered users as CSV",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Failed to export users", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/locations/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List countries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/api/locations/countries/{country}/states": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List the states of a country",
                "parameters": [
                    {"type": "string", "description": "Country", "name": "country", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Country not found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/locations/countries/{country}/states/{state}/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List the cities of a state",
                "parameters": [
                    {"type": "string", "description": "Country", "name": "country", "in": "path", "required": true},
                    {"type": "string", "description": "State", "name": "state", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "State not found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/age": {
            "get": {
                "produces": ["application/json"],
                "tags": ["age"],
                "summary": "Predict an age from a name",
                "description": "predictedAge is null when the name is too short or no prediction exists",
                "parameters": [
                    {"type": "string", "description": "First name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "name is required", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.Registration": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "fullName": {"type": "string", "example": "Asha Verma"},
                "email": {"type": "string", "example": "asha@example.com"},
                "phone": {"type": "string", "example": "9876543210"},
                "dob": {"type": "string", "example": "1995-04-12T00:00:00Z"},
                "gender": {"type": "string", "example": "Female"},
                "predictedAge": {"type": "integer", "example": 38},
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "country": {"type": "string", "example": "India"},
                "state": {"type": "string", "example": "Karnataka"},
                "city": {"type": "string", "example": "Bangalore"},
                "zip": {"type": "string", "example": "560001"},
                "occupation": {"type": "string", "example": "Engineer"},
                "income": {"type": "number", "example": 55000},
                "signature": {"type": "string"},
                "createdAt": {"type": "string", "example": "2024-01-01T00:00:00Z"}
            }
        },
        "models.RegistrationRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "dob": {"type": "string", "example": "1995-04-12"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Other"]},
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "country": {"type": "string", "enum": ["USA", "India", "Canada"]},
                "state": {"type": "string"},
                "city": {"type": "string"},
                "zip": {"type": "string"},
                "occupation": {"type": "string", "enum": ["Student", "Engineer", "Doctor", "Other"]},
                "income": {"type": "number"},
                "signature": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "User Registry API",
	Description:      "Registration form backend with age prediction and exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
