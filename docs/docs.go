// Package docs holds the OpenAPI description served at /swagger.
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
        "/api/sync": {
            "post": {
                "description": "Always 200. Falls back to demo data when credentials are missing, the CRM is empty, or the CRM call fails.",
                "produces": ["application/json"],
                "tags": ["pipeline"],
                "summary": "Sync CRM pipeline",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PipelineSnapshot"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Always answers, even when the configuration store is unreachable.",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health and configuration status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.HealthStatus"}}
                }
            }
        },
        "/api/logs": {
            "get": {
                "description": "Bounded diagnostic log, newest first.",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "System log",
                "responses": {
                    "200": {"description": "logs", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/setup": {
            "post": {
                "description": "Overwrites the stored credentials document.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["setup"],
                "summary": "Save credentials",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handlers.SetupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/voice-session": {
            "post": {
                "description": "Exchanges the stored voice credentials for a signed conversation URL.",
                "produces": ["application/json"],
                "tags": ["voice"],
                "summary": "Voice agent session",
                "responses": {
                    "200": {"description": "success, signedUrl", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.SetupRequest": {
            "type": "object",
            "properties": {
                "crmAccessToken": {"type": "string", "example": "pit-0000"},
                "crmLocationId": {"type": "string", "example": "ve9EPM428h8vShlRW1KT"},
                "voiceAgentId": {"type": "string"},
                "voiceApiKey": {"type": "string"}
            }
        },
        "models.Opportunity": {
            "type": "object",
            "properties": {
                "contact": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "models.PipelineStats": {
            "type": "object",
            "properties": {
                "aiActions": {"type": "integer"},
                "pipelineValue": {"type": "number"},
                "totalLeads": {"type": "integer"},
                "winRate": {"type": "number"}
            }
        },
        "models.PipelineSnapshot": {
            "type": "object",
            "properties": {
                "errorMessage": {"type": "string"},
                "isDemo": {"type": "boolean"},
                "needsSetup": {"type": "boolean"},
                "opportunities": {"type": "array", "items": {"$ref": "#/definitions/models.Opportunity"}},
                "reason": {"type": "string"},
                "stats": {"$ref": "#/definitions/models.PipelineStats"},
                "success": {"type": "boolean"}
            }
        },
        "service.HealthKeys": {
            "type": "object",
            "properties": {
                "crm": {"type": "boolean"},
                "voice": {"type": "boolean"}
            }
        },
        "service.HealthStatus": {
            "type": "object",
            "properties": {
                "configured": {"type": "boolean"},
                "keys": {"$ref": "#/definitions/service.HealthKeys"},
                "location": {"type": "string"},
                "online": {"type": "boolean"}
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
	Title:            "Pipeline Dashboard API",
	Description:      "CRM pipeline sync with demo fallback, system log and voice session handshake.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
