// Package docs holds the OpenAPI document served under /swagger/.
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
        "/cohorts": {
            "get": {
                "description": "Public list of cohorts, active first then oldest first. The qualifier test link is never included.",
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "List cohorts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListCohortsResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/me/cohort-test": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's profile (email and verification fresh from the identity provider), the assigned cohort or null, and all cohorts.",
                "produces": ["application/json"],
                "tags": ["cohorts"],
                "summary": "Candidate dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CandidateDashboard"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/qualifier/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Emails the assigned cohort's qualifier link to the caller's verified address, at most once. Repeated calls return alreadySent with the original timestamp.",
                "produces": ["application/json"],
                "tags": ["qualifier"],
                "summary": "Send qualifier test email",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.QualifierSendResult"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "409": {"description": "error.code: conflict (unverified email, no cohort, or no qualifier link)", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "502": {"description": "error.code: bad_gateway", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/register/profile": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates or updates the caller's candidate profile. Re-submitting overwrites every field, including the cohort.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registration"],
                "summary": "Submit registration",
                "parameters": [
                    {
                        "description": "Registration form",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.RegisterProfileRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.OKResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/universities": {
            "get": {
                "description": "Case-insensitive substring match on name, country or domain. Queries shorter than two characters return an empty list. At most 20 results.",
                "produces": ["application/json"],
                "tags": ["universities"],
                "summary": "Search universities",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.UniversityMatch"}}}
                }
            }
        }
    },
    "definitions": {
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "controllers.ListCohortsResponse": {
            "type": "object",
            "properties": {"cohorts": {"type": "array", "items": {"$ref": "#/definitions/domain.PublicCohort"}}}
        },
        "controllers.RegisterProfileRequest": {
            "type": "object",
            "properties": {
                "availability": {"type": "boolean"},
                "cohortId": {"type": "string"},
                "github": {"type": "string"},
                "intent": {"type": "string"},
                "name": {"type": "string"},
                "stack": {"type": "string"},
                "university": {"type": "string"}
            }
        },
        "domain.CandidateDashboard": {
            "type": "object",
            "properties": {
                "assignedCohort": {"$ref": "#/definitions/domain.Cohort"},
                "cohorts": {"type": "array", "items": {"$ref": "#/definitions/domain.Cohort"}},
                "user": {"$ref": "#/definitions/domain.CandidateProfile"}
            }
        },
        "domain.CandidateProfile": {
            "type": "object",
            "properties": {
                "availability": {"type": "boolean"},
                "cohort_id": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "email_verified": {"type": "boolean"},
                "github": {"type": "string"},
                "id": {"type": "string"},
                "intent": {"type": "string"},
                "name": {"type": "string"},
                "qualifier_email_message_id": {"type": "string"},
                "qualifier_email_sent_at": {"type": "string"},
                "stack": {"type": "string"},
                "university": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Cohort": {
            "type": "object",
            "properties": {
                "apply_by": {"type": "string"},
                "apply_window": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "qualifier_test_url": {"type": "string"},
                "slug": {"type": "string"},
                "sprint_window": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "domain.PublicCohort": {
            "type": "object",
            "properties": {
                "apply_by": {"type": "string"},
                "apply_window": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "slug": {"type": "string"},
                "sprint_window": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "domain.QualifierSendResult": {
            "type": "object",
            "properties": {
                "alreadySent": {"type": "boolean"},
                "messageId": {"type": "string"},
                "ok": {"type": "boolean"},
                "sentAt": {"type": "string"}
            }
        },
        "domain.UniversityMatch": {
            "type": "object",
            "properties": {
                "alpha_two_code": {"type": "string"},
                "country": {"type": "string"},
                "domain": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "helpers.OKResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Identity provider session token, as \"Bearer <token>\".",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Optern Candidate Portal API",
	Description:      "Cohort listing, candidate registration and one-shot qualifier test email dispatch.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
