package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ScheduleWise API",
        "description": "Weekly university timetable optimizer",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedules", "description": "Schedule generation and export"},
        {"name": "Subjects", "description": "Catalog of offered subjects"}
    ],
    "paths": {
        "/schedules/generate": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Generate the best conflict-free weekly schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No feasible schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/export": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Generate a schedule and download it as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "Rendered document"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No feasible schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/health": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Schedule service health",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List catalog subjects",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TimeSlot": {
            "type": "object",
            "properties": {
                "day": {"type": "string", "enum": ["MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"]},
                "startTime": {"type": "string", "example": "08:00"},
                "endTime": {"type": "string", "example": "10:00"}
            },
            "required": ["day", "startTime", "endTime"]
        },
        "Subject": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer"},
                "type": {"type": "string", "enum": ["LECTURE", "LAB", "SEMINAR", "WORKSHOP"]},
                "professor": {"type": "string"},
                "availableSlots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TimeSlot"}
                },
                "prerequisites": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["code", "name", "credits", "type", "professor", "availableSlots"]
        },
        "StudentConstraints": {
            "type": "object",
            "properties": {
                "blockedSlots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TimeSlot"}
                },
                "minBreakMinutes": {"type": "integer"},
                "maxDailyHours": {"type": "integer"},
                "preferredDays": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "avoidEarlyClasses": {"type": "boolean"},
                "avoidLateClasses": {"type": "boolean"}
            }
        },
        "GenerateScheduleRequest": {
            "type": "object",
            "properties": {
                "availableSubjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Subject"}
                },
                "studentConstraints": {"$ref": "#/definitions/StudentConstraints"},
                "requiredSubjectCodes": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["requiredSubjectCodes"]
        },
        "ScheduleSlot": {
            "type": "object",
            "properties": {
                "subject": {"$ref": "#/definitions/Subject"},
                "timeSlot": {"$ref": "#/definitions/TimeSlot"}
            }
        },
        "GenerateScheduleResponse": {
            "type": "object",
            "properties": {
                "scheduleId": {"type": "string"},
                "slots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ScheduleSlot"}
                },
                "totalCredits": {"type": "integer"},
                "optimizationScore": {"type": "number"},
                "generatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
