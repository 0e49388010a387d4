package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CPDS API",
        "description": "Coconut plant distribution record keeping service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication for the three fixed accounts"},
        {"name": "Announcements", "description": "Distribution announcement ledger"},
        {"name": "Settings", "description": "Taxonomy lists and journal prices"},
        {"name": "Reports", "description": "Cross-tab aggregates and exports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Describe the authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements visible to the caller",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "scope", "in": "query", "type": "string", "enum": ["main", "external"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Record a new announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/external": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Record an announcement for an external nursery",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/{id}": {
            "put": {
                "tags": ["Announcements"],
                "summary": "Replace an announcement wholesale",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Announcement"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/announcements/lookup": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Find the announcement a receipt update would touch",
                "parameters": [
                    {"name": "announcementNo", "in": "query", "required": true, "type": "string"},
                    {"name": "isOtherNursery", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/announcements/manage": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Find an announcement by number alone",
                "parameters": [
                    {"name": "announcementNo", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/announcements/receipts": {
            "put": {
                "tags": ["Announcements"],
                "summary": "Overwrite the reconciled receipt count",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateReceiptsRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/announcements/issued": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Add issued plants to an announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddIssuedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Fetch the full settings document",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Replace the settings document wholesale",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SettingsData"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/lists/{list}/items": {
            "post": {
                "tags": ["Settings"],
                "summary": "Append a value to a named taxonomy list",
                "parameters": [
                    {"name": "list", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddListItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/lists/{list}/items/{index}": {
            "delete": {
                "tags": ["Settings"],
                "summary": "Remove the value at a position of a named taxonomy list",
                "parameters": [
                    {"name": "list", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/prices": {
            "post": {
                "tags": ["Settings"],
                "summary": "Append a journal price entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddJournalPriceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/prices/{id}": {
            "delete": {
                "tags": ["Settings"],
                "summary": "Remove a journal price entry by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/distribution": {
            "get": {
                "tags": ["Reports"],
                "summary": "Division by program distribution summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/nurseries": {
            "get": {
                "tags": ["Reports"],
                "summary": "Nursery by program distribution summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/distribution/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the distribution report as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/reports/nurseries/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the nursery report as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Announcement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "announcementNo": {"type": "string"},
                "receiptNo": {"type": "string"},
                "plantType": {"type": "string", "enum": ["BIM", "BADUN"]},
                "journalPrice": {"type": "string"},
                "quantity": {"type": "integer"},
                "program": {"type": "string"},
                "cdoDivision": {"type": "string"},
                "gnDivision": {"type": "string"},
                "nursery": {"type": "string"},
                "receivedReceipts": {"type": "integer"},
                "issuedCount": {"type": "integer"},
                "isOtherNursery": {"type": "boolean"}
            }
        },
        "CreateAnnouncementRequest": {
            "type": "object",
            "required": ["announcementNo", "receiptNo", "quantity"],
            "properties": {
                "date": {"type": "string"},
                "announcementNo": {"type": "string"},
                "receiptNo": {"type": "string"},
                "plantType": {"type": "string"},
                "journalPrice": {"type": "string"},
                "quantity": {"type": "integer"},
                "program": {"type": "string"},
                "cdoDivision": {"type": "string"},
                "gnDivision": {"type": "string"},
                "nursery": {"type": "string"},
                "issuedCount": {"type": "integer"},
                "isOtherNursery": {"type": "boolean"}
            }
        },
        "UpdateReceiptsRequest": {
            "type": "object",
            "required": ["announcementNo"],
            "properties": {
                "announcementNo": {"type": "string"},
                "isOtherNursery": {"type": "boolean"},
                "count": {"type": "integer"}
            }
        },
        "AddIssuedRequest": {
            "type": "object",
            "required": ["announcementNo"],
            "properties": {
                "announcementNo": {"type": "string"},
                "additionalCount": {"type": "integer"}
            }
        },
        "SettingsData": {
            "type": "object",
            "properties": {
                "cdoDivisions": {"type": "array", "items": {"type": "string"}},
                "gnDivisions": {"type": "array", "items": {"type": "string"}},
                "programs": {"type": "array", "items": {"type": "string"}},
                "otherNurseries": {"type": "array", "items": {"type": "string"}},
                "journalPrices": {"type": "array", "items": {"$ref": "#/definitions/JournalPrice"}}
            }
        },
        "JournalPrice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "price": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "AddListItemRequest": {
            "type": "object",
            "required": ["value"],
            "properties": {
                "value": {"type": "string"}
            }
        },
        "AddJournalPriceRequest": {
            "type": "object",
            "required": ["price"],
            "properties": {
                "price": {"type": "string"},
                "description": {"type": "string"}
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
