// Package docs holds the OpenAPI document served at /api/docs
// Regenerate with swag init -g cmd/piptrade-api/main.go --v3.1 -o internal/services/api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/alldata": {
            "get": {
                "tags": ["Records"],
                "summary": "Fetch every record",
                "operationId": "listRecords",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ListResponse"}}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.FailureResponse"}}}
                    }
                }
            },
            "post": {
                "tags": ["Records"],
                "summary": "Bulk insert records",
                "operationId": "saveRecords",
                "requestBody": {
                    "description": "Records",
                    "required": true,
                    "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/record.Record"}}}}
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SavedResponse"}}}
                    },
                    "400": {
                        "description": "Not used, every failure is a 500"
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.FailureResponse"}}}
                    }
                }
            }
        },
        "/api/v1/dashboard/chart": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Chart geometry for the filtered records",
                "operationId": "dashboardChart",
                "parameters": [
                    {"name": "endYear", "in": "query", "schema": {"type": "string"}},
                    {"name": "topic", "in": "query", "schema": {"type": "string"}},
                    {"name": "sector", "in": "query", "schema": {"type": "string"}},
                    {"name": "region", "in": "query", "schema": {"type": "string"}},
                    {"name": "pest", "in": "query", "schema": {"type": "string"}},
                    {"name": "source", "in": "query", "schema": {"type": "string"}},
                    {"name": "swot", "in": "query", "schema": {"type": "string"}},
                    {"name": "country", "in": "query", "schema": {"type": "string"}},
                    {"name": "city", "in": "query", "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ChartResult"}}}
                    }
                }
            },
            "post": {
                "tags": ["Dashboard"],
                "summary": "Chart geometry for criteria sent as JSON",
                "operationId": "dashboardChartBody",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/filter.Criteria"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ChartResult"}}}
                    },
                    "400": {
                        "description": "bad criteria",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/net.Wire"}}}
                    }
                }
            }
        },
        "/api/v1/dashboard/chart.svg": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "The filtered chart as SVG",
                "operationId": "dashboardChartSVG",
                "responses": {
                    "200": {
                        "description": "svg document",
                        "content": {"image/svg+xml": {"schema": {"type": "string"}}}
                    }
                }
            }
        },
        "/api/v1/dashboard/options": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Distinct values per filter key",
                "operationId": "dashboardOptions",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.OptionsResult"}}}
                    }
                }
            }
        },
        "/api/v1/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "operationId": "metaHealth",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/api/v1/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "operationId": "metaReady",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/api/v1/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/api/v1/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "operationId": "metaService",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ServiceResponse"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "record.Record": {
                "type": "object",
                "additionalProperties": true,
                "properties": {
                    "_id": {"type": "string", "format": "uuid"},
                    "topic": {"type": "string", "example": "gas"},
                    "sector": {"type": "string", "example": "Energy"},
                    "region": {"type": "string", "example": "Northern America"},
                    "pestle": {"type": "string", "example": "Industries"},
                    "source": {"type": "string", "example": "EIA"},
                    "impact": {"type": ["string", "null"]},
                    "country": {"type": ["string", "null"], "example": "United States of America"},
                    "city": {"type": ["string", "null"]},
                    "end_year": {"oneOf": [{"type": "integer"}, {"type": "string"}], "example": 2027},
                    "intensity": {"oneOf": [{"type": "number", "minimum": 0}, {"type": "string"}], "example": 6}
                }
            },
            "domain.SavedResponse": {
                "type": "object",
                "properties": {
                    "message": {"type": "string", "example": "Data saved successfully"},
                    "data": {"type": "array", "items": {"$ref": "#/components/schemas/record.Record"}}
                }
            },
            "domain.ListResponse": {
                "type": "object",
                "properties": {
                    "data": {"type": "array", "items": {"$ref": "#/components/schemas/record.Record"}}
                }
            },
            "domain.FailureResponse": {
                "type": "object",
                "properties": {
                    "error": {"type": "string", "example": "An error occurred while retrieving data"},
                    "specificError": {"type": "string"}
                }
            },
            "domain.ChartResult": {
                "type": "object",
                "properties": {
                    "criteria": {"type": "object", "additionalProperties": {"type": "string"}},
                    "active": {"type": "array", "items": {"type": "string"}},
                    "total": {"type": "integer", "example": 1000},
                    "visible": {"type": "integer", "example": 42},
                    "geometry": {"type": "object"}
                }
            },
            "filter.Criteria": {
                "type": "object",
                "properties": {
                    "endYear": {"type": "string", "example": "2027"},
                    "topic": {"type": "string", "example": "gas"},
                    "sector": {"type": "string"},
                    "region": {"type": "string"},
                    "pest": {"type": "string"},
                    "source": {"type": "string"},
                    "swot": {"type": "string"},
                    "country": {"type": "string"},
                    "city": {"type": "string"}
                }
            },
            "net.Wire": {
                "type": "object",
                "properties": {
                    "status_code": {"type": "integer", "example": 400},
                    "status": {"type": "string", "example": "Bad Request"},
                    "code": {"type": "integer", "example": 6},
                    "error": {"type": "string"},
                    "field": {"type": "string"},
                    "request_id": {"type": "string"},
                    "data": {}
                }
            },
            "http.ServiceResponse": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "piptrade-api"},
                    "backend": {"type": "string", "example": "pg"},
                    "modules": {"type": "array", "items": {"type": "string"}, "example": ["dashboard", "meta", "records"]},
                    "started": {"type": "string", "format": "date-time"},
                    "uptime": {"type": "integer", "example": 300}
                }
            },
            "domain.OptionsResult": {
                "type": "object",
                "properties": {
                    "keys": {"type": "array", "items": {"type": "string"}},
                    "options": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {"value": {"type": "string"}, "label": {"type": "string"}}
                            }
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "Piptrade API",
	Description:      "Record store, filter engine and chart renderer for the piptrade dashboard",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
