// Package docs registers the OpenAPI document served under /swagger. It
// mirrors the handler annotations; regenerate with
// swag init -g cmd/server/main.go -o docs
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service banner",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.rootResponse"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/teams": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List teams",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.teamsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/matches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List matches with resolved teams",
                "parameters": [
                    {"type": "string", "description": "live|upcoming|finished", "name": "status", "in": "query"},
                    {"type": "string", "description": "exact tournament name", "name": "tournament", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.matchesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/matches/refresh": {
            "post": {
                "description": "Also served at /api/refresh-matches and /api/matches/{id}/refresh; the id is ignored.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Append synthesized upcoming matches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.refreshResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/matches/stream": {
            "get": {
                "description": "Websocket. Sends a snapshot of all matches, then matches_refreshed and match_status_changed events.",
                "tags": ["stream"],
                "summary": "Catalog event stream",
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/matches/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a match with resolved teams",
                "parameters": [{"type": "string", "description": "match id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MatchWithTeams"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/matches/{id}/analyze": {
            "post": {
                "description": "Every call produces a fresh analysis; nothing is stored.",
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Generate a match analysis",
                "parameters": [{"type": "string", "description": "match id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Analysis"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"backend": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {"backend": {"type": "string"}, "status": {"type": "string"}, "timestamp": {"type": "string"}}
        },
        "handler.rootResponse": {
            "type": "object",
            "properties": {"backend": {"type": "string"}, "message": {"type": "string"}, "version": {"type": "string"}}
        },
        "handler.teamsResponse": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "message": {"type": "string"},
                "teams": {"type": "array", "items": {"$ref": "#/definitions/models.Team"}},
                "total": {"type": "integer"}
            }
        },
        "handler.matchesResponse": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "last_updated": {"type": "string"},
                "live_count": {"type": "integer"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.MatchWithTeams"}},
                "message": {"type": "string"},
                "total": {"type": "integer"},
                "upcoming_count": {"type": "integer"}
            }
        },
        "handler.refreshResponse": {
            "type": "object",
            "properties": {
                "archived_count": {"type": "integer"},
                "backend": {"type": "string"},
                "last_updated": {"type": "string"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.Match"}},
                "message": {"type": "string"},
                "new_matches": {"type": "integer"},
                "total_matches": {"type": "integer"},
                "tournaments_added": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "short_name": {"type": "string"}
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "bookmaker_name": {"type": "string"},
                "current_map": {"type": "string"},
                "format": {"type": "string"},
                "id": {"type": "string"},
                "maps_score": {"type": "string"},
                "odds_team1": {"type": "string"},
                "odds_team2": {"type": "string"},
                "rounds_score": {"type": "string"},
                "start_time": {"type": "string"},
                "status": {"type": "string"},
                "team1_id": {"type": "string"},
                "team2_id": {"type": "string"},
                "tournament": {"type": "string"}
            }
        },
        "models.MatchWithTeams": {
            "type": "object",
            "properties": {
                "bookmaker_name": {"type": "string"},
                "current_map": {"type": "string"},
                "format": {"type": "string"},
                "id": {"type": "string"},
                "maps_score": {"type": "string"},
                "odds_team1": {"type": "string"},
                "odds_team2": {"type": "string"},
                "rounds_score": {"type": "string"},
                "start_time": {"type": "string"},
                "status": {"type": "string"},
                "team1": {"$ref": "#/definitions/models.Team"},
                "team1_id": {"type": "string"},
                "team2": {"$ref": "#/definitions/models.Team"},
                "team2_id": {"type": "string"},
                "tournament": {"type": "string"}
            }
        },
        "models.BettingRecommendation": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "odds": {"type": "number"},
                "recommendation": {"type": "string"},
                "stake": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.Analysis": {
            "type": "object",
            "properties": {
                "analysis_time": {"type": "string"},
                "backend": {"type": "string"},
                "betting_recommendations": {"type": "array", "items": {"$ref": "#/definitions/models.BettingRecommendation"}},
                "confidence": {"type": "number"},
                "match_id": {"type": "string"},
                "predicted_winner": {"type": "string"},
                "reasoning": {"type": "string"},
                "risk_factors": {"type": "array", "items": {"type": "string"}},
                "win_probability": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "localhost:5002",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "CS2 Match Catalog API",
	Description:      "CS2 teams and matches catalog with generated match analyses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
