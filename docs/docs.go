// Package docs 接口文档，随控制器上的 swag 注释手工维护
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
        "/api/activities/{id}/reveal": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["练习"],
                "summary": "显示/隐藏答案",
                "parameters": [
                    {"type": "string", "description": "练习ID", "name": "id", "in": "path", "required": true},
                    {"description": "是否显示", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RevealActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.ActivityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/bootcamp/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "包含已生成课程的天数与进度",
                "produces": ["application/json"],
                "tags": ["训练营"],
                "summary": "训练营详情",
                "parameters": [
                    {"type": "string", "description": "训练营ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.BootcampDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "同时删除所有课程和练习",
                "produces": ["application/json"],
                "tags": ["训练营"],
                "summary": "删除训练营",
                "parameters": [
                    {"type": "string", "description": "训练营ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/bootcamp/{id}/complete-day": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "只能完成当前天，成功后 current_day 加一",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["训练营"],
                "summary": "完成某一天",
                "parameters": [
                    {"type": "string", "description": "训练营ID", "name": "id", "in": "path", "required": true},
                    {"description": "天数", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CompleteDayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.CompleteDayResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/bootcamps": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["训练营"],
                "summary": "我的训练营",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.BootcampListResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "未提供大纲时自动生成",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["训练营"],
                "summary": "创建训练营",
                "parameters": [
                    {"description": "训练营信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateBootcampRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controller.BootcampResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/generate-activities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "获取练习",
                "parameters": [
                    {"type": "string", "description": "课程ID", "name": "lessonId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.ActivitiesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "为课程生成4道练习，每节课只能生成一次",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "生成练习",
                "parameters": [
                    {"description": "课程ID", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.GenerateActivitiesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.ActivitiesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "409": {"description": "练习已存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/generate-lesson": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "获取课程",
                "parameters": [
                    {"type": "string", "description": "训练营ID", "name": "bootcampId", "in": "query", "required": true},
                    {"type": "integer", "description": "天数", "name": "dayNumber", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.LessonResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "为已解锁的某一天生成课程，每天只能生成一次",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "生成课程",
                "parameters": [
                    {"description": "课程信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.GenerateLessonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.LessonSummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "403": {"description": "当天未解锁", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "409": {"description": "课程已存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/generate-syllabus": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "根据学习目标和天数生成逐日大纲，不落库",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "生成大纲",
                "parameters": [
                    {"description": "目标与天数", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.GenerateSyllabusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.SyllabusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "检查数据库与 Redis 连接",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.ActivitiesResponse": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}},
                "count": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "controller.ActivityResponse": {
            "type": "object",
            "properties": {
                "activity": {"$ref": "#/definitions/model.Activity"},
                "success": {"type": "boolean"}
            }
        },
        "controller.BootcampDetailResponse": {
            "type": "object",
            "properties": {
                "bootcamp": {"$ref": "#/definitions/service.BootcampDetail"},
                "success": {"type": "boolean"}
            }
        },
        "controller.BootcampListResponse": {
            "type": "object",
            "properties": {
                "bootcamps": {"type": "array", "items": {"$ref": "#/definitions/model.Bootcamp"}},
                "count": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "controller.BootcampResponse": {
            "type": "object",
            "properties": {
                "bootcamp": {"$ref": "#/definitions/model.Bootcamp"},
                "success": {"type": "boolean"}
            }
        },
        "controller.CompleteDayResponse": {
            "type": "object",
            "properties": {
                "bootcamp": {"$ref": "#/definitions/service.CompleteDayResult"},
                "success": {"type": "boolean"}
            }
        },
        "controller.LessonResponse": {
            "type": "object",
            "properties": {
                "lesson": {"$ref": "#/definitions/service.LessonView"},
                "success": {"type": "boolean"}
            }
        },
        "controller.LessonSummaryResponse": {
            "type": "object",
            "properties": {
                "lesson": {"$ref": "#/definitions/service.LessonSummary"},
                "success": {"type": "boolean"}
            }
        },
        "controller.SyllabusResponse": {
            "type": "object",
            "properties": {
                "duration": {"type": "integer"},
                "goal": {"type": "string"},
                "success": {"type": "boolean"},
                "syllabus": {"$ref": "#/definitions/model.Syllabus"}
            }
        },
        "model.Activity": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "lessonId": {"type": "string"},
                "orderIndex": {"type": "integer"},
                "question": {"type": "string"},
                "revealed": {"type": "boolean"}
            }
        },
        "model.Bootcamp": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "currentDay": {"type": "integer"},
                "durationDays": {"type": "integer"},
                "goal": {"type": "string"},
                "id": {"type": "string"},
                "syllabus": {"$ref": "#/definitions/model.Syllabus"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "model.Syllabus": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"$ref": "#/definitions/model.SyllabusDay"}}
            }
        },
        "model.SyllabusDay": {
            "type": "object",
            "properties": {
                "day": {"type": "integer"},
                "description": {"type": "string"},
                "title": {"type": "string"},
                "topics": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.BootcampDetail": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "currentDay": {"type": "integer"},
                "durationDays": {"type": "integer"},
                "goal": {"type": "string"},
                "id": {"type": "string"},
                "lessonDays": {"type": "array", "items": {"type": "integer"}},
                "progress": {"$ref": "#/definitions/service.Progress"},
                "syllabus": {"$ref": "#/definitions/model.Syllabus"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "service.CompleteDayRequest": {
            "type": "object",
            "required": ["dayNumber"],
            "properties": {
                "dayNumber": {"type": "integer", "minimum": 1}
            }
        },
        "service.CompleteDayResult": {
            "type": "object",
            "properties": {
                "completedDay": {"type": "integer"},
                "currentDay": {"type": "integer"},
                "id": {"type": "string"}
            }
        },
        "service.CreateBootcampRequest": {
            "type": "object",
            "required": ["duration", "goal"],
            "properties": {
                "duration": {"type": "integer", "maximum": 90, "minimum": 7},
                "goal": {"type": "string", "maxLength": 200},
                "syllabus": {"$ref": "#/definitions/model.Syllabus"},
                "title": {"type": "string", "maxLength": 60}
            }
        },
        "service.GenerateActivitiesRequest": {
            "type": "object",
            "required": ["lessonId"],
            "properties": {
                "lessonId": {"type": "string"}
            }
        },
        "service.GenerateLessonRequest": {
            "type": "object",
            "required": ["bootcampId", "dayNumber", "dayTitle", "goal", "topics"],
            "properties": {
                "bootcampId": {"type": "string"},
                "dayNumber": {"type": "integer", "minimum": 1},
                "dayTitle": {"type": "string", "maxLength": 255},
                "goal": {"type": "string"},
                "topics": {"type": "array", "minItems": 1, "items": {"type": "string"}}
            }
        },
        "service.GenerateSyllabusRequest": {
            "type": "object",
            "required": ["duration", "goal"],
            "properties": {
                "duration": {"type": "integer", "maximum": 90, "minimum": 7},
                "goal": {"type": "string", "maxLength": 200}
            }
        },
        "service.LessonSummary": {
            "type": "object",
            "properties": {
                "contentLength": {"type": "integer"},
                "dayNumber": {"type": "integer"},
                "id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.LessonView": {
            "type": "object",
            "properties": {
                "bootcampId": {"type": "string"},
                "content": {"type": "string"},
                "createdAt": {"type": "string"},
                "dayNumber": {"type": "integer"},
                "id": {"type": "string"},
                "readingMinutes": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "service.Progress": {
            "type": "object",
            "properties": {
                "completedDays": {"type": "integer"},
                "percentage": {"type": "integer"},
                "status": {"type": "string"},
                "totalDays": {"type": "integer"}
            }
        },
        "service.RevealActivityRequest": {
            "type": "object",
            "required": ["revealed"],
            "properties": {
                "revealed": {"type": "boolean"}
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mimir 后端 API",
	Description:      "AI 训练营生成服务：大纲、每日课程与练习，按天解锁。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
