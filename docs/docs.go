// Package docs : OpenAPI-описание REST API, отдаётся по /swagger/*.
// При изменении аннотаций в handler обновляется вручную
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
        "/api/file/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Список файлов пользователя",
                "parameters": [
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Файлы пользователя", "schema": {"type": "array", "items": {"$ref": "#/definitions/requestresponse.FileResponse"}}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/file/delete/{key}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Удалить файл",
                "parameters": [
                    {"type": "string", "description": "Ключ файла", "name": "key", "in": "path", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Файл удалён", "schema": {"$ref": "#/definitions/requestresponse.MessageResponse"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "404": {"description": "Файл не найден", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/file/download/{key}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["Files"],
                "summary": "Скачать файл",
                "parameters": [
                    {"type": "string", "description": "Ключ файла", "name": "key", "in": "path", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Содержимое файла", "schema": {"type": "file"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "404": {"description": "Файл не найден", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/file/folder/{folderId}/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Список файлов в папке",
                "parameters": [
                    {"type": "string", "description": "ID папки", "name": "folderId", "in": "path", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Файлы папки", "schema": {"type": "array", "items": {"$ref": "#/definitions/requestresponse.FileResponse"}}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/file/save": {
            "post": {
                "description": "Загружает файл без папки. Без токена файл сохраняется анонимно и не попадает ни в один список.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Загрузка файла в корень",
                "parameters": [
                    {"type": "file", "description": "Файл", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "201": {"description": "Файл загружен", "schema": {"$ref": "#/definitions/requestresponse.UploadFileResponse"}},
                    "400": {"description": "Файл не найден в запросе или слишком большой", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Невалидный токен", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/file/{folderId}/save": {
            "post": {
                "description": "Загружает файл в папку текущего пользователя",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Загрузка файла в папку",
                "parameters": [
                    {"type": "string", "description": "ID папки", "name": "folderId", "in": "path", "required": true},
                    {"type": "file", "description": "Файл", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "201": {"description": "Файл загружен", "schema": {"$ref": "#/definitions/requestresponse.UploadFileResponse"}},
                    "400": {"description": "Файл не найден в запросе или слишком большой", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "404": {"description": "Папка не найдена", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/folder/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Список папок пользователя",
                "parameters": [
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/requestresponse.FolderResponse"}}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/folder/create": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Создать папку",
                "parameters": [
                    {"type": "string", "description": "Имя папки", "name": "name", "in": "query", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "201": {"description": "Папка создана", "schema": {"$ref": "#/definitions/requestresponse.CreateFolderResponse"}},
                    "400": {"description": "Пустое имя", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/folder/delete/{folderId}": {
            "delete": {
                "description": "Сначала удаляются все файлы папки, затем сама папка. При ошибке удаления любого файла папка остаётся.",
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Удалить папку вместе с файлами",
                "parameters": [
                    {"type": "string", "description": "ID папки", "name": "folderId", "in": "path", "required": true},
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Папка удалена", "schema": {"$ref": "#/definitions/requestresponse.MessageResponse"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "404": {"description": "Папка не найдена", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/healthcheck": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.MessageResponse"}}
                }
            }
        },
        "/user/register": {
            "post": {
                "description": "Создает пользователя. Имя пользователя и email приводятся к нижнему регистру.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Регистрация нового пользователя",
                "parameters": [
                    {"description": "Тело запроса", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/requestresponse.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/requestresponse.RegisterResponse"}},
                    "400": {"description": "Некорректный JSON или поля", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "409": {"description": "Пользователь уже существует", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/user/token": {
            "post": {
                "description": "Получение access токена по имени пользователя и паролю (OAuth2 password form)",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Аутентификация пользователя",
                "parameters": [
                    {"type": "string", "description": "Имя пользователя", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Пароль", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Успешная аутентификация", "schema": {"$ref": "#/definitions/requestresponse.TokenResponse"}},
                    "400": {"description": "Пустые поля или неактивный пользователь", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Неверное имя пользователя или пароль", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/user/users/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Профиль текущего пользователя",
                "parameters": [
                    {"type": "string", "default": "Bearer <access_token>", "description": "Bearer токен", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.UserResponse"}},
                    "400": {"description": "Неактивный пользователь", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Пользователь не авторизован", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "requestresponse.CreateFolderResponse": {
            "type": "object",
            "properties": {
                "folderId": {"type": "string", "example": "7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"},
                "message": {"type": "string", "example": "folder reports created"}
            }
        },
        "requestresponse.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 404},
                "error": {"type": "string", "example": "Not Found"},
                "message": {"type": "string", "example": "файл не найден"}
            }
        },
        "requestresponse.FileResponse": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string", "example": "files"},
                "content_type": {"type": "string", "example": "application/pdf"},
                "created_at": {"type": "string", "example": "2025-08-23T12:34:56Z"},
                "folder_id": {"type": "string", "example": "7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"},
                "id": {"type": "string", "example": "b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"},
                "key": {"type": "string", "example": "0c3f6d3e-5b1a-4c2e-9d7f-8a9b0c1d2e3f_report.pdf"},
                "name": {"type": "string", "example": "report.pdf"},
                "owner": {"type": "string", "example": "alice"},
                "size_bytes": {"type": "integer", "example": 10240}
            }
        },
        "requestresponse.FolderResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string", "example": "2025-08-23T12:34:56Z"},
                "folder_id": {"type": "string", "example": "7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"},
                "id": {"type": "string", "example": "b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"},
                "name": {"type": "string", "example": "reports"},
                "owner": {"type": "string", "example": "alice"}
            }
        },
        "requestresponse.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "OK"}
            }
        },
        "requestresponse.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "full_name": {"type": "string", "maxLength": 128, "example": "Alice Liddell"},
                "password": {"type": "string", "maxLength": 72, "minLength": 8, "example": "P@ssw0rd123"},
                "username": {"type": "string", "maxLength": 64, "minLength": 3, "example": "alice"}
            }
        },
        "requestresponse.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "user alice registered"},
                "status": {"type": "string", "example": "success"}
            }
        },
        "requestresponse.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."},
                "token_type": {"type": "string", "example": "Bearer"}
            }
        },
        "requestresponse.UploadFileResponse": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "0c3f6d3e-5b1a-4c2e-9d7f-8a9b0c1d2e3f_report.pdf"},
                "message": {"type": "string", "example": "file report.pdf uploaded"}
            }
        },
        "requestresponse.UserResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string", "example": "2025-08-23T12:34:56Z"},
                "disabled": {"type": "boolean", "example": false},
                "email": {"type": "string", "example": "alice@example.com"},
                "full_name": {"type": "string", "example": "Alice Liddell"},
                "username": {"type": "string", "example": "alice"},
                "verified": {"type": "boolean", "example": false}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
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
	BasePath:         "",
	Schemes:          []string{},
	Title:            "File-storage-server",
	Description:      "REST API для хранения файлов и папок",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
