// Package docs contiene la especificación OpenAPI de la API, registrada en swag.
// Se regenera con `swag init -g cmd/api/main.go`.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/api/superadmin/organisations": {
            "get": {"tags": ["organisations"], "summary": "Lista las organisations", "responses": {"200": {"$ref": "#/responses/Envelope"}}},
            "post": {"tags": ["organisations"], "summary": "Crea una organisation", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"201": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/superadmin/organisations/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["organisations"], "summary": "Obtiene una organisation", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}},
            "put": {"tags": ["organisations"], "summary": "Actualiza una organisation", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"tags": ["organisations"], "summary": "Elimina una organisation", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/setup": {
            "post": {"tags": ["company"], "summary": "Crea o actualiza la empresa activa del usuario", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "201": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/profile/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["company"], "summary": "Perfil completo de la empresa", "responses": {"200": {"$ref": "#/responses/Envelope"}, "403": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/organisation/{organisationId}": {
            "parameters": [{"$ref": "#/parameters/OrganisationID"}],
            "get": {"tags": ["company"], "summary": "Empresa activa del usuario en la organisation", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/my-company/{organisationId}": {
            "parameters": [{"$ref": "#/parameters/OrganisationID"}],
            "get": {"tags": ["company"], "summary": "Empresa activa del usuario en la organisation", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/config/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "put": {"tags": ["company"], "summary": "Actualiza secciones de la empresa", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "403": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/company/benefits/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["company"], "summary": "Beneficios con valor anual", "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/company/compliance/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["company"], "summary": "Estado de cumplimiento", "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/company/user/companies": {
            "get": {"tags": ["company"], "summary": "Empresas activas del usuario", "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/company/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "delete": {"tags": ["company"], "summary": "Baja lógica de la empresa", "responses": {"200": {"$ref": "#/responses/Envelope"}, "403": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/templates": {
            "get": {"tags": ["templates"], "summary": "Plantillas activas", "parameters": [{"name": "department", "in": "query", "type": "string"}], "responses": {"200": {"$ref": "#/responses/Envelope"}}},
            "post": {"tags": ["templates"], "summary": "Crea una plantilla", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"201": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/templates/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["templates"], "summary": "Obtiene una plantilla", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}},
            "put": {"tags": ["templates"], "summary": "Actualiza una plantilla", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "403": {"$ref": "#/responses/Error"}}},
            "delete": {"tags": ["templates"], "summary": "Baja lógica de la plantilla", "responses": {"200": {"$ref": "#/responses/Envelope"}, "403": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/templates/{id}/duplicate": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "post": {"tags": ["templates"], "summary": "Duplica una plantilla", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"201": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/templates/{id}/preview": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "post": {"tags": ["templates"], "summary": "Previsualiza con datos de ejemplo", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/offers": {
            "get": {"tags": ["offers"], "summary": "Lista ofertas", "parameters": [{"name": "status", "in": "query", "type": "string"}], "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/offers/generate": {
            "post": {"tags": ["offers"], "summary": "Genera una oferta", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"201": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/offers/bulk-generate": {
            "post": {"tags": ["offers"], "summary": "Genera hasta 100 ofertas", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"201": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/offers/analytics": {
            "get": {"tags": ["offers"], "summary": "Conteo de ofertas por estado", "parameters": [{"name": "startDate", "in": "query", "type": "string"}, {"name": "endDate", "in": "query", "type": "string"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/offers/{id}": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "get": {"tags": ["offers"], "summary": "Obtiene una oferta", "responses": {"200": {"$ref": "#/responses/Envelope"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/offers/{id}/status": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "patch": {"tags": ["offers"], "summary": "Cambia el estado", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/user/offers/{id}/send": {
            "parameters": [{"$ref": "#/parameters/ID"}],
            "post": {"tags": ["offers"], "summary": "Registra el envío por email", "parameters": [{"$ref": "#/parameters/Body"}], "responses": {"200": {"$ref": "#/responses/Envelope"}}}
        },
        "/api/user/offers/{id}/download": {
            "parameters": [{"$ref": "#/parameters/ID"}, {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "word"], "default": "pdf"}],
            "get": {"tags": ["offers"], "summary": "Descarga la oferta", "produces": ["application/pdf", "application/json"], "responses": {"200": {"description": "PDF o documento JSON"}, "400": {"$ref": "#/responses/Error"}}}
        }
    },
    "parameters": {
        "ID": {"name": "id", "in": "path", "required": true, "type": "string"},
        "OrganisationID": {"name": "organisationId", "in": "path", "required": true, "type": "string"},
        "Body": {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
    },
    "responses": {
        "Envelope": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "statusCode": {"type": "integer"},
                "code": {"type": "string"}
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
	Title:            "OfferDesk API",
	Description:      "Organisations, perfiles de empresa, plantillas y cartas de oferta.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
