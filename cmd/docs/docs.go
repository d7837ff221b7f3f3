// Package docs serves the OpenAPI description of the HTTP API. The template mirrors the
// swag annotations on internal/handlers; regenerate it with
// swag init -g cmd/jewel_backend/main.go -o cmd/docs after changing a route or DTO.
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
        "/health": {
            "get": {
                "description": "get the status of server.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/orders": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates an order in draft status with nothing paid",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Open a customer order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Order details",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Order number already used",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create order",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/orders/{orderID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Get an order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderResponse"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to get order",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/orders/{orderID}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Change an order's status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "orderID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateOrderStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Transition not allowed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update order status",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/parties": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "parties"
                ],
                "summary": "Register a customer or supplier",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Party details",
                        "name": "party",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePartyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PartyResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Party already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create party",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/parties/{partyType}/{partyID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Positive balances are owed to the shop, negative balances are owed by it",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "parties"
                ],
                "summary": "Get a party balance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "customer or supplier",
                        "name": "partyType",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Party ID",
                        "name": "partyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PartyResponse"
                        }
                    },
                    "404": {
                        "description": "Party not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to get party",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records a receipt or payout and applies its effects on the referenced document and the party balance",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Record a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment details",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Amount does not fit the referenced document",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists a shop's payments, newest first, with optional filters and token pagination",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "List payments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Payment mode",
                        "name": "paymentMode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Party ID",
                        "name": "partyId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reference document ID",
                        "name": "referenceId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (max 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListPaymentsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list payments",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/reconcile/bulk": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reconciles every eligible item and reports the ones it skipped",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconcile many payments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Statement matches",
                        "name": "items",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BulkReconcileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BulkReconcileResult"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to reconcile payments",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to get payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Soft-deletes a payment by cancelling it",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Delete a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment cannot be deleted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/approve": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "approvals"
                ],
                "summary": "Approve a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment does not need approval",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to approve payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/cancel": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Cancels a payment and reverses whatever effects it applied",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Cancel a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cancellation reason",
                        "name": "cancel",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CancelPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment cannot be cancelled",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to cancel payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/cheque/bounce": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails a pending cheque payment and reverses its reference effect",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cheques"
                ],
                "summary": "Bounce a cheque",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Bounce reason",
                        "name": "bounce",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BounceChequeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Cheque is not pending",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to bounce cheque",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/cheque/clear": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Completes a pending cheque payment and applies its balance effect",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cheques"
                ],
                "summary": "Clear a cheque",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Clearance date",
                        "name": "clearance",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.ClearChequeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Cheque is not pending",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to clear cheque",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/reconcile": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconcile a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Statement match",
                        "name": "reconcile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReconcilePaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment is not completed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to reconcile payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Clear a payment's reconciliation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to unreconcile payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/refund": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records a refund payment against a completed payment, fully or partially",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "refunds"
                ],
                "summary": "Refund a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Refund details",
                        "name": "refund",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefundPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.RefundResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid refund amount",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment cannot be refunded",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to refund payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/reject": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "approvals"
                ],
                "summary": "Reject a payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Rejection reason",
                        "name": "reject",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RejectPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Payment does not need approval",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to reject payment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/payments/{paymentID}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Moves a payment along its status machine. Cheque payments are routed through clearance or bounce.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Change a payment's status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "paymentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdatePaymentStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Transition not allowed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update payment status",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/references": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "references"
                ],
                "summary": "Register a sale or purchase",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Document details",
                        "name": "reference",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateReferenceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ReferenceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request format",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Document already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create reference",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shops/{shopID}/references/{referenceType}/{documentID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "references"
                ],
                "summary": "Get a reference document's settlement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shop ID",
                        "name": "shopID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "order, sale or purchase",
                        "name": "referenceType",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReferenceResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to get reference",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Approval": {
            "type": "object",
            "properties": {
                "approvalStatus": {
                    "$ref": "#/definitions/domain.ApprovalStatus"
                },
                "approvedAt": {
                    "type": "string"
                },
                "approvedBy": {
                    "type": "string"
                },
                "rejectionReason": {
                    "type": "string"
                }
            }
        },
        "domain.ApprovalStatus": {
            "type": "string",
            "enum": [
                "pending",
                "approved",
                "rejected"
            ],
            "x-enum-varnames": [
                "ApprovalPending",
                "ApprovalApproved",
                "ApprovalRejected"
            ]
        },
        "domain.Cancellation": {
            "type": "object",
            "properties": {
                "cancelledAt": {
                    "type": "string"
                },
                "cancelledBy": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "domain.ChequeDetails": {
            "type": "object",
            "properties": {
                "bounceReason": {
                    "type": "string"
                },
                "chequeDate": {
                    "type": "string"
                },
                "chequeNumber": {
                    "type": "string"
                },
                "chequeStatus": {
                    "$ref": "#/definitions/domain.ChequeStatus"
                },
                "clearanceDate": {
                    "type": "string"
                }
            }
        },
        "domain.ChequeStatus": {
            "type": "string",
            "enum": [
                "pending",
                "cleared",
                "bounced"
            ],
            "x-enum-varnames": [
                "ChequePending",
                "ChequeCleared",
                "ChequeBounced"
            ]
        },
        "domain.EffectKind": {
            "type": "string",
            "enum": [
                "reference",
                "balance"
            ],
            "x-enum-varnames": [
                "EffectReference",
                "EffectBalance"
            ]
        },
        "domain.EffectOutcome": {
            "type": "object",
            "properties": {
                "applied": {
                    "type": "boolean"
                },
                "delta": {
                    "type": "string"
                },
                "kind": {
                    "$ref": "#/definitions/domain.EffectKind"
                },
                "reason": {
                    "type": "string"
                },
                "skipped": {
                    "type": "boolean"
                },
                "target": {
                    "type": "string",
                    "description": "e.g. \"order:<id>\", \"customer:<id>\""
                }
            }
        },
        "domain.OrderStatus": {
            "type": "string",
            "enum": [
                "draft",
                "confirmed",
                "in_progress",
                "on_hold",
                "quality_check",
                "ready",
                "delivered",
                "completed",
                "cancelled"
            ],
            "x-enum-varnames": [
                "OrderDraft",
                "OrderConfirmed",
                "OrderInProgress",
                "OrderOnHold",
                "OrderQualityCheck",
                "OrderReady",
                "OrderDelivered",
                "OrderCompleted",
                "OrderCancelled"
            ]
        },
        "domain.Party": {
            "type": "object",
            "properties": {
                "partyId": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                },
                "partyType": {
                    "$ref": "#/definitions/domain.PartyType"
                }
            }
        },
        "domain.PartyType": {
            "type": "string",
            "enum": [
                "customer",
                "supplier",
                "other"
            ],
            "x-enum-varnames": [
                "PartyCustomer",
                "PartySupplier",
                "PartyOther"
            ]
        },
        "domain.PaymentDetails": {
            "type": "object",
            "properties": {
                "bankName": {
                    "type": "string"
                },
                "cardLast4": {
                    "type": "string"
                },
                "cheque": {
                    "$ref": "#/definitions/domain.ChequeDetails"
                },
                "transactionId": {
                    "type": "string",
                    "description": "UPI / card / bank reference"
                },
                "upiId": {
                    "type": "string"
                },
                "walletName": {
                    "type": "string"
                }
            }
        },
        "domain.PaymentMode": {
            "type": "string",
            "enum": [
                "cash",
                "card",
                "upi",
                "cheque",
                "bank_transfer",
                "wallet",
                "other"
            ],
            "x-enum-varnames": [
                "ModeCash",
                "ModeCard",
                "ModeUPI",
                "ModeCheque",
                "ModeBankTransfer",
                "ModeWallet",
                "ModeOther"
            ]
        },
        "domain.PaymentStatus": {
            "type": "string",
            "enum": [
                "pending",
                "completed",
                "failed",
                "cancelled",
                "refunded"
            ],
            "x-enum-varnames": [
                "PaymentPending",
                "PaymentCompleted",
                "PaymentFailed",
                "PaymentCancelled",
                "PaymentRefunded"
            ]
        },
        "domain.PaymentSummary": {
            "type": "object",
            "properties": {
                "dueAmount": {
                    "type": "string"
                },
                "paidAmount": {
                    "type": "string"
                },
                "paymentStatus": {
                    "$ref": "#/definitions/domain.SettlementStatus"
                },
                "totalAmount": {
                    "type": "string"
                }
            }
        },
        "domain.Reconciliation": {
            "type": "object",
            "properties": {
                "discrepancy": {
                    "type": "string"
                },
                "isReconciled": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                },
                "reconciledAt": {
                    "type": "string"
                },
                "reconciledBy": {
                    "type": "string"
                },
                "reconciledWith": {
                    "type": "string"
                }
            }
        },
        "domain.Reference": {
            "type": "object",
            "properties": {
                "referenceId": {
                    "type": "string"
                },
                "referenceNumber": {
                    "type": "string"
                },
                "referenceType": {
                    "$ref": "#/definitions/domain.ReferenceType"
                }
            }
        },
        "domain.ReferenceType": {
            "type": "string",
            "enum": [
                "sale",
                "purchase",
                "order",
                "none"
            ],
            "x-enum-varnames": [
                "ReferenceSale",
                "ReferencePurchase",
                "ReferenceOrder",
                "ReferenceNone"
            ]
        },
        "domain.RefundInfo": {
            "type": "object",
            "properties": {
                "isRefund": {
                    "type": "boolean"
                },
                "originalPaymentId": {
                    "type": "string"
                },
                "refundReason": {
                    "type": "string"
                },
                "refundedBy": {
                    "type": "string"
                }
            }
        },
        "domain.SettlementStatus": {
            "type": "string",
            "enum": [
                "unpaid",
                "partial",
                "paid"
            ],
            "x-enum-varnames": [
                "SettlementUnpaid",
                "SettlementPartial",
                "SettlementPaid"
            ]
        },
        "domain.TransactionType": {
            "type": "string",
            "enum": [
                "receipt",
                "payment"
            ],
            "x-enum-varnames": [
                "Receipt",
                "Payout"
            ]
        },
        "dto.BounceChequeRequest": {
            "type": "object",
            "required": [
                "reason"
            ],
            "properties": {
                "reason": {
                    "type": "string",
                    "maxLength": 500
                }
            }
        },
        "dto.BulkReconcileItem": {
            "type": "object",
            "required": [
                "paymentId",
                "reconciledWith"
            ],
            "properties": {
                "discrepancy": {
                    "type": "string"
                },
                "notes": {
                    "type": "string",
                    "maxLength": 1000
                },
                "paymentId": {
                    "type": "string"
                },
                "reconciledWith": {
                    "type": "string"
                }
            }
        },
        "dto.BulkReconcileRequest": {
            "type": "object",
            "required": [
                "items"
            ],
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BulkReconcileItem"
                    },
                    "minItems": 1,
                    "maxItems": 500
                }
            }
        },
        "dto.BulkReconcileResult": {
            "type": "object",
            "properties": {
                "reconciledCount": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BulkReconcileSkip"
                    }
                },
                "skippedCount": {
                    "type": "integer"
                }
            }
        },
        "dto.BulkReconcileSkip": {
            "type": "object",
            "properties": {
                "paymentId": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "dto.CancelPaymentRequest": {
            "type": "object",
            "required": [
                "reason"
            ],
            "properties": {
                "reason": {
                    "type": "string",
                    "maxLength": 500
                }
            }
        },
        "dto.ChequeRequest": {
            "type": "object",
            "required": [
                "chequeNumber"
            ],
            "properties": {
                "chequeDate": {
                    "type": "string"
                },
                "chequeNumber": {
                    "type": "string"
                }
            }
        },
        "dto.ClearChequeRequest": {
            "type": "object",
            "properties": {
                "clearanceDate": {
                    "type": "string"
                }
            }
        },
        "dto.CreateOrderRequest": {
            "type": "object",
            "required": [
                "customerId",
                "orderNumber"
            ],
            "properties": {
                "customerId": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "expectedDeliveryDate": {
                    "type": "string"
                },
                "notes": {
                    "type": "string",
                    "maxLength": 1000
                },
                "orderNumber": {
                    "type": "string",
                    "maxLength": 50
                },
                "totalAmount": {
                    "type": "string",
                    "example": "10000.00"
                }
            }
        },
        "dto.CreatePartyRequest": {
            "type": "object",
            "required": [
                "name",
                "partyType"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 200
                },
                "openingBalance": {
                    "type": "string"
                },
                "partyId": {
                    "type": "string",
                    "description": "Optional, generated when empty"
                },
                "partyType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.PartyType"
                        }
                    ],
                    "enum": [
                        "customer",
                        "supplier"
                    ]
                }
            }
        },
        "dto.CreatePaymentRequest": {
            "type": "object",
            "required": [
                "partyType",
                "paymentMode",
                "transactionType"
            ],
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "4000.00"
                },
                "bankName": {
                    "type": "string"
                },
                "cardLast4": {
                    "type": "string",
                    "maxLength": 4,
                    "minLength": 4
                },
                "cheque": {
                    "$ref": "#/definitions/dto.ChequeRequest"
                },
                "notes": {
                    "type": "string",
                    "maxLength": 1000
                },
                "partyId": {
                    "type": "string"
                },
                "partyName": {
                    "type": "string"
                },
                "partyType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.PartyType"
                        }
                    ],
                    "example": "customer"
                },
                "paymentDate": {
                    "type": "string",
                    "description": "Optional, defaults to now"
                },
                "paymentMode": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.PaymentMode"
                        }
                    ],
                    "example": "cash"
                },
                "referenceId": {
                    "type": "string"
                },
                "referenceNumber": {
                    "type": "string"
                },
                "referenceType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.ReferenceType"
                        }
                    ],
                    "example": "order"
                },
                "transactionId": {
                    "type": "string"
                },
                "transactionType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.TransactionType"
                        }
                    ],
                    "example": "receipt"
                },
                "upiId": {
                    "type": "string"
                },
                "walletName": {
                    "type": "string"
                }
            }
        },
        "dto.CreateReferenceRequest": {
            "type": "object",
            "required": [
                "number",
                "referenceType"
            ],
            "properties": {
                "documentId": {
                    "type": "string",
                    "description": "Optional, generated when empty"
                },
                "number": {
                    "type": "string",
                    "maxLength": 50
                },
                "referenceType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.ReferenceType"
                        }
                    ],
                    "enum": [
                        "sale",
                        "purchase"
                    ]
                },
                "totalAmount": {
                    "type": "string"
                }
            }
        },
        "dto.ListPaymentsResponse": {
            "type": "object",
            "properties": {
                "nextToken": {
                    "type": "string"
                },
                "payments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PaymentResponse"
                    }
                }
            }
        },
        "dto.OrderResponse": {
            "type": "object",
            "properties": {
                "actualCompletionDate": {
                    "type": "string"
                },
                "actualStartDate": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "customerId": {
                    "type": "string"
                },
                "customerName": {
                    "type": "string"
                },
                "expectedDeliveryDate": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "orderId": {
                    "type": "string"
                },
                "orderNumber": {
                    "type": "string"
                },
                "payment": {
                    "$ref": "#/definitions/domain.PaymentSummary"
                },
                "shopId": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.OrderStatus"
                }
            }
        },
        "dto.PartyResponse": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "partyId": {
                    "type": "string"
                },
                "partyType": {
                    "$ref": "#/definitions/domain.PartyType"
                },
                "shopId": {
                    "type": "string"
                }
            }
        },
        "dto.PaymentOutcomeResponse": {
            "type": "object",
            "properties": {
                "effects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.EffectOutcome"
                    }
                },
                "payment": {
                    "$ref": "#/definitions/dto.PaymentResponse"
                }
            }
        },
        "dto.PaymentResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "approval": {
                    "$ref": "#/definitions/domain.Approval"
                },
                "cancellation": {
                    "$ref": "#/definitions/domain.Cancellation"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "party": {
                    "$ref": "#/definitions/domain.Party"
                },
                "paymentDate": {
                    "type": "string"
                },
                "paymentDetails": {
                    "$ref": "#/definitions/domain.PaymentDetails"
                },
                "paymentId": {
                    "type": "string"
                },
                "paymentMode": {
                    "$ref": "#/definitions/domain.PaymentMode"
                },
                "paymentNumber": {
                    "type": "string"
                },
                "reconciliation": {
                    "$ref": "#/definitions/domain.Reconciliation"
                },
                "reference": {
                    "$ref": "#/definitions/domain.Reference"
                },
                "refund": {
                    "$ref": "#/definitions/domain.RefundInfo"
                },
                "shopId": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.PaymentStatus"
                },
                "transactionType": {
                    "$ref": "#/definitions/domain.TransactionType"
                }
            }
        },
        "dto.ReconcilePaymentRequest": {
            "type": "object",
            "required": [
                "reconciledWith"
            ],
            "properties": {
                "discrepancy": {
                    "type": "string"
                },
                "notes": {
                    "type": "string",
                    "maxLength": 1000
                },
                "reconciledWith": {
                    "type": "string"
                }
            }
        },
        "dto.ReferenceResponse": {
            "type": "object",
            "properties": {
                "documentId": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "payment": {
                    "$ref": "#/definitions/domain.PaymentSummary"
                },
                "referenceType": {
                    "$ref": "#/definitions/domain.ReferenceType"
                },
                "shopId": {
                    "type": "string"
                }
            }
        },
        "dto.RefundPaymentRequest": {
            "type": "object",
            "required": [
                "reason"
            ],
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "1500.00"
                },
                "paymentMode": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.PaymentMode"
                        }
                    ],
                    "description": "Defaults to the original's mode"
                },
                "reason": {
                    "type": "string",
                    "maxLength": 500
                }
            }
        },
        "dto.RefundResponse": {
            "type": "object",
            "properties": {
                "original": {
                    "$ref": "#/definitions/dto.PaymentResponse"
                },
                "refund": {
                    "$ref": "#/definitions/dto.PaymentOutcomeResponse"
                }
            }
        },
        "dto.RejectPaymentRequest": {
            "type": "object",
            "required": [
                "reason"
            ],
            "properties": {
                "reason": {
                    "type": "string",
                    "maxLength": 500
                }
            }
        },
        "dto.UpdateOrderStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.OrderStatus"
                        }
                    ],
                    "example": "confirmed"
                }
            }
        },
        "dto.UpdatePaymentStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/domain.PaymentStatus"
                        }
                    ],
                    "example": "completed"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}
`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Jewel Ledger API",
	Description:      "Payments, settlement and balances for the jewelry back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
