// Package api holds the Swagger document served under /docs.
package api

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
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/analytics": {
            "get": {
                "description": "Compares the spend of the current week or month with the prior one and gives advice on the spending pace",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get spending analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "week or month. Defaults to week.",
                        "name": "mode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reference time in RFC3339 format. Defaults to the current time.",
                        "name": "now",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AnalyticsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AnalyticsResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget": {
            "get": {
                "description": "Returns the monthly budget limit and the derived weekly limit",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Get budget",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "description": "Sets the monthly budget limit",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            }
        },
        "/v1/calendar": {
            "get": {
                "description": "Returns for every day of the week or month whether it has income or expenses",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get calendar",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reference day in YYYY-MM-DD format. Defaults to today.",
                        "name": "date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "week or month. Defaults to week.",
                        "name": "mode",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CalendarResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CalendarResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns the category sets for expenses and income",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoriesResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/days/{day}": {
            "get": {
                "description": "Returns the totals and transactions of a calendar day",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Day in YYYY-MM-DD format",
                        "name": "day",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DayResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DayResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/export": {
            "get": {
                "description": "Exports transactions, wallets, budget and preferences as one document",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Import"
                ],
                "summary": "Export",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ExportResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Import"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/import": {
            "post": {
                "description": "Replaces the complete state with the document. Wallet balances are taken as they are in the document.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Import"
                ],
                "summary": "Import",
                "parameters": [
                    {
                        "description": "Document as returned by the export",
                        "name": "document",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Document"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ImportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ImportResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Import"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/overview": {
            "get": {
                "description": "Returns wallet balances, the totals of the current month and both budget bars",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get overview",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reference time in RFC3339 format. Defaults to the current time.",
                        "name": "now",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.OverviewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.OverviewResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Analytics"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/preferences": {
            "get": {
                "description": "Returns the display preferences",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "Get preferences",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PreferencesResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Preferences"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "description": "Updates the display preferences",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "Update preferences",
                "parameters": [
                    {
                        "description": "Preferences",
                        "name": "preferences",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.PreferencesEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PreferencesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.PreferencesResponse"
                        }
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions, newest first. With a search query, transactions matching the query are returned. Without one, the transactions of the specified day, or all transactions if no day is specified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by type: all, expense or income. Defaults to all.",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search query. Understands time phrases like 'tháng này', wallet phrases like 'tiền mặt', amounts like '55k' and glob patterns.",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Calendar day in YYYY-MM-DD format. Ignored when searching.",
                        "name": "day",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reference time in RFC3339 format for time phrases. Defaults to the current time.",
                        "name": "now",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Transactions to return. Defaults to 50, negative values return all.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Books a new transaction and updates the balance of its wallet",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction and reverts its effect on the wallet balance. Deleting a transaction that does not exist succeeds.",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing transaction. Only values to be updated need to be specified. Wallet balances are moved accordingly.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            }
        },
        "/v1/voice": {
            "post": {
                "description": "Turns a transcript into a transaction draft. The draft is not booked. If classification fails, a fallback draft is returned together with a message. For speech recognition errors, the message to show is returned.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Voice"
                ],
                "summary": "Interpret voice input",
                "parameters": [
                    {
                        "description": "Voice input",
                        "name": "voice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.VoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.VoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.VoiceResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.VoiceResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Voice"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/wallets": {
            "get": {
                "description": "Returns the three wallets with their balances",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Wallets"
                ],
                "summary": "Get wallets",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Wallets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/wallets/{id}": {
            "get": {
                "description": "Returns a specific wallet",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Wallets"
                ],
                "summary": "Get wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "cash, bank or ewallet",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Wallets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "cash, bank or ewallet",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "description": "Overrides the balance of a wallet. The transaction history is not changed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Wallets"
                ],
                "summary": "Update wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "cash, bank or ewallet",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Wallet",
                        "name": "wallet",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.WalletEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.WalletResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "analytics.BudgetBar": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "number",
                    "example": 5000000
                },
                "percent": {
                    "type": "number",
                    "description": "Capped at 100",
                    "example": 24
                },
                "spent": {
                    "type": "number",
                    "example": 1200000
                }
            }
        },
        "analytics.CalendarDay": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2024-05-13T00:00:00Z"
                },
                "hasExpense": {
                    "type": "boolean",
                    "example": true
                },
                "hasIncome": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "analytics.CategoryTotal": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 350000
                },
                "category": {
                    "type": "string",
                    "example": "Ăn uống"
                },
                "share": {
                    "type": "number",
                    "description": "Percent of the current total",
                    "example": 43.75
                }
            }
        },
        "analytics.DailyBucket": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 55000
                },
                "date": {
                    "type": "string",
                    "example": "2024-05-13T00:00:00Z"
                },
                "label": {
                    "type": "string",
                    "example": "T2"
                }
            }
        },
        "analytics.Direction": {
            "type": "string",
            "enum": [
                "increase",
                "decrease",
                "flat"
            ],
            "x-enum-varnames": [
                "DirectionIncrease",
                "DirectionDecrease",
                "DirectionFlat"
            ]
        },
        "analytics.Mode": {
            "type": "string",
            "enum": [
                "week",
                "month"
            ],
            "x-enum-varnames": [
                "ModeWeek",
                "ModeMonth"
            ]
        },
        "analytics.Overview": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string",
                    "example": "2024-05"
                },
                "monthBudget": {
                    "$ref": "#/definitions/analytics.BudgetBar"
                },
                "monthlyExpense": {
                    "type": "number",
                    "example": 1200000
                },
                "monthlyIncome": {
                    "type": "number",
                    "example": 15000000
                },
                "totalBalance": {
                    "type": "number",
                    "example": 14450000
                },
                "wallets": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "weekBudget": {
                    "$ref": "#/definitions/analytics.BudgetBar"
                }
            }
        },
        "analytics.Period": {
            "type": "object",
            "properties": {
                "end": {
                    "type": "string",
                    "example": "2024-05-19T23:59:59.999Z"
                },
                "start": {
                    "type": "string",
                    "example": "2024-05-13T00:00:00Z"
                }
            }
        },
        "analytics.Window": {
            "type": "object",
            "properties": {
                "current": {
                    "$ref": "#/definitions/analytics.Period"
                },
                "daysPassed": {
                    "type": "integer",
                    "description": "Weekday ordinal (Mon = 1) or day of month",
                    "example": 3
                },
                "daysRemaining": {
                    "type": "integer",
                    "description": "Never negative",
                    "example": 4
                },
                "mode": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.Mode"
                        }
                    ]
                },
                "now": {
                    "type": "string",
                    "example": "2024-05-15T10:00:00Z"
                },
                "prior": {
                    "$ref": "#/definitions/analytics.Period"
                },
                "totalDays": {
                    "type": "integer",
                    "description": "7 or the number of days in the month",
                    "example": 7
                },
                "weekday": {
                    "type": "integer",
                    "description": "ISO weekday of now, Mon = 1 to Sun = 7",
                    "example": 3
                }
            }
        },
        "forecast.Advisory": {
            "type": "object",
            "properties": {
                "burnRate": {
                    "type": "number",
                    "example": 1.21
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/forecast.Kind"
                        }
                    ]
                },
                "message": {
                    "type": "string",
                    "example": "Để an toàn, trong 4 ngày tới, mỗi ngày chỉ nên tiêu tối đa 120k."
                },
                "remaining": {
                    "type": "number",
                    "example": 480000
                },
                "runoutDay": {
                    "type": "integer",
                    "description": "Only set for burning_fast",
                    "example": 5
                },
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/forecast.Status"
                        }
                    ]
                },
                "suggested": {
                    "type": "number",
                    "description": "The amount the message names",
                    "example": 120000
                },
                "timePercent": {
                    "type": "number",
                    "example": 42.86
                },
                "title": {
                    "type": "string",
                    "example": "Mục tiêu hàng ngày"
                },
                "usagePercent": {
                    "type": "number",
                    "example": 52
                }
            }
        },
        "forecast.Kind": {
            "type": "string",
            "enum": [
                "over_budget",
                "burning_fast",
                "weekend_caution",
                "on_track",
                "daily_cap"
            ],
            "x-enum-varnames": [
                "KindOverBudget",
                "KindBurningFast",
                "KindWeekendCaution",
                "KindOnTrack",
                "KindDailyCap"
            ]
        },
        "forecast.Status": {
            "type": "string",
            "enum": [
                "good",
                "warning",
                "neutral"
            ],
            "x-enum-varnames": [
                "StatusGood",
                "StatusWarning",
                "StatusNeutral"
            ]
        },
        "httperror.Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "there is no transaction with this ID"
                }
            }
        },
        "models.BudgetConfig": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "number",
                    "description": "Monthly limit",
                    "example": 5000000
                }
            }
        },
        "models.Document": {
            "type": "object",
            "properties": {
                "budgetConfig": {
                    "$ref": "#/definitions/models.BudgetConfig"
                },
                "darkMode": {
                    "type": "boolean"
                },
                "revision": {
                    "type": "integer"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "updatedAt": {
                    "type": "string"
                },
                "wallets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Wallet"
                    }
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Positive amount in whole currency units",
                    "example": 55000
                },
                "category": {
                    "type": "string",
                    "description": "Category label",
                    "example": "Ăn uống"
                },
                "date": {
                    "type": "string",
                    "description": "Date and time of the transaction",
                    "example": "2024-05-13T07:30:00+07:00"
                },
                "id": {
                    "type": "string",
                    "description": "Opaque identifier, assigned at creation",
                    "example": "2f4c8fb2-3b0b-4f38-9d35-4c1c55a5c0de"
                },
                "note": {
                    "type": "string",
                    "description": "Free text description",
                    "example": "Phở bò sáng"
                },
                "source": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ],
                    "description": "Wallet the transaction is booked against"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "expense or income"
                }
            }
        },
        "models.TransactionType": {
            "type": "string",
            "enum": [
                "expense",
                "income"
            ],
            "x-enum-varnames": [
                "TypeExpense",
                "TypeIncome"
            ]
        },
        "models.Wallet": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "description": "Running balance, may be negative",
                    "example": 1500000
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "bg-emerald-500"
                },
                "icon": {
                    "type": "string",
                    "description": "Display icon",
                    "example": "Wallet"
                },
                "id": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ],
                    "description": "Wallet identifier"
                },
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Tiền mặt"
                }
            }
        },
        "models.WalletType": {
            "type": "string",
            "enum": [
                "cash",
                "bank",
                "ewallet"
            ],
            "x-enum-varnames": [
                "WalletCash",
                "WalletBank",
                "WalletEwallet"
            ]
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {}
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the SmartFin backend",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ],
                    "description": "Data object for the version endpoint"
                }
            }
        },
        "v1.Analytics": {
            "type": "object",
            "properties": {
                "breakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryTotal"
                    }
                },
                "current": {
                    "type": "number",
                    "example": 800000
                },
                "daily": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.DailyBucket"
                    }
                },
                "diff": {
                    "type": "number",
                    "example": -200000
                },
                "direction": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.Direction"
                        }
                    ]
                },
                "display": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Display"
                        }
                    ],
                    "description": "Compact figures"
                },
                "forecast": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/forecast.Advisory"
                        }
                    ],
                    "description": "Advice on the spending pace"
                },
                "percentChange": {
                    "type": "integer",
                    "example": 20
                },
                "prior": {
                    "type": "number",
                    "example": 1000000
                },
                "reason": {
                    "type": "string",
                    "description": "Category with the highest spend",
                    "example": "Ăn uống"
                },
                "window": {
                    "$ref": "#/definitions/analytics.Window"
                }
            }
        },
        "v1.AnalyticsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Analytics"
                        }
                    ],
                    "description": "Data for the analysis"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the mode must be either 'week' or 'month'"
                }
            }
        },
        "v1.Budget": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "number",
                    "description": "Monthly limit",
                    "example": 5000000
                },
                "weeklyLimit": {
                    "type": "number",
                    "description": "A quarter of the monthly limit",
                    "example": 1250000
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "string",
                    "description": "Monthly limit",
                    "example": "5000000"
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Budget"
                        }
                    ],
                    "description": "Data for the budget"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the budget limit must not be negative"
                }
            }
        },
        "v1.CalendarResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CalendarDay"
                    },
                    "description": "Flags per day"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the mode must be either 'week' or 'month'"
                }
            }
        },
        "v1.Categories": {
            "type": "object",
            "properties": {
                "bill": {
                    "type": "string",
                    "description": "The bill category. Bills only count towards the monthly budget",
                    "example": "Hóa đơn"
                },
                "expense": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "Categories for expenses",
                    "example": [
                        "Ăn uống",
                        "Di chuyển"
                    ]
                },
                "income": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "Categories for income",
                    "example": [
                        "Lương",
                        "Thưởng"
                    ]
                },
                "noteSuggestions": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    },
                    "description": "Quick-pick notes per category"
                },
                "other": {
                    "type": "string",
                    "description": "The catch-all category",
                    "example": "Khác"
                }
            }
        },
        "v1.CategoriesResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Categories"
                        }
                    ],
                    "description": "Data for the categories"
                }
            }
        },
        "v1.Day": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "example": -230000
                },
                "day": {
                    "type": "string",
                    "example": "2024-05-13T00:00:00Z"
                },
                "expense": {
                    "type": "number",
                    "example": 230000
                },
                "highSpend": {
                    "type": "boolean",
                    "example": true
                },
                "income": {
                    "type": "number",
                    "example": 0
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "Transactions of the day, newest first"
                },
                "weeklyLimitPercent": {
                    "type": "number",
                    "example": 18.4
                }
            }
        },
        "v1.DayResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Day"
                        }
                    ],
                    "description": "Data for the day"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "could not parse the date, did you use YYYY-MM-DD format?"
                }
            }
        },
        "v1.Display": {
            "type": "object",
            "properties": {
                "current": {
                    "type": "string",
                    "example": "800k"
                },
                "diff": {
                    "type": "string",
                    "example": "-200k"
                },
                "prior": {
                    "type": "string",
                    "example": "1tr"
                }
            }
        },
        "v1.ExportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "The complete state"
                }
            }
        },
        "v1.ImportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "The state after the import"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "transaction 3: the amount must be greater than zero"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {}
        },
        "v1.OverviewResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.Overview"
                        }
                    ],
                    "description": "Data for the overview"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the query string contains unparseable data. Please check the values"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.Preferences": {
            "type": "object",
            "properties": {
                "darkMode": {
                    "type": "boolean",
                    "description": "Use the dark theme",
                    "example": true
                }
            }
        },
        "v1.PreferencesEditable": {
            "type": "object",
            "properties": {
                "darkMode": {
                    "type": "boolean",
                    "description": "Use the dark theme. Unchanged if not set",
                    "example": true
                }
            }
        },
        "v1.PreferencesResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Preferences"
                        }
                    ],
                    "description": "Data for the preferences"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the request body must not be empty"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ],
                    "description": "Links for the v1 API"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Positive amount in whole currency units",
                    "example": 55000
                },
                "category": {
                    "type": "string",
                    "description": "Category label",
                    "example": "Ăn uống"
                },
                "date": {
                    "type": "string",
                    "description": "Date and time of the transaction",
                    "example": "2024-05-13T07:30:00+07:00"
                },
                "id": {
                    "type": "string",
                    "description": "Opaque identifier, assigned at creation",
                    "example": "2f4c8fb2-3b0b-4f38-9d35-4c1c55a5c0de"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "note": {
                    "type": "string",
                    "description": "Free text description",
                    "example": "Phở bò sáng"
                },
                "source": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ],
                    "description": "Wallet the transaction is booked against"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "expense or income"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "description": "Amount as number or string. Strings are coerced, \"k\" stands for thousand",
                    "example": "55k"
                },
                "category": {
                    "type": "string",
                    "description": "Category label",
                    "example": "Ăn uống",
                    "default": "Khác"
                },
                "date": {
                    "type": "string",
                    "description": "Date and time of the transaction. Defaults to the current time",
                    "example": "2024-05-15T08:00:00Z"
                },
                "note": {
                    "type": "string",
                    "description": "A note",
                    "example": "Phở bò sáng",
                    "default": ""
                },
                "source": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ],
                    "description": "Wallet the transaction is booked against",
                    "default": "cash"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "description": "expense or income",
                    "default": "expense"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the type must be one of 'all', 'expense' or 'income'"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "Data for the transaction"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no transaction with this ID"
                }
            }
        },
        "v1.VoiceRequest": {
            "type": "object",
            "properties": {
                "errorCode": {
                    "type": "string",
                    "description": "The speech recognition error code, if recognition failed",
                    "example": ""
                },
                "transcript": {
                    "type": "string",
                    "description": "The recognized speech",
                    "example": "bún bò 35k"
                }
            }
        },
        "v1.VoiceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/voice.Result"
                        }
                    ],
                    "description": "The transaction draft for a transcript"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "either transcript or errorCode must be set"
                },
                "message": {
                    "type": "string",
                    "description": "The message to show for a speech recognition error",
                    "example": "Vui lòng cấp quyền Microphone để sử dụng tính năng này."
                }
            }
        },
        "v1.Wallet": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "description": "Running balance, may be negative",
                    "example": 1500000
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "bg-emerald-500"
                },
                "icon": {
                    "type": "string",
                    "description": "Display icon",
                    "example": "Wallet"
                },
                "id": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ],
                    "description": "Wallet identifier"
                },
                "links": {
                    "$ref": "#/definitions/v1.WalletLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Tiền mặt"
                }
            }
        },
        "v1.WalletEditable": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "string",
                    "description": "New balance. Overrides the balance derived from transactions",
                    "example": "2000000"
                }
            }
        },
        "v1.WalletLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.WalletListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Wallet"
                    },
                    "description": "List of wallets"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "an unexpected error occurred"
                }
            }
        },
        "v1.WalletResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Wallet"
                        }
                    ],
                    "description": "Data for the wallet"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no wallet with this ID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "there is no transaction with this ID"
                }
            }
        },
        "voice.Guess": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 35000
                },
                "category": {
                    "type": "string",
                    "example": "Ăn uống"
                },
                "note": {
                    "type": "string",
                    "example": "Bún bò"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ]
                },
                "walletType": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.WalletType"
                        }
                    ]
                }
            }
        },
        "voice.Result": {
            "type": "object",
            "properties": {
                "fallback": {
                    "type": "boolean",
                    "example": false
                },
                "guess": {
                    "$ref": "#/definitions/voice.Guess"
                },
                "message": {
                    "type": "string",
                    "example": ""
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
