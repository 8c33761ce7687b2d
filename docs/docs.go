package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "A REST API providing truth questions and dare challenges for the classic party game",
        "title": "Truth and Dare API",
        "version": "0.1.0"
    },
    "host": "localhost:8000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Get the health status of the API and its data sources",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Health status (healthy, degraded or unhealthy)"
                    }
                }
            }
        },
        "/api/v1/truth": {
            "get": {
                "tags": ["Truths"],
                "summary": "Get Random Truth",
                "description": "Get a random truth question from all available categories",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "A random truth question"
                    },
                    "404": {
                        "description": "No truths available"
                    }
                }
            }
        },
        "/api/v1/truth/{category}": {
            "get": {
                "tags": ["Truths"],
                "summary": "Get Truth by Category",
                "description": "Get a random truth question from a specific category (case-insensitive)",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "category",
                        "type": "string",
                        "required": true,
                        "description": "Category to filter by, e.g. funny"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "A random truth question from the category"
                    },
                    "404": {
                        "description": "Category not found"
                    },
                    "422": {
                        "description": "Invalid category"
                    }
                }
            }
        },
        "/api/v1/truth/categories/list": {
            "get": {
                "tags": ["Truths"],
                "summary": "Get Available Categories",
                "description": "Get a sorted list of all available truth categories",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Sorted list of category names"
                    }
                }
            }
        },
        "/api/v1/dare": {
            "get": {
                "tags": ["Dares"],
                "summary": "Get Random Dare",
                "description": "Get a random dare challenge from all available difficulties",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "A random dare challenge"
                    },
                    "404": {
                        "description": "No dares available"
                    }
                }
            }
        },
        "/api/v1/dare/{difficulty}": {
            "get": {
                "tags": ["Dares"],
                "summary": "Get Dare by Difficulty",
                "description": "Get a random dare challenge at a specific difficulty level (case-insensitive)",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "difficulty",
                        "type": "string",
                        "required": true,
                        "description": "Difficulty level, e.g. easy, medium, hard"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "A random dare challenge at the difficulty"
                    },
                    "404": {
                        "description": "Difficulty not found"
                    },
                    "422": {
                        "description": "Invalid difficulty"
                    }
                }
            }
        },
        "/api/v1/dare/difficulties/list": {
            "get": {
                "tags": ["Dares"],
                "summary": "Get Available Difficulties",
                "description": "Get the list of available difficulties, standard levels first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Ordered list of difficulty names"
                    }
                }
            }
        },
        "/api/v1/game/random": {
            "get": {
                "tags": ["Game"],
                "summary": "Get Random Truth or Dare",
                "description": "Get a random choice between a truth question and a dare challenge (50/50)",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "A random truth or dare, tagged with its type"
                    },
                    "404": {
                        "description": "No data available"
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "tags": ["Game"],
                "summary": "Get Statistics",
                "description": "Get comprehensive statistics about available truths and dares",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Combined content statistics"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Truth and Dare API",
	Description:      "A REST API providing truth questions and dare challenges for the classic party game",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
