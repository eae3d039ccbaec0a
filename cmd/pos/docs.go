package main

// @title POS Service API
// @version 1.0
// @description Point of sale backend: products, sales with atomic stock commit, invoicing and reporting
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/warungpos/pos-service
// @contact.email support@warungpos.id

// @license.name MIT
// @license.url https://github.com/warungpos/pos-service/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Sales
// @tag.description Sale transaction endpoints

// @tag.name Reports
// @tag.description Reporting and dashboard endpoints

// @tag.name Health
// @tag.description Health check endpoints
