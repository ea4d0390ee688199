package main

// @title VBMS Inventory Service API
// @version 1.0
// @description Inventory and transaction ledger service for VBMS with full observability (logging, tracing, metrics)

// @contact.name API Support
// @contact.email support@vbms.example.com

// @host localhost:8082
// @BasePath /

// @tag.name Items
// @tag.description Inventory item management endpoints

// @tag.name Stock
// @tag.description Stock adjustment, transfer and reservation endpoints

// @tag.name Transactions
// @tag.description Transaction ledger endpoints

// @tag.name Analytics
// @tag.description Summary and export endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
