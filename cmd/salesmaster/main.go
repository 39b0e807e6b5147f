package main

import (
	"os"

	"github.com/SscSPs/salesmaster_cloud/internal/commands"
)

// @title SalesMaster Cloud API
// @version 1.0
// @description Debt collection backend: spreadsheet imports, vendor views and WhatsApp messaging.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	rc := commands.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rc.Execute(); err != nil {
		os.Exit(1)
	}
}
