package main

import "github.com/lexcraft/go-legal-backend/cmd"

// @title       Legal Intelligence API
// @version     1.0
// @description Legal practice management and AI-assisted legal intelligence: lawyer and case records, multi-agent research, drafting, compliance and strategy generation, human approval workflow, feedback collection, and a precedent/statute library.

// @host     localhost:8004
// @BasePath /api/v1

func main() {
	cmd.Execute()
}
