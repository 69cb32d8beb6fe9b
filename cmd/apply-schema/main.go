// apply-schema executes schema.sql (or the file named on the command
// line) against the configured database, statement by statement.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"smarthome-api/internal/config"
	"smarthome-api/internal/database"
)

func main() {
	_ = godotenv.Load()

	schemaFile := "schema.sql"
	if len(os.Args) > 1 {
		schemaFile = os.Args[1]
	}

	sqlContent, err := os.ReadFile(schemaFile)
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}

	cfg := config.Load()
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	statements := splitStatements(string(sqlContent))
	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Statement %d failed: %v\n%s", i+1, err, stmt)
		}
	}

	fmt.Printf("Applied %d statements from %s\n", len(statements), schemaFile)
}

// splitStatements drops `--` comment lines first, then splits on
// semicolons. Comments have to go before the split: a `;` inside a
// comment would otherwise cut a statement in half and glue the comment
// tail onto the next one.
func splitStatements(sqlContent string) []string {
	var sb strings.Builder
	for _, line := range strings.Split(sqlContent, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	out := []string{}
	for _, stmt := range strings.Split(sb.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
