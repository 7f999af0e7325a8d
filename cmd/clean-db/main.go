// Command-line tool to clean the database by dropping all tables in the public schema.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lib/pq"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
)

func main() {
	yes := flag.Bool("yes", false, "do not ask for confirmation")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatal("invalid configuration", "err", err)
	}
	log := logging.New(cfg.LogLevel)

	if !*yes {
		// Warning message
		fmt.Println("⚠️ WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.")
		fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

		// Ask for confirmation
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal("failed to read input", "err", err)
		}
		if strings.TrimSpace(strings.ToLower(input)) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	db, err := database.Connect(database.FromConfig(cfg.Database), log)
	if err != nil {
		log.Fatal("database failed to initialize", "err", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var tables []string
	if err := db.DB.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		log.Fatal("failed to list tables", "err", err)
	}

	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + pq.QuoteIdentifier(table) + " CASCADE").Error; err != nil {
			log.Fatal("failed to drop table", "table", table, "err", err)
		}
		log.Info("table dropped", "table", table)
	}

	fmt.Printf("✅ %d table(s) dropped successfully.\n", len(tables))
}
