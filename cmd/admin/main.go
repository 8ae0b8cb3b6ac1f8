package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"casechain/backend/internal/query"
	"casechain/backend/internal/storage"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: stats | list [status] | show <report_id>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "stats":
		stats, err := query.NewService(storageSvc).Statistics()
		if err != nil {
			log.Fatalf("Error building statistics: %v", err)
		}
		printJSON(stats)

	case "list":
		var err error
		var reports any
		if len(os.Args) > 2 {
			reports, err = storageSvc.GetReportsByStatus(os.Args[2])
		} else {
			reports, err = storageSvc.GetAllReports()
		}
		if err != nil {
			log.Fatalf("Error listing reports: %v", err)
		}
		printJSON(reports)

	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <report_id>")
			os.Exit(1)
		}
		report, err := storageSvc.GetReportByID(os.Args[2])
		if err != nil {
			log.Fatalf("Error fetching report: %v", err)
		}
		if report == nil {
			fmt.Printf("Report %s not found.\n", os.Args[2])
			os.Exit(1)
		}
		printJSON(report)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}
	fmt.Println(string(out))
}
