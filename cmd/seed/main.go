package main

// Seed sample documents and analysis results for local development:
//   go run ./cmd/seed

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/shared/config"
	"docanalyzer-backend/internal/shared/storage/db"
)

const day = 24 * time.Hour

type seedDocument struct {
	filename string
	text     string
	age      time.Duration
	// analysis, when set, is appended for the created document.
	analysis    map[string]any
	analysisAge time.Duration
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	docRepo := &documents.PGRepo{DB: sqlDB}
	analysisRepo := &analyses.PGRepo{DB: sqlDB}
	now := time.Now()

	for _, seed := range seedDocuments() {
		doc, err := docRepo.Create(ctx, seed.filename, seed.text, now.Add(-seed.age).UnixMilli())
		if err != nil {
			log.Printf("seed document %s: %v", seed.filename, err)
			os.Exit(1)
		}
		if seed.analysis == nil {
			continue
		}
		payload, err := json.Marshal(seed.analysis)
		if err != nil {
			log.Printf("seed analysis for %s: %v", seed.filename, err)
			os.Exit(1)
		}
		if _, err := analysisRepo.Append(ctx, doc.ID, string(payload), now.Add(-seed.analysisAge).UnixMilli()); err != nil {
			log.Printf("seed analysis for %s: %v", seed.filename, err)
			os.Exit(1)
		}
	}

	log.Printf("seeded sample documents and analysis results")
}

func seedDocuments() []seedDocument {
	return []seedDocument{
		{
			filename: "Acme-Contract.pdf",
			text:     `SERVICE AGREEMENT This Service Agreement ("Agreement") is entered into as of January 15, 2025, by and between Acme Corporation, a Delaware corporation with its principal place of business at 123 Business Street, Suite 100, New York, NY 10001 ("Client"), and Tech Solutions LLC, a California limited liability company with its principal place of business at 456 Innovation Drive, San Francisco, CA 94105 ("Service Provider").`,
			age:      5 * day,
			analysis: map[string]any{
				"sentiment":      "neutral",
				"confidence":     0.92,
				"classification": "legal_document",
				"key_findings":   []string{"Service Provider obligations", "Contract duration", "Payment terms"},
				"entities":       []string{"Acme Corporation", "Tech Solutions LLC"},
				"summary":        "Legal service agreement between two companies",
			},
			analysisAge: 12 * time.Hour,
		},
		{
			filename: "Invoice-2025-001.pdf",
			text:     "INVOICE Invoice #: 2025-001 Invoice Date: January 20, 2025 Due Date: February 20, 2025 Bill To: Global Enterprises Inc. 789 Corporate Plaza Boston, MA 02108 Description: Software Development Services - Phase 1 Completion Quantity: 1 Rate: $25,000.00 Subtotal: $25,000.00 Sales Tax (6.25%): $1,562.50 Total Amount Due: $26,562.50 Payment Terms: Net 30",
			age:      4 * day,
		},
		{
			filename: "Meeting-Notes-Q1.docx",
			text:     "Q1 STRATEGIC PLANNING MEETING NOTES Date: Tuesday, January 14, 2025 Time: 2:00 PM - 4:30 PM Location: Executive Conference Room Attendees: Sarah Johnson (CEO), Michael Chen (CTO), Lisa Rodriguez (CFO), David Park (VP Marketing), Amanda Foster (VP Sales) ACTION ITEMS: Sarah Johnson - Finalize Q1 budget proposal by January 25th",
			age:      3 * day,
			analysis: map[string]any{
				"sentiment":      "positive",
				"confidence":     0.85,
				"classification": "meeting_minutes",
				"key_findings":   []string{"Q1 goals alignment", "Budget approval needed", "Action items assigned"},
				"entities":       []string{"Sarah Johnson", "Michael Chen", "Lisa Rodriguez", "Q1 2025"},
				"summary":        "Strategic planning meeting with clear objectives and assigned responsibilities",
			},
			analysisAge: 6 * time.Hour,
		},
		{
			filename: "Budget-Proposal-2025.xlsx",
			text:     "FY 2025 BUDGET PROPOSAL Executive Summary: Company proposes a total operating budget of $12.5M for fiscal year 2025, representing a 15% increase from FY 2024. Revenue projection: $18.2M, Net profit margin target: 20%",
			age:      2 * day,
		},
		{
			filename: "Employee-Handbook.pdf",
			text:     "EMPLOYEE HANDBOOK 2025 Welcome to TechCorp Solutions. This handbook serves as your guide to our company policies, procedures, and expectations. WORK SCHEDULE: Standard business hours are Monday through Friday, 9:00 AM to 5:00 PM with one hour for lunch.",
			age:      1 * day,
		},
	}
}
