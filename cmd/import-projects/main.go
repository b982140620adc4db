// Command import-projects loads a project register from an .xlsx workbook into
// the curated Postgres projects table. Column headers are matched against a
// set of known aliases, so exports from different registry generations import
// without manual editing.
package main

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	catalogstore "sciport/internal/catalog/store"
	"sciport/internal/platform/config"
	"sciport/internal/platform/database"
)

var columnAliases = map[string][]string{
	"id":            {"ИРН", "irn", "id", "number", "project_id"},
	"title":         {"Название проекта", "title", "project_title", "topicrus", "Наименование программы (RU)", "Наименование программы (KZ)", "Наименование программы (EN)", "Наименование конкурса"},
	"lead":          {"Заявитель", "lead", "applicant", "applicant_name"},
	"region":        {"Регион заявителя", "region", "applicant_region"},
	"status":        {"статус", "status", "state", "state_name"},
	"budget":        {"Сумма финансирования (одобр)", "Общая одобренная сумма", "budget", "accept_total", "approved_budget", "Сумма финансирования (запр)"},
	"spent":         {"spent", "expense", "fact_total"},
	"priority":      {"Приоритет", "priority", "Приоритетное научное направление"},
	"financingType": {"Тип финансирования", "financing_type", "competition_type", "GF/PCF/PK"},
	"startDate":     {"Дата начала", "start_date", "start", "year_b"},
	"endDate":       {"Дата окончания", "end_date", "end", "year_e"},
}

type projectRow struct {
	ID            string
	Title         string
	Lead          string
	Region        string
	Status        string
	Budget        float64
	Spent         float64
	StartDate     *string
	EndDate       *string
	Priority      string
	FinancingType string
	Tags          string
}

func main() {
	sheetFlag := flag.String("sheet", "", "worksheet name (defaults to the first sheet)")
	truncateFlag := flag.Bool("truncate", false, "empty the table before importing")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path/to/project.xlsx>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *sheetFlag, *truncateFlag); err != nil {
		fmt.Fprintln(os.Stderr, "import failed:", err)
		os.Exit(1)
	}
}

func run(path, sheet string, truncate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	table, err := catalogstore.QualifyTable(cfg.ProjectsTable)
	if err != nil {
		return err
	}

	rows, err := readWorkbook(path, sheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no valid rows to import (required: title and lead)")
	}

	db, err := database.OpenPostgres(cfg.UsersDB)
	if err != nil {
		return err
	}
	defer db.Close()

	imported, err := upsertRows(context.Background(), db, table, rows, truncate)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d projects into %s\n", imported, cfg.ProjectsTable)
	return nil
}

func readWorkbook(path, sheet string) ([]projectRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w (available: %s)", sheet, err, strings.Join(f.GetSheetList(), ", "))
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	index := headerIndex(raw[0])
	col := func(name string) int {
		for _, alias := range columnAliases[name] {
			if i, ok := index[normalize(alias)]; ok {
				return i
			}
		}
		return -1
	}

	columns := map[string]int{}
	for name := range columnAliases {
		columns[name] = col(name)
	}

	out := make([]projectRow, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		at := func(name string) string {
			idx := columns[name]
			if idx < 0 || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}

		row := projectRow{
			ID:            at("id"),
			Title:         at("title"),
			Lead:          at("lead"),
			Region:        at("region"),
			Status:        at("status"),
			Budget:        parseAmount(at("budget")),
			Spent:         parseAmount(at("spent")),
			StartDate:     parseDate(at("startDate")),
			EndDate:       parseDate(at("endDate")),
			Priority:      at("priority"),
			FinancingType: at("financingType"),
		}
		if row.Title == "" || row.Lead == "" {
			continue
		}
		if row.Status == "" {
			row.Status = "active"
		}
		if row.ID == "" {
			row.ID = "project-" + derivedID(row.Title, row.Lead, row.Region, i+1)
		}

		tags := make([]string, 0, 2)
		for _, tag := range []string{row.Priority, row.FinancingType} {
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		row.Tags = strings.Join(tags, ",")

		out = append(out, row)
	}
	return out, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		key := normalize(header)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func parseAmount(raw string) float64 {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(raw)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

var yearOnly = regexp.MustCompile(`^\d{4}$`)

// parseDate accepts a bare year, an Excel serial number, or a handful of
// common date spellings.
func parseDate(raw string) *string {
	if raw == "" {
		return nil
	}
	if yearOnly.MatchString(raw) {
		iso := raw + "-01-01"
		return &iso
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		iso := t.Format("2006-01-02")
		return &iso
	}
	for _, layout := range []string{"2006-01-02", "02.01.2006", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

func derivedID(title, lead, region string, rowNumber int) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%s|%d", title, lead, region, rowNumber)))
	return hex.EncodeToString(sum[:])[:12]
}

func upsertRows(ctx context.Context, db *sql.DB, table string, rows []projectRow, truncate bool) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	createSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			lead TEXT NOT NULL,
			region TEXT NOT NULL,
			status TEXT NOT NULL,
			budget NUMERIC(18,2) NOT NULL DEFAULT 0,
			spent NUMERIC(18,2) NOT NULL DEFAULT 0,
			start_date DATE NULL,
			end_date DATE NULL,
			priority TEXT NULL,
			financing_type TEXT NULL,
			tags TEXT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, table)
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_projects_status ON %s(status)", table)); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_projects_region ON %s(region)", table)); err != nil {
		return 0, err
	}

	if truncate {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return 0, fmt.Errorf("truncate: %w", err)
		}
	}

	upsertSQL := fmt.Sprintf(`
		INSERT INTO %s (
			id, title, lead, region, status, budget, spent,
			start_date, end_date, priority, financing_type, tags, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			lead = EXCLUDED.lead,
			region = EXCLUDED.region,
			status = EXCLUDED.status,
			budget = EXCLUDED.budget,
			spent = EXCLUDED.spent,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			priority = EXCLUDED.priority,
			financing_type = EXCLUDED.financing_type,
			tags = EXCLUDED.tags,
			updated_at = NOW()`, table)

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.ID, row.Title, row.Lead, row.Region, row.Status,
			row.Budget, row.Spent, row.StartDate, row.EndDate,
			nullable(row.Priority), nullable(row.FinancingType), nullable(row.Tags),
		)
		if err != nil {
			return 0, fmt.Errorf("upsert %s: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
