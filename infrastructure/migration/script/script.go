package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/revops/revenue-analytics-api/infrastructure/database/postgres"
	"github.com/revops/revenue-analytics-api/internal/config"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/revops/revenue-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Linhas dos arquivos JSON de carga. As datas ficam como texto e vão direto
// para colunas DATE/TIMESTAMP, o PostgreSQL faz o cast
type accountRow struct {
	AccountID string  `json:"account_id"`
	Name      string  `json:"name"`
	Industry  *string `json:"industry"`
	Segment   *string `json:"segment"`
}

type repRow struct {
	RepID string `json:"rep_id"`
	Name  string `json:"name"`
}

type dealRow struct {
	DealID    string   `json:"deal_id"`
	AccountID string   `json:"account_id"`
	RepID     string   `json:"rep_id"`
	Stage     string   `json:"stage"`
	Amount    *float64 `json:"amount"`
	CreatedAt string   `json:"created_at"`
	ClosedAt  *string  `json:"closed_at"`
}

type activityRow struct {
	ActivityID string `json:"activity_id"`
	DealID     string `json:"deal_id"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
}

type targetRow struct {
	Month  string  `json:"month"`
	Target float64 `json:"target"`
}

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		account_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		industry TEXT,
		segment TEXT
	);

	CREATE TABLE IF NOT EXISTS reps (
		rep_id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS deals (
		deal_id TEXT PRIMARY KEY,
		account_id TEXT REFERENCES accounts(account_id),
		rep_id TEXT REFERENCES reps(rep_id),
		stage TEXT,
		amount DOUBLE PRECISION,
		created_at DATE,
		closed_at DATE
	);

	CREATE TABLE IF NOT EXISTS activities (
		activity_id TEXT PRIMARY KEY,
		deal_id TEXT REFERENCES deals(deal_id),
		type TEXT,
		timestamp TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS targets (
		month TEXT PRIMARY KEY,
		target DOUBLE PRECISION NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_deals_account ON deals(account_id);
	CREATE INDEX IF NOT EXISTS idx_deals_rep ON deals(rep_id);
	CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage);
	CREATE INDEX IF NOT EXISTS idx_deals_created ON deals(created_at);
	CREATE INDEX IF NOT EXISTS idx_activities_deal ON activities(deal_id);
	CREATE INDEX IF NOT EXISTS idx_activities_timestamp ON activities(timestamp);
`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de carga...")
}

func loadFixture(dataDir, name string, out any) error {
	path := filepath.Join(dataDir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler o arquivo %s", path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar o arquivo %s", path)
	}

	return nil
}

func createSchema(db *sql.DB) {
	log.Println("Criando tabelas e índices...")

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("ERRO ao criar o schema: %v", err)
	}

	log.Println("Schema criado com sucesso")
}

func clearTables(tx *sql.Tx) {
	log.Println("Limpando dados existentes...")

	// A ordem respeita as foreign keys
	for _, table := range []string{"activities", "deals", "targets", "accounts", "reps"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("ERRO ao limpar a tabela %s: %v", table, err)
		}
	}
}

func insertAccounts(tx *sql.Tx, accounts []accountRow) {
	log.Printf("Iniciando inserção de %d contas...", len(accounts))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO accounts (account_id, name, industry, segment) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para accounts: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, a := range accounts {
		_, err := stmt.Exec(a.AccountID, a.Name, a.Industry, a.Segment)
		if err != nil {
			log.Printf("ERRO ao inserir conta [%d/%d] %s: %v", i+1, len(accounts), a.Name, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de contas concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertReps(tx *sql.Tx, reps []repRow) {
	log.Printf("Iniciando inserção de %d vendedores...", len(reps))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO reps (rep_id, name) VALUES ($1, $2)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para reps: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, r := range reps {
		_, err := stmt.Exec(r.RepID, r.Name)
		if err != nil {
			log.Printf("ERRO ao inserir vendedor [%d/%d] %s: %v", i+1, len(reps), r.Name, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de vendedores concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertDeals(tx *sql.Tx, deals []dealRow) {
	log.Printf("Iniciando inserção de %d oportunidades...", len(deals))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO deals (deal_id, account_id, rep_id, stage, amount, created_at, closed_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para deals: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0
	invalidDateCount := 0

	for i, d := range deals {
		if _, err := utils.ParseDate(d.CreatedAt); err != nil {
			log.Printf("AVISO: oportunidade %s com created_at inválido (%s), ignorando", d.DealID, d.CreatedAt)
			invalidDateCount++
			continue
		}

		// Estágio fechado sem data de fechamento indica exportação inconsistente
		if domain.ClassifyStage(d.Stage).IsClosed() && d.ClosedAt == nil {
			log.Printf("AVISO: oportunidade %s está em %q mas não tem closed_at", d.DealID, d.Stage)
		}

		_, err := stmt.Exec(d.DealID, d.AccountID, d.RepID, d.Stage, d.Amount, d.CreatedAt, d.ClosedAt)
		if err != nil {
			log.Printf("ERRO ao inserir oportunidade [%d/%d] %s: %v", i+1, len(deals), d.DealID, err)
			errorCount++
			continue
		}
		successCount++
		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d oportunidades processadas", i+1, len(deals))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de oportunidades concluída em %v. Sucesso: %d, Erros: %d, Datas inválidas: %d",
		elapsed, successCount, errorCount, invalidDateCount)
}

func insertActivities(tx *sql.Tx, activities []activityRow) {
	log.Printf("Iniciando inserção de %d atividades...", len(activities))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO activities (activity_id, deal_id, type, timestamp) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para activities: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0
	generatedCount := 0

	for i, a := range activities {
		id := a.ActivityID
		if id == "" {
			// Arquivos exportados de CRMs nem sempre trazem o id da atividade
			generated, err := utils.GenerateID()
			if err != nil {
				log.Fatalf("ERRO ao gerar id de atividade: %v", err)
			}
			id = generated
			generatedCount++
		}

		_, err := stmt.Exec(id, a.DealID, a.Type, a.Timestamp)
		if err != nil {
			log.Printf("ERRO ao inserir atividade [%d/%d] %s: %v", i+1, len(activities), id, err)
			errorCount++
			continue
		}
		successCount++
		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d atividades processadas", i+1, len(activities))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de atividades concluída em %v. Sucesso: %d, Erros: %d, Ids gerados: %d",
		elapsed, successCount, errorCount, generatedCount)
}

func insertTargets(tx *sql.Tx, targets []targetRow) {
	log.Printf("Iniciando inserção de %d metas mensais...", len(targets))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO targets (month, target) VALUES ($1, $2)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para targets: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, t := range targets {
		_, err := stmt.Exec(t.Month, t.Target)
		if err != nil {
			log.Printf("ERRO ao inserir meta [%d/%d] %s: %v", i+1, len(targets), t.Month, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de metas concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createSchema(conn.DB)

	var (
		accounts   []accountRow
		reps       []repRow
		deals      []dealRow
		activities []activityRow
		targets    []targetRow
	)

	log.Printf("Lendo arquivos de carga do diretório %s...", cfg.Data.Dir)

	fixtures := []struct {
		name string
		out  any
	}{
		{"accounts.json", &accounts},
		{"reps.json", &reps},
		{"deals.json", &deals},
		{"activities.json", &activities},
		{"targets.json", &targets},
	}

	for _, f := range fixtures {
		if err := loadFixture(cfg.Data.Dir, f.name, f.out); err != nil {
			log.Fatalf("ERRO: %v", err)
		}
	}

	log.Printf("Carga definida: %d contas, %d vendedores, %d oportunidades, %d atividades, %d metas",
		len(accounts), len(reps), len(deals), len(activities), len(targets))

	startTime := time.Now()
	log.Println("Iniciando transação...")

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		clearTables(tx)

		insertAccounts(tx, accounts)
		insertReps(tx, reps)
		insertDeals(tx, deals)
		insertActivities(tx, activities)
		insertTargets(tx, targets)

		return nil
	})
	if err != nil {
		log.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	elapsed := time.Since(startTime)
	log.Printf("Carga inicial concluída em %v!", elapsed)
}
