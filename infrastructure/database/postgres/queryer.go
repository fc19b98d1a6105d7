package postgres

import (
	"database/sql"
)

// Queryer cobre as operações de leitura e escrita que os repositórios usam.
// As assinaturas seguem database/sql para que *Connection satisfaça a
// interface por embutir *sql.DB.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
