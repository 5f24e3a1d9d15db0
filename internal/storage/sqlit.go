package storage

import (
	"database/sql"
	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type DB interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	Close() error
}

type Store struct{ db DB }

// TurnRow is one persisted conversation turn.
type TurnRow struct {
	Role string
	Text string
}

func OpenSQLite(dsn string) (DB, error) {
	return sql.Open("sqlite3", dsn)
}

func InitSchema(db DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS turns(
		chat_id INTEGER, role TEXT, text TEXT, ts INTEGER
	)`)
	return err
}

func NewStore(db DB) *Store { return &Store{db: db} }

func (s *Store) SaveTurn(chatID int64, role, text string, ts int64) error {
	_, err := s.db.Exec(`INSERT INTO turns(chat_id,role,text,ts) VALUES(?,?,?,?)`,
		chatID, role, text, ts)
	return err
}

// RecentTurns returns the last n turns for a chat, oldest first.
func (s *Store) RecentTurns(chatID int64, n int) ([]TurnRow, error) {
	rows, err := s.db.Query(`SELECT role,text FROM turns WHERE chat_id=? ORDER BY ts DESC, rowid DESC LIMIT ?`,
		chatID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TurnRow
	for rows.Next() {
		var r TurnRow
		if err := rows.Scan(&r.Role, &r.Text); err == nil && r.Text != "" {
			out = append(out, r)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
