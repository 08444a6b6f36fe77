package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"shopd/internal/domain"
)

// SQLiteCartStore keeps carts in SQLite via sqlx. With the ":memory:" DSN it
// behaves like MemoryCartStore but exercises the same SQL path as a
// file-backed deployment; handy when poking at cart state with the sqlite CLI.
type SQLiteCartStore struct{ db *sqlx.DB }

func OpenSQLiteCartStore(dsn string) (*SQLiteCartStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteCartStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cart_items(
  cart_id     TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id  TEXT NOT NULL,
  name        TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price       INTEGER NOT NULL CHECK (price >= 0),
  currency    TEXT NOT NULL,
  image       TEXT NOT NULL DEFAULT '',
  qty         INTEGER NOT NULL CHECK (qty >= 1),
  PRIMARY KEY (cart_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteCartStore) ensureCart(sessionID string) error {
	_, err := s.db.Exec(`
		INSERT INTO carts(id, session_id, updated_at) VALUES(?,?,?)
		ON CONFLICT(session_id) DO NOTHING
	`, sessionID, sessionID, time.Now().Format(time.RFC3339))
	return err
}

func (s *SQLiteCartStore) Get(sessionID string) ([]domain.CartLine, error) {
	if err := s.ensureCart(sessionID); err != nil {
		return nil, err
	}
	lines := []domain.CartLine{}
	err := s.db.Select(&lines, `
	  SELECT product_id, name, description, price, currency, image, qty
	  FROM cart_items
	  WHERE cart_id = ?
	  ORDER BY rowid
	`, sessionID)
	return lines, err
}

// Save replaces the stored cart wholesale, preserving slice order via rowid.
func (s *SQLiteCartStore) Save(sessionID string, lines []domain.CartLine) error {
	if err := s.ensureCart(sessionID); err != nil {
		return err
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, sessionID); err != nil {
		return err
	}
	for _, l := range lines {
		_, err := tx.Exec(`
			INSERT INTO cart_items(cart_id, product_id, name, description, price, currency, image, qty)
			VALUES(?,?,?,?,?,?,?,?)
		`, sessionID, l.ProductID, l.Name, l.Description, l.Price, l.Currency, l.Image, l.Qty)
		if err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`UPDATE carts SET updated_at=? WHERE id=?`,
		time.Now().Format(time.RFC3339), sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteCartStore) Clear(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, sessionID)
	return err
}

func (s *SQLiteCartStore) Close() error { return s.db.Close() }
