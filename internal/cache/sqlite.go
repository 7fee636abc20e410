package cache

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCache persists payloads to a SQLite database so the cache survives
// restarts of the dashboard process.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// NewSQLiteCache opens (or creates) the database and runs migrations.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so HTTP reads do not block scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db, ttl: ttl}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite cache opened: %s (ttl %s)", dbPath, ttl)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS payloads (
		key       TEXT PRIMARY KEY,
		payload   BLOB NOT NULL,
		stored_at INTEGER NOT NULL
	)`)
	return err
}

func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var payload []byte
	var storedAt int64
	err := c.db.QueryRow(`SELECT payload, stored_at FROM payloads WHERE key = ?`, key).
		Scan(&payload, &storedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(storedAt, 0)) > c.ttl {
		return nil, false
	}
	return payload, true
}

func (c *SQLiteCache) Put(key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`INSERT INTO payloads (key, payload, stored_at) VALUES (?,?,?)
		ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, stored_at=excluded.stored_at`,
		key, payload, time.Now().Unix())
	return err
}

func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite cache")
	return c.db.Close()
}
