// A MySQL-backed registry of named GUIDs: interface and component names
// mapped to the GUID literal that identifies them on the wire. Names are
// registered once and conflicting re-registrations are rejected, so every
// node resolving a name sees the same 128-bit identifier.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lab2439/guid"
)

// ErrNotRegistered is returned when a name has no GUID in the registry.
var ErrNotRegistered = errors.New("name not registered")

// RegistryDAO encapsulates all database operations on the guid_registry table.
type RegistryDAO struct {
	db *sql.DB
}

// NewRegistryDAO creates a new DAO with the provided database DSN.
func NewRegistryDAO(dsn string) (*RegistryDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &RegistryDAO{
		db: db,
	}, nil
}

// EnsureSchema creates the registry table if it does not exist.
// GUIDs are stored in canonical braced text form, 38 characters.
func (dao *RegistryDAO) EnsureSchema(ctx context.Context) error {
	_, err := dao.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS guid_registry (
			name       VARCHAR(190) NOT NULL PRIMARY KEY,
			guid       CHAR(38)     NOT NULL UNIQUE,
			created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// Register stores a name-to-GUID binding. Registering the same name with
// the same GUID again is a no-op; a different GUID for an existing name is
// an error, as is reusing a GUID already bound to another name.
func (dao *RegistryDAO) Register(ctx context.Context, name string, id guid.Guid) error {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing guid.Guid
	err = tx.QueryRowContext(ctx,
		"SELECT guid FROM guid_registry WHERE name = ? FOR UPDATE", name).Scan(&existing)
	switch {
	case err == nil:
		if existing != id {
			return fmt.Errorf("name %q already registered as %s", name, existing)
		}
		return tx.Commit()
	case errors.Is(err, sql.ErrNoRows):
		// fall through to insert
	default:
		return err
	}

	// id.Value() renders the canonical braced form for storage.
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO guid_registry (name, guid) VALUES (?, ?)", name, id); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	return tx.Commit()
}

// Lookup returns the GUID bound to a name.
func (dao *RegistryDAO) Lookup(ctx context.Context, name string) (guid.Guid, error) {
	var id guid.Guid
	err := dao.db.QueryRowContext(ctx,
		"SELECT guid FROM guid_registry WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return guid.Nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	if err != nil {
		return guid.Nil, err
	}
	return id, nil
}

// ReverseLookup returns the name bound to a GUID.
func (dao *RegistryDAO) ReverseLookup(ctx context.Context, id guid.Guid) (string, error) {
	var name string
	err := dao.db.QueryRowContext(ctx,
		"SELECT name FROM guid_registry WHERE guid = ?", id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, id)
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// Registry adds a read-through cache over the DAO. Bindings are immutable
// once registered, so cached entries never need invalidation.
type Registry struct {
	dao   *RegistryDAO
	mu    sync.RWMutex
	cache map[string]guid.Guid
}

// NewRegistry creates a Registry with the given DB connection string.
func NewRegistry(dsn string) (*Registry, error) {
	dao, err := NewRegistryDAO(dsn)
	if err != nil {
		return nil, err
	}

	return &Registry{
		dao:   dao,
		cache: make(map[string]guid.Guid),
	}, nil
}

// Resolve returns the GUID for a name, hitting the database only on the
// first request per name. Thread safe.
func (r *Registry) Resolve(ctx context.Context, name string) (guid.Guid, error) {
	// Fast path with read lock: check if the binding is cached.
	r.mu.RLock()
	id, ok := r.cache[name]
	r.mu.RUnlock()

	if ok {
		return id, nil
	}

	id, err := r.dao.Lookup(ctx, name)
	if err != nil {
		return guid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double check in case another goroutine cached the binding in between locks.
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}
	r.cache[name] = id
	return id, nil
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	dsn := "guid:123456@tcp(127.0.0.1:3306)/guid_db?parseTime=true"

	ctx := context.Background()

	registry, err := NewRegistry(dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	if err := registry.dao.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	bindings := map[string]guid.Guid{
		"audio.capture":  guid.MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}"),
		"video.render":   guid.MustParse("{D1B24A4E-0779-4B7A-9E41-7A038B847B22}"),
		"storage.volume": guid.MustParse("{53F5630D-B6BF-11D0-94F2-00A0C91EFB8B}"),
	}

	for name, id := range bindings {
		if err := registry.dao.Register(ctx, name, id); err != nil {
			log.Fatalf("register %s: %v", name, err)
		}
		log.Printf("registered %s = %s", name, id)
	}

	for name := range bindings {
		id, err := registry.Resolve(ctx, name)
		if err != nil {
			log.Fatalf("resolve %s: %v", name, err)
		}
		owner, err := registry.dao.ReverseLookup(ctx, id)
		if err != nil {
			log.Fatalf("reverse lookup %s: %v", id, err)
		}
		log.Printf("resolved %s -> %s (owner %s)", name, id, owner)
	}
}
