package image2gb

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// AssetDB is the catalog of exported assets, keyed by asset name. It
// remembers where each asset came from and the CRC of that source so a
// scan can skip images that have not changed.
type AssetDB struct {
	db *sql.DB
}

type AssetRecord struct {
	Name   string
	Source string
	CRC    string
	Bank   int
	Tiles  int
	Total  int
	Width  int
	Height int
}

func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, name STRING NOT NULL UNIQUE, source STRING NOT NULL, crc TEXT NOT NULL, bank INTEGER NOT NULL, tiles INTEGER NOT NULL, total INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Save inserts or replaces the record for an asset.
func (db *AssetDB) Save(r *AssetRecord) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO asset (name, source, crc, bank, tiles, total, width, height) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		r.Name, r.Source, r.CRC, r.Bank, r.Tiles, r.Total, r.Width, r.Height); err != nil {
		return err
	}
	return nil
}

// FindCRCBySource returns the recorded source CRC for a file, or the
// empty string if it has never been exported.
func (db *AssetDB) FindCRCBySource(source string) (string, error) {
	var crc string
	switch err := db.db.QueryRow("SELECT crc FROM asset WHERE source = ?", source).Scan(&crc); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return crc, nil
	default:
		return "", err
	}
}

// List returns every cataloged asset, ordered by name.
func (db *AssetDB) List() ([]AssetRecord, error) {
	rows, err := db.db.Query("SELECT name, source, crc, bank, tiles, total, width, height FROM asset ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AssetRecord
	for rows.Next() {
		var r AssetRecord
		if err := rows.Scan(&r.Name, &r.Source, &r.CRC, &r.Bank, &r.Tiles, &r.Total, &r.Width, &r.Height); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
