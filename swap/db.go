package swap

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//StoreInitError - the store could not be created or opened
type StoreInitError struct {
	Path string
	Err  error
}

func (e *StoreInitError) Error() string {
	return fmt.Sprintf("database %v: %v", e.Path, e.Err)
}

func (e *StoreInitError) Unwrap() error {
	return e.Err
}

//Store - sqlite3 database of transferred files
type Store struct {
	path string
	db   *sql.DB
	ins  *sql.Stmt
}

//Open - opens or creates the store at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreInitError{Path: path, Err: err}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StoreInitError{Path: path, Err: err}
	}
	//sql.Open is lazy, the first statement creates the file
	if _, err := db.Exec(CREATETBL); err != nil {
		db.Close()
		return nil, &StoreInitError{Path: path, Err: err}
	}
	ins, err := db.Prepare(INSERT)
	if err != nil {
		db.Close()
		return nil, &StoreInitError{Path: path, Err: err}
	}

	return &Store{
		path: path,
		db:   db,
		ins:  ins,
	}, nil
}

//Path -
func (d *Store) Path() string {
	return d.path
}

//Close -
func (d *Store) Close() error {
	d.ins.Close()
	return d.db.Close()
}

//Exists - reports whether hash has been recorded
func (d *Store) Exists(hash string) (bool, error) {
	var one int
	err := d.db.QueryRow(EXISTS, hash).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

//InsertBatch - inserts all records in a single transaction
func (d *Store) InsertBatch(records []*Record) (err error) {
	if len(records) == 0 {
		return nil
	}
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt := tx.Stmt(d.ins)
	defer stmt.Close()
	for _, r := range records {
		if _, err = stmt.Exec(r.Hash, r.Source, r.Destination); err != nil {
			return fmt.Errorf("insert %v: %w", r.Hash, err)
		}
	}

	return tx.Commit()
}

//Count -
func (d *Store) Count() (count int, err error) {
	row := d.db.QueryRow(COUNT)
	err = row.Scan(&count)
	if err != nil {
		count = -1
		return
	}
	return
}
