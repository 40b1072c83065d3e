package persist

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

type Persistable interface {
	Persist(tx Transaction) error
}

type Transaction interface {
	Insert(list ...interface{}) error
}

type InsertFunc func(...interface{}) error

func (f InsertFunc) Insert(list ...interface{}) error {
	return f(list...)
}

// InsertIgnoringDupes drops rows whose key is already taken in the
// transaction instead of failing the whole batch.
func InsertIgnoringDupes(t Transaction) Transaction {
	return InsertFunc(func(list ...interface{}) error {
		for _, row := range list {
			err := t.Insert(row)
			var sqliteError sqlite3.Error
			if errors.As(err, &sqliteError) {
				switch sqliteError.ExtendedCode {
				case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
					continue // silently ignore
				}
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
