// Package store holds the transactional write paths and read-side
// assembly for the Q&A domain: the vote ledger, answer acceptance, tag
// counters and notification side effects. Every multi-step mutation runs
// inside a single database transaction and every derived counter is
// mutated with a server-side expression, never read-modify-write.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
