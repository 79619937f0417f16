package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is embedded by the domain repositories and holds the shared GORM
// connection.
type Base struct {
	conn *gorm.DB
}

// NewBase wraps a GORM connection for embedding.
func NewBase(conn *gorm.DB) Base {
	return Base{conn: conn}
}

// DB returns the connection scoped to ctx. A nil ctx yields the bare
// connection.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.conn
	}
	return b.conn.WithContext(ctx)
}
