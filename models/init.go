package models

import (
	"fmt"
	"postlikes/db"
)

// Init creates or updates the schema. Posts must exist before likes can reference them.
func Init() error {
	for _, model := range []any{&Post{}, &Like{}} {
		if err := db.Instance.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}
	return nil
}
