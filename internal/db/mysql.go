package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	connectAttempts   = 10
	connectRetryDelay = 3 * time.Second
)

// NewMySQL returns a connected GORM DB instance, retrying at a fixed
// interval while the database comes up. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		log.Printf("connect mysql (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(connectRetryDelay)
	}
	return nil, fmt.Errorf("connect mysql: %w", err)
}
