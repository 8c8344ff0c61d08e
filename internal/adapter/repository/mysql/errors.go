package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleet-admin-backend/internal/domain/fleeterr"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// translate maps driver/ORM errors to the shared taxonomy. This is the only
// place backend error shapes are inspected.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fleeterr.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", fleeterr.ErrAborted, err)
	}
	var my *mysqldrv.MySQLError
	if errors.As(err, &my) && my.Number == 1062 {
		return fleeterr.ErrConflict
	}
	// sqlite (in-memory test databases) reports duplicates by message.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fleeterr.ErrConflict
	}
	return fmt.Errorf("%w: %v", fleeterr.ErrBackend, err)
}
