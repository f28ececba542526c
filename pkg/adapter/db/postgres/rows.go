package postgres

import (
	"database/sql"
	"fmt"

	"github.com/momeni/clean-utils/pkg/core/repo"
	"gorm.io/gorm"
)

func exec(gdb *gorm.DB, stmt string, args ...any) (int64, error) {
	tt := gdb.Exec(stmt, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

func query(gdb *gorm.DB, stmt string, args ...any) (repo.Rows, error) {
	rows, err := gdb.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	return rowsAdapter{rows}, nil
}

type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// returned error may be checked by calling the Err() method
	_ = ra.Rows.Close()
}

func (ra rowsAdapter) Values() ([]any, error) {
	names, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals := make([]any, len(names))
	valPtrs := make([]any, 0, len(names))
	for i := range vals {
		valPtrs = append(valPtrs, &vals[i])
	}
	err = ra.Scan(valPtrs...)
	return vals, err
}
