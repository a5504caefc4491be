package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xy-planning-network/enumfield"
	"gorm.io/gorm"
)

// AddEnumColumn builds a Migration adding column to table,
// sized to f's max length and constrained to the values of f's Enum.
func AddEnumColumn(table, column string, f *enumfield.Field) Migration {
	return Migration{
		Key: fmt.Sprintf("add-enum-column:%s.%s", table, column),
		Executor: func(tx *gorm.DB) error {
			return tx.Exec(EnumColumnDDL(table, column, f)).Error
		},
	}
}

// AddEnumColumnFromDescriptor is AddEnumColumn for a Field stored as a YAML Descriptor,
// as written by enumfield.MarshalDescriptor.
//
// Migrations kept this way do not change when the Enum in application code does.
func AddEnumColumnFromDescriptor(table, column string, descriptor []byte) (Migration, error) {
	d, err := enumfield.UnmarshalDescriptor(descriptor)
	if err != nil {
		return Migration{}, err
	}

	f, err := enumfield.Reconstruct(d)
	if err != nil {
		return Migration{}, err
	}

	return AddEnumColumn(table, column, f), nil
}

// ChangeEnumColumn builds a Migration resizing column on table to f's max length
// and replacing its constraint with the values of f's Enum.
//
// The Migration's key includes the values, so each change of the Enum migrates once.
func ChangeEnumColumn(table, column string, f *enumfield.Field) Migration {
	t, c := ident(table), ident(column)
	constraint := ident(constraintName(table, column))

	return Migration{
		Key: fmt.Sprintf("change-enum-column:%s.%s:%s", table, column, strings.Join(f.Enum().Values(), ",")),
		Executor: func(tx *gorm.DB) error {
			for _, stmt := range []string{
				fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", t, constraint),
				fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", t, c, f.ColumnType()),
				fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", t, constraint, checkClause(column, f)),
			} {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// EnumColumnDDL is the statement adding column to table for f.
func EnumColumnDDL(table, column string, f *enumfield.Field) string {
	return fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN %s %s CONSTRAINT %s %s",
		ident(table),
		ident(column),
		f.ColumnType(),
		ident(constraintName(table, column)),
		checkClause(column, f),
	)
}

func checkClause(column string, f *enumfield.Field) string {
	values := f.Enum().Values()
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}

	return fmt.Sprintf("CHECK (%s IN (%s))", ident(column), strings.Join(quoted, ", "))
}

func constraintName(table, column string) string { return table + "_" + column + "_enum" }

func ident(name string) string { return pgx.Identifier{name}.Sanitize() }
