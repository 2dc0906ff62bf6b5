package database

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/models"
	"gorm.io/gorm"
)

// RowRepository is the item-level store behind the /api/<resource> routes.
// Update returns nil, nil when no row has the given id.
type RowRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, row *T) (*T, error)
	Update(ctx context.Context, row *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// RowStore issues one parameterized statement per operation. Table and
// column names come from the model, never from the request.
type RowStore[T any, PT interface {
	*T
	models.Row
}] struct {
	db      *gorm.DB
	table   string
	columns []string
}

func NewRowStore[T any, PT interface {
	*T
	models.Row
}](db *gorm.DB) *RowStore[T, PT] {
	var zero T
	row := PT(&zero)
	return &RowStore[T, PT]{db: db, table: row.TableName(), columns: row.Columns()}
}

func (s *RowStore[T, PT]) selectList() string {
	return "id, " + strings.Join(s.columns, ", ")
}

func (s *RowStore[T, PT]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	err := s.db.WithContext(ctx).
		Raw("SELECT " + s.selectList() + " FROM " + s.table).
		Scan(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", s.table)
	}
	return out, nil
}

func (s *RowStore[T, PT]) Create(ctx context.Context, row *T) (*T, error) {
	PT(row).SetRowID(uuid.NewString())
	holders := strings.TrimSuffix(strings.Repeat("?, ", len(s.columns)+1), ", ")
	q := "INSERT INTO " + s.table + " (" + s.selectList() + ") VALUES (" + holders + ") RETURNING " + s.selectList()
	args := append([]any{PT(row).RowID()}, PT(row).Values()...)

	var out T
	if err := s.db.WithContext(ctx).Raw(q, args...).Scan(&out).Error; err != nil {
		return nil, errors.Wrapf(err, "insert %s", s.table)
	}
	return &out, nil
}

func (s *RowStore[T, PT]) Update(ctx context.Context, row *T) (*T, error) {
	sets := make([]string, len(s.columns))
	for i, c := range s.columns {
		sets[i] = c + " = ?"
	}
	q := "UPDATE " + s.table + " SET " + strings.Join(sets, ", ") + " WHERE id = ? RETURNING " + s.selectList()
	args := append(PT(row).Values(), PT(row).RowID())

	var out T
	res := s.db.WithContext(ctx).Raw(q, args...).Scan(&out)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "update %s", s.table)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

func (s *RowStore[T, PT]) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Exec("DELETE FROM "+s.table+" WHERE id = ?", id).Error
	return errors.Wrapf(err, "delete %s", s.table)
}
