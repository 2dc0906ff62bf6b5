package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/princinho/estudiobackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm on a sqlmock connection that matches statements
// exactly, placeholders included.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestRowStoreList(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.StudioService](db)

	mock.ExpectQuery("SELECT id, foto, nombre, descripcion FROM nuestros_servicios").
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto", "nombre", "descripcion"}).
			AddRow("s1", "http://media.test/a.png", "Branding", nil).
			AddRow("s2", nil, "Logos", "Marca"))

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "s1", items[0].ID)
	assert.Equal(t, "Branding", *items[0].Nombre)
	assert.Nil(t, items[0].Descripcion)
	assert.Nil(t, items[1].Foto)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowStoreListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.Logo](db)

	mock.ExpectQuery("SELECT id, foto FROM logo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto"}))

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRowStoreCreate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.WorkExample](db)

	price := 40.0
	row := &models.WorkExample{Foto: strPtr("http://media.test/w.png"), Nombre: strPtr("Taza"), Precio: &price}
	mock.ExpectQuery("INSERT INTO ejemplos_trabajos (id, foto, nombre, descripcion, precio) VALUES ($1, $2, $3, $4, $5) RETURNING id, foto, nombre, descripcion, precio").
		WithArgs(sqlmock.AnyArg(), "http://media.test/w.png", "Taza", nil, 40.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto", "nombre", "descripcion", "precio"}).
			AddRow("w1", "http://media.test/w.png", "Taza", nil, 40.0))

	out, err := store.Create(context.Background(), row)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "w1", out.ID)
	assert.Equal(t, 40.0, *out.Precio)
	// the id is issued before the insert
	assert.Len(t, row.ID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowStoreUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.Logo](db)

	const q = "UPDATE logo SET foto = $1 WHERE id = $2 RETURNING id, foto"
	mock.ExpectQuery(q).
		WithArgs("http://media.test/b.png", "l1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto"}).AddRow("l1", "http://media.test/b.png"))

	out, err := store.Update(context.Background(), &models.Logo{Photo: models.Photo{ID: "l1", Foto: strPtr("http://media.test/b.png")}})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "http://media.test/b.png", *out.Foto)

	mock.ExpectQuery(q).
		WithArgs("x", "ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto"}))

	out, err = store.Update(context.Background(), &models.Logo{Photo: models.Photo{ID: "ghost", Foto: strPtr("x")}})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowStoreRequestValuesAreBound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.Logo](db)

	hostile := "x'); DROP TABLE logo; --"
	mock.ExpectQuery("UPDATE logo SET foto = $1 WHERE id = $2 RETURNING id, foto").
		WithArgs(hostile, hostile).
		WillReturnRows(sqlmock.NewRows([]string{"id", "foto"}))
	mock.ExpectExec("DELETE FROM logo WHERE id = $1").
		WithArgs(hostile).
		WillReturnResult(sqlmock.NewResult(0, 0))

	out, err := store.Update(context.Background(), &models.Logo{Photo: models.Photo{ID: hostile, Foto: &hostile}})
	require.NoError(t, err)
	assert.Nil(t, out)
	require.NoError(t, store.Delete(context.Background(), hostile))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowStoreDelete(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRowStore[models.AboutPhoto](db)

	mock.ExpectExec("DELETE FROM sobre_nosotros WHERE id = $1").
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.Delete(context.Background(), "a1"))

	down := errors.New("connection reset")
	mock.ExpectExec("DELETE FROM sobre_nosotros WHERE id = $1").
		WithArgs("a2").
		WillReturnError(down)
	err := store.Delete(context.Background(), "a2")
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "delete sobre_nosotros")
	assert.NoError(t, mock.ExpectationsWereMet())
}
