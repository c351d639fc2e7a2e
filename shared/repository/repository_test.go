package repository_test

import (
	"context"
	"regexp"
	"scams/infras/otel/mocks"
	"scams/infras/postgres"
	"scams/shared/dto"
	"scams/shared/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	OwnerID   int64     `db:"owner_id"`
	OwnerName string    `db:"owner_name" table:"owners" column:"name"`
	CreatedAt time.Time `db:"created_at" readonly:"true"`
}

func (widget) GetJoinQuery() string {
	return "JOIN owners ON owners.id = widgets.owner_id"
}

func newRepo(t *testing.T) (repository.Repository[widget], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[widget]("widget", "widgets", "id", conn, mocks.NewOtel()), mock
}

func TestInsertQuery(t *testing.T) {
	repo, _ := newRepo(t)

	assert.Equal(t, []string{"name", "owner_id"}, repo.InsertColumns)
	assert.Equal(t, "INSERT INTO widgets (name, owner_id) VALUES (:name, :owner_id) RETURNING id", repo.InsertQuery())
}

func TestSelectColumns(t *testing.T) {
	repo, _ := newRepo(t)

	assert.Equal(t,
		"widgets.id, widgets.name, widgets.owner_id, owners.name AS owner_name, widgets.created_at",
		repo.SelectColumns())
	assert.Equal(t, "widgets.id, owners.name AS owner_name", repo.SelectColumns("id", "owner_name"))
}

func TestSelectQuery(t *testing.T) {
	repo, _ := newRepo(t)

	filter := dto.FilterGroup{}
	filter.Add(dto.Eq("widgets", "owner_id", int64(3)))

	query, args := repo.SelectQuery(dto.QueryParams{Limit: 10, Offset: 20, SortBy: "widgets.name"}, filter)

	assert.Contains(t, query, "JOIN owners ON owners.id = widgets.owner_id")
	assert.Contains(t, query, "WHERE (widgets.owner_id = :owner_id)")
	assert.Contains(t, query, "ORDER BY widgets.name ASC, widgets.id ASC")
	assert.Contains(t, query, "LIMIT :limit OFFSET :offset")
	assert.Equal(t, map[string]any{"owner_id": int64(3), "limit": 10, "offset": 20}, args)
}

func TestSelectQuery_NoPagination(t *testing.T) {
	repo, _ := newRepo(t)

	query, args := repo.SelectQuery(dto.QueryParams{}, dto.FilterGroup{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "ORDER BY")
	assert.Empty(t, args)
}

func TestGet(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT widgets.id, widgets.name")).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "owner_name", "created_at"}).
			AddRow(int64(7), "projector", int64(3), "lab", created))

	filter := dto.FilterGroup{}
	filter.Add(dto.Eq("widgets", "id", int64(7)))

	got, err := repo.Get(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, widget{ID: 7, Name: "projector", OwnerID: 3, OwnerName: "lab", CreatedAt: created}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFoundReturnsZeroValue(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare("SELECT (.+) FROM widgets").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	filter := dto.FilterGroup{}
	filter.Add(dto.Eq("widgets", "id", int64(99)))

	got, err := repo.Get(context.Background(), filter)
	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestInsert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO widgets (name, owner_id) VALUES ($1, $2) RETURNING id")).
		ExpectQuery().
		WithArgs("projector", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := repo.Insert(context.Background(), widget{Name: "projector", OwnerID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET name = $1")).
		WithArgs("speaker", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	filter := dto.FilterGroup{}
	filter.Add(dto.Eq("widgets", "id", int64(7)))

	err := repo.Update(context.Background(), map[string]any{"name": "speaker"}, filter)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_RequiresFilter(t *testing.T) {
	repo, _ := newRepo(t)

	err := repo.Update(context.Background(), map[string]any{"name": "speaker"}, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestExist(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM widgets")).
		ExpectQuery().
		WithArgs("lab").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	filter := dto.FilterGroup{}
	filter.Add(dto.Eq("owners", "name", "lab"))

	exist, err := repo.Exist(context.Background(), filter)
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestSelectQuery_SortByPrimary(t *testing.T) {
	repo, _ := newRepo(t)

	query, _ := repo.SelectQuery(dto.QueryParams{SortBy: "widgets.id", SortDir: dto.SortDirDesc}, dto.FilterGroup{})

	assert.Contains(t, query, "ORDER BY widgets.id DESC")
	assert.NotContains(t, query, "widgets.id DESC,")
}
