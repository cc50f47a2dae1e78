package audit

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"storage-audit/core/catalog"
	"storage-audit/feature/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestApp(t *testing.T, runs RunLister) (*fiber.App, *catalog.Store) {
	store := catalog.NewStore(catalog.Config{OutputDir: t.TempDir()})
	app := fiber.New()
	NewHandler(catalog.NewCache(store, 0), runs, zap.NewNop()).RegisterRoutes(app)
	return app, store
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestHandleLocal(t *testing.T) {
	app, store := setupTestApp(t, nil)

	status, body := get(t, app, "/audit/local")
	assert.Equal(t, 404, status)
	assert.Contains(t, body["error"], "record not found")

	require.NoError(t, store.WriteLocal(catalog.NewLocalCatalog([]string{"10", "2"})))
	status, body = get(t, app, "/audit/local")
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(1), body["version"])
	assert.Equal(t, []any{"2", "10"}, body["objects"])
}

func TestHandleRemote(t *testing.T) {
	app, store := setupTestApp(t, nil)

	remote := catalog.NewRemoteCatalog("3")
	remote.Bags["dynamic:channel:42"] = []string{"1"}
	require.NoError(t, store.WriteRemote("42", remote))

	status, body := get(t, app, "/audit/remote?bag=42")
	assert.Equal(t, 200, status)
	assert.Equal(t, "3", body["bucket"])

	status, _ = get(t, app, "/audit/remote")
	assert.Equal(t, 404, status)

	status, body = get(t, app, "/audit/remote?bag=abc")
	assert.Equal(t, 400, status)
	assert.NotEmpty(t, body["error"])
}

func TestHandleDiff(t *testing.T) {
	app, store := setupTestApp(t, nil)

	require.NoError(t, store.WriteDiff("", &catalog.DiffReport{
		Version:              catalog.SchemaVersion,
		UnexpectedLocal:      []string{"9"},
		MissingObjectsPerBag: map[string][]string{"bag1": {"3"}},
		MissingObjectsTotal:  1,
		UnexpectedLocalTotal: 1,
	}))

	status, body := get(t, app, "/audit/diff")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"9"}, body["unexpectedLocal"])
	assert.Equal(t, float64(1), body["missingObjectsTotal"])

	status, _ = get(t, app, "/audit/diff?bag=4.2")
	assert.Equal(t, 400, status)
}

func TestHandleDiff_Malformed(t *testing.T) {
	app, store := setupTestApp(t, nil)
	require.NoError(t, os.WriteFile(store.DiffPath(""), []byte("{not json"), 0o644))

	status, body := get(t, app, "/audit/diff")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "failed to parse")
}

func TestHandleHistory_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	status, _ := get(t, app, "/audit/history")
	assert.Equal(t, 503, status)
}

func TestHandleHistory(t *testing.T) {
	db, mock := setupMockDB(t)
	app, _ := setupTestApp(t, history.NewRepository(db))

	rows := sqlmock.NewRows([]string{"id", "command", "bucket", "bag_filter", "bags", "objects", "missing_objects", "unexpected_local", "created_at"}).
		AddRow("r1", "diff", "3", "", 2, 10, 1, 0, time.Now())
	mock.ExpectQuery("SELECT \\* FROM `audit_runs`").WithArgs(2).WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/audit/history?limit=2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var runs []history.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].ID)
	assert.Equal(t, 1, runs[0].MissingObjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleHistory_InvalidLimit(t *testing.T) {
	db, _ := setupMockDB(t)
	app, _ := setupTestApp(t, history.NewRepository(db))

	for _, target := range []string{"/audit/history?limit=0", "/audit/history?limit=x"} {
		status, _ := get(t, app, target)
		assert.Equal(t, 400, status, target)
	}
}
