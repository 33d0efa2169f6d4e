package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/migration"
	"taskboard/internal/task"
	taskHTTP "taskboard/internal/task/delivery/http"
	"taskboard/internal/task/repository/sqlite"
	"taskboard/internal/task/usecase"
	"taskboard/pkg/log"
	"taskboard/pkg/sqldb"
)

type taskBody struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	IsComplete bool   `json:"isComplete"`
}

// ── Test Helpers ───────────────────────────────────────────────────────────

// newEngine wires the real stack over a fresh in-memory database.
func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := sqldb.Open(ctx, sqldb.Config{Driver: sqldb.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = migration.Up(ctx, db, sqldb.DriverSQLite)
	require.NoError(t, err)

	l := log.NewNop()
	uc := usecase.New(sqlite.New(db, l), l)

	engine := gin.New()
	taskHTTP.RegisterRoutes(engine.Group("/api"), taskHTTP.New(l, uc))
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createTask(t *testing.T, engine *gin.Engine, title string) taskBody {
	t.Helper()
	w := do(engine, http.MethodPost, "/api/tasks", fmt.Sprintf(`{"title":%q}`, title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created taskBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func listTasks(t *testing.T, engine *gin.Engine) []taskBody {
	t.Helper()
	w := do(engine, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []taskBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	return tasks
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body["error"]
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestListEmpty(t *testing.T) {
	w := do(newEngine(t), http.MethodGet, "/api/tasks", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateDraftKickoffBrief(t *testing.T) {
	engine := newEngine(t)

	w := do(engine, http.MethodPost, "/api/tasks", `{"title":"Draft kickoff brief"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Draft kickoff brief"`)
	assert.Contains(t, w.Body.String(), `"isComplete":false`)

	var created taskBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, fmt.Sprintf("/api/tasks/%d", created.ID), w.Header().Get("Location"))

	tasks := listTasks(t, engine)
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestCreateAcceptsCapitalisedKey(t *testing.T) {
	w := do(newEngine(t), http.MethodPost, "/api/tasks", `{"Title":"New Task"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "New Task")
}

func TestCreateThenGet(t *testing.T) {
	engine := newEngine(t)

	for _, title := range []string{"New Task", "  spaced  ", "émoji ✅"} {
		created := createTask(t, engine, title)

		w := do(engine, http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var got taskBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, title, got.Title)
		assert.False(t, got.IsComplete)
	}
}

func TestCreateBlankTitle(t *testing.T) {
	engine := newEngine(t)
	createTask(t, engine, "Seed Task")

	for _, title := range []string{"", " ", "\t\n"} {
		w := do(engine, http.MethodPost, "/api/tasks", fmt.Sprintf(`{"title":%q}`, title))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title cannot be empty.", errorMessage(t, w))
	}

	w := do(engine, http.MethodPost, "/api/tasks", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Len(t, listTasks(t, engine), 1)
}

func TestCreateWithoutBody(t *testing.T) {
	engine := newEngine(t)

	w := do(engine, http.MethodPost, "/api/tasks", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", errorMessage(t, w))

	w = do(engine, http.MethodPost, "/api/tasks", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownID(t *testing.T) {
	engine := newEngine(t)
	created := createTask(t, engine, "Seed Task")

	for _, path := range []string{
		fmt.Sprintf("/api/tasks/%d", created.ID+1),
		"/api/tasks/0",
		"/api/tasks/abc",
	} {
		w := do(engine, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
	}
}

func TestUpdate(t *testing.T) {
	engine := newEngine(t)
	created := createTask(t, engine, "New Task")

	w := do(engine, http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), `{"title":"Updated Task"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated taskBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Task", updated.Title)
	assert.Equal(t, created.IsComplete, updated.IsComplete)

	w = do(engine, http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), "")
	assert.Contains(t, w.Body.String(), "Updated Task")
}

func TestUpdateBlankTitleKeepsOriginal(t *testing.T) {
	engine := newEngine(t)
	created := createTask(t, engine, "Original title")

	w := do(engine, http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be empty.", errorMessage(t, w))

	w = do(engine, http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), "")
	assert.Contains(t, w.Body.String(), `"title":"Original title"`)
}

func TestUpdateUnknownID(t *testing.T) {
	w := do(newEngine(t), http.MethodPut, "/api/tasks/9999", `{"title":"Updated Task"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteTwice(t *testing.T) {
	engine := newEngine(t)
	created := createTask(t, engine, "New Task")
	path := fmt.Sprintf("/api/tasks/%d", created.ID)

	w := do(engine, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(engine, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Empty(t, listTasks(t, engine))
}

func TestListKeepsInsertionOrder(t *testing.T) {
	engine := newEngine(t)
	a := createTask(t, engine, "a")
	b := createTask(t, engine, "b")
	c := createTask(t, engine, "c")

	do(engine, http.MethodPut, fmt.Sprintf("/api/tasks/%d", a.ID), `{"title":"a2"}`)

	tasks := listTasks(t, engine)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

// failingUseCase returns the same error from every method.
type failingUseCase struct{ err error }

func (f failingUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{}, f.err
}
func (f failingUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	return task.DetailOutput{}, f.err
}
func (f failingUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, f.err
}
func (f failingUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, f.err
}
func (f failingUseCase) Delete(ctx context.Context, id int64) error { return f.err }

func TestStoreFailureIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	taskHTTP.RegisterRoutes(engine.Group("/api"), taskHTTP.New(log.NewNop(), failingUseCase{err: fmt.Errorf("boom")}))

	cases := []struct{ method, path, body string }{
		{http.MethodGet, "/api/tasks", ""},
		{http.MethodGet, "/api/tasks/1", ""},
		{http.MethodPost, "/api/tasks", `{"title":"x"}`},
		{http.MethodPut, "/api/tasks/1", `{"title":"x"}`},
		{http.MethodDelete, "/api/tasks/1", ""},
	}
	for _, tc := range cases {
		w := do(engine, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.method+" "+tc.path)
		assert.Equal(t, "Internal server error.", errorMessage(t, w))
	}
}
