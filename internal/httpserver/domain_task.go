package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	taskHTTP "taskboard/internal/task/delivery/http"
	"taskboard/internal/task/repository"
	taskPostgre "taskboard/internal/task/repository/postgre"
	taskSQLite "taskboard/internal/task/repository/sqlite"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/sqldb"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo, err := srv.newTaskRepository()
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := taskUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/tasks
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered (store: %s)", srv.dbDriver)
	return nil
}

func (srv HTTPServer) newTaskRepository() (repository.Repository, error) {
	switch srv.dbDriver {
	case sqldb.DriverSQLite:
		return taskSQLite.New(srv.db, srv.l), nil
	case sqldb.DriverPostgres:
		return taskPostgre.New(srv.db, srv.l), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", srv.dbDriver)
	}
}
