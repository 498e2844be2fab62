package task

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (*gin.Engine, *mockTaskRepo, *mockProjectReader) {
	gin.SetMode(gin.TestMode)
	tasks := new(mockTaskRepo)
	projects := new(mockProjectReader)
	handler := NewHandler(NewService(tasks, projects))

	r := gin.New()
	api := r.Group("/api")
	handler.RegisterRoutes(api)
	return r, tasks, projects
}

func TestHandler_ListPaginated_RejectsGarbageQuery(t *testing.T) {
	r, tasks, _ := newTestRouter()

	for _, target := range []string{
		"/api/projects/1/tasks/paginated?page=abc",
		"/api/projects/1/tasks/paginated?size=abc",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST", target)
	}

	tasks.AssertNotCalled(t, "ListByProjectPaginated",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ListPaginated_BadProjectID(t *testing.T) {
	r, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/abc/tasks/paginated", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
