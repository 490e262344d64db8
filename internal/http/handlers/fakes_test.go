package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("handler-test-secret")

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeTaskRepo mirrors the owner-scoping rules of the real repository and
// counts mutating calls so tests can assert malformed ids never reach it.
type fakeTaskRepo struct {
	mu          sync.Mutex
	tasks       map[string]*domain.Task
	writeCalls  int
	nextCreated time.Time
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task), nextCreated: time.Now()}
}

func (r *fakeTaskRepo) List(_ context.Context, ownerID string, f domain.TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Task
	for _, t := range r.tasks {
		if t.UserID != ownerID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(t.Title), needle) &&
				!strings.Contains(strings.ToLower(t.Description), needle) {
				continue
			}
		}
		cp := *t
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(res) {
		return []*domain.Task{}, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	t.ID = uuid.NewString()
	// strictly increasing creation times keep ordering deterministic
	r.nextCreated = r.nextCreated.Add(time.Millisecond)
	t.CreatedAt = r.nextCreated
	t.UpdatedAt = r.nextCreated
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, ownerID, taskID string, p domain.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, ownerID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

type testEnv struct {
	router *gin.Engine
	users  *fakeUserRepo
	tasks  *fakeTaskRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	h := &Handler{
		Users:  users,
		Tasks:  tasks,
		Auth:   service.NewAuthService(users),
		Secret: testSecret,
	}

	r := gin.New()
	r.Use(middleware.Session(testSecret))

	api := r.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/login", h.Login)
	auth.DELETE("/login", h.Logout)
	auth.POST("/register", h.Register)

	tg := api.Group("/tasks")
	tg.GET("", h.ListTasks)
	tg.POST("", h.CreateTask)
	tg.PUT("", h.UpdateTask)
	tg.DELETE("", h.DeleteTask)

	return &testEnv{router: r, users: users, tasks: tasks}
}

func (e *testEnv) do(t *testing.T, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account directly and returns its id and session token.
func (e *testEnv) register(t *testing.T, name, email, password string) (string, string) {
	t.Helper()
	svc := service.NewAuthService(e.users)
	u, err := svc.Register(context.Background(), name, email, password)
	require.NoError(t, err)
	tok, err := service.IssueToken(u.ID, u.Email, u.Name, testSecret)
	require.NoError(t, err)
	return u.ID, tok
}
