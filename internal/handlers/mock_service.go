package handlers

import (
	"context"
	"net/http"

	"todo_backend/internal/models"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       string
	parseErr      error
	user          models.User
	userErr       error

	lastSignUp      service.SignUpInput
	lastGenEmail    string
	lastGenPassword string
	lastParseToken  string
	lastGetUserID   string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) (models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) GetUser(ctx context.Context, id string) (models.User, error) {
	m.lastGetUserID = id
	return m.user, m.userErr
}

type mockTodo struct {
	createRes models.Todo
	createErr error
	updateRes models.Todo
	updateErr error
	deleteErr error
	listRes   []models.Todo
	listErr   error

	lastUserID  string
	lastContent string
	lastUpdate  service.UpdateTodoInput
	lastDelete  string
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockTodo) Create(ctx context.Context, userID, content string) (models.Todo, error) {
	m.createCalls++
	m.lastUserID, m.lastContent = userID, content
	return m.createRes, m.createErr
}
func (m *mockTodo) Update(ctx context.Context, userID string, in service.UpdateTodoInput) (models.Todo, error) {
	m.updateCalls++
	m.lastUserID, m.lastUpdate = userID, in
	return m.updateRes, m.updateErr
}
func (m *mockTodo) Delete(ctx context.Context, userID, todoID string) error {
	m.deleteCalls++
	m.lastUserID, m.lastDelete = userID, todoID
	return m.deleteErr
}
func (m *mockTodo) List(ctx context.Context, userID string) ([]models.Todo, error) {
	m.lastUserID = userID
	return m.listRes, m.listErr
}

type mockStats struct {
	stats      models.TodoStats
	err        error
	lastUserID string
}

func (m *mockStats) GetStats(ctx context.Context, userID string) (models.TodoStats, error) {
	m.lastUserID = userID
	return m.stats, m.err
}

type mockActivityLog struct {
	resp       []models.ActivityEvent
	err        error
	lastUserID string
	lastFilter service.LogFilter
}

func (m *mockActivityLog) List(ctx context.Context, userID string, f service.LogFilter) ([]models.ActivityEvent, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// withAuth copies a bearer header onto req.
func withAuth(req *http.Request, token string) *http.Request {
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
