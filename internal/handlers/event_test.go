package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/calendar-api/internal/database"
	"github.com/yukikurage/calendar-api/internal/dto"
	"github.com/yukikurage/calendar-api/internal/middleware"
	"github.com/yukikurage/calendar-api/internal/models"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/services"
	"github.com/yukikurage/calendar-api/internal/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokenA string
	tokenB string
}

// setupAPITestEnv wires the full protected API surface with two registered
// users so ownership isolation can be exercised end to end.
func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Todo{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	tokens := token.NewManager("test-secret", time.Hour)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	eventService := services.NewEventService(eventRepo)
	todoService := services.NewTodoService(todoRepo)

	eventHandler := NewEventHandler(eventService)
	todoHandler := NewTodoHandler(todoService)

	r := gin.New()
	events := r.Group("/api/events")
	events.Use(middleware.RequireAuth(tokens))
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/range", eventHandler.ListEventsByRange)
		events.GET("/date/:eventDate", eventHandler.ListEventsByDate)
		events.POST("", eventHandler.CreateEvent)
		events.GET("/:id", eventHandler.GetEvent)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
	}
	todos := r.Group("/api/todos")
	todos.Use(middleware.RequireAuth(tokens))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}

	_, tokenA, err := authService.Register(services.RegisterInput{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       "A",
		LastName:        "One",
	})
	require.NoError(t, err)

	_, tokenB, err := authService.Register(services.RegisterInput{
		Email:           "b@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       "B",
		LastName:        "Two",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return apiTestEnv{
		db:     db,
		router: r,
		tokenA: tokenA,
		tokenB: tokenB,
	}
}

// doJSON sends an authenticated JSON request through the router.
func doJSON(t *testing.T, r *gin.Engine, method, path, tokenString string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if tokenString != "" {
		req.Header.Set("Authorization", "Bearer "+tokenString)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func standupPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Standup",
		"eventDate": "2026-02-09",
		"startTime": "09:00",
		"endTime":   "09:15",
	}
}

func createEvent(t *testing.T, env apiTestEnv, tokenString string, payload map[string]interface{}) models.Event {
	t.Helper()

	w := doJSON(t, env.router, http.MethodPost, "/api/events", tokenString, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.NotNil(t, response.Event)
	return *response.Event
}

func TestEventHandler_Create(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())
	require.Equal(t, "Standup", event.Title)
	require.Equal(t, "2026-02-09", event.EventDate)
	require.Equal(t, "09:00", event.StartTime)
	require.Equal(t, "09:15", event.EndTime)

	// Defaults applied when omitted
	require.Equal(t, "Personal", event.Category)
	require.Equal(t, "#667eea", event.Color)
}

func TestEventHandler_CreateValidation(t *testing.T) {
	env := setupAPITestEnv(t)

	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(p map[string]interface{}) { delete(p, "title") },
			message: "Title, date, and times are required",
		},
		{
			name:    "missing times",
			mutate:  func(p map[string]interface{}) { delete(p, "startTime") },
			message: "Title, date, and times are required",
		},
		{
			name:    "start equals end",
			mutate:  func(p map[string]interface{}) { p["endTime"] = "09:00" },
			message: "Start time must be before end time",
		},
		{
			name:    "start after end",
			mutate:  func(p map[string]interface{}) { p["startTime"] = "10:00" },
			message: "Start time must be before end time",
		},
		{
			name:    "bad date format",
			mutate:  func(p map[string]interface{}) { p["eventDate"] = "02/09/2026" },
			message: "Date must be in YYYY-MM-DD format",
		},
		{
			name:    "bad time format",
			mutate:  func(p map[string]interface{}) { p["startTime"] = "9am" },
			message: "Time must be in HH:MM format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := standupPayload()
			tt.mutate(payload)

			w := doJSON(t, env.router, http.MethodPost, "/api/events", env.tokenA, payload)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			require.Equal(t, false, response["success"])
			require.Equal(t, tt.message, response["message"])
		})
	}
}

func TestEventHandler_ListByDateLifecycle(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())

	w := doJSON(t, env.router, http.MethodGet, "/api/events/date/2026-02-09", env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Events, 1)
	require.Equal(t, event.ID, list.Events[0].ID)

	w = doJSON(t, env.router, http.MethodDelete, "/api/events/"+itoa(event.ID), env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"Event deleted successfully"}`, w.Body.String())

	w = doJSON(t, env.router, http.MethodGet, "/api/events/date/2026-02-09", env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list.Events)
}

func TestEventHandler_ListByRange(t *testing.T) {
	env := setupAPITestEnv(t)

	first := standupPayload()
	second := standupPayload()
	second["title"] = "Retro"
	second["eventDate"] = "2026-02-13"
	outside := standupPayload()
	outside["title"] = "Planning"
	outside["eventDate"] = "2026-03-01"

	createEvent(t, env, env.tokenA, first)
	createEvent(t, env, env.tokenA, second)
	createEvent(t, env, env.tokenA, outside)

	w := doJSON(t, env.router, http.MethodGet, "/api/events/range?startDate=2026-02-01&endDate=2026-02-28", env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Events, 2)
	require.Equal(t, "Standup", list.Events[0].Title)
	require.Equal(t, "Retro", list.Events[1].Title)

	w = doJSON(t, env.router, http.MethodGet, "/api/events/range?startDate=2026-02-01", env.tokenA, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Start date and end date are required"}`, w.Body.String())
}

func TestEventHandler_OwnershipIsolation(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())
	id := itoa(event.ID)
	notFound := `{"success":false,"message":"Event not found"}`

	// User B sees not-found on every verb against A's event
	w := doJSON(t, env.router, http.MethodGet, "/api/events/"+id, env.tokenB, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, notFound, w.Body.String())

	w = doJSON(t, env.router, http.MethodPut, "/api/events/"+id, env.tokenB, map[string]interface{}{"title": "Hijacked"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, notFound, w.Body.String())

	w = doJSON(t, env.router, http.MethodDelete, "/api/events/"+id, env.tokenB, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, notFound, w.Body.String())

	// B's listings never contain A's rows
	w = doJSON(t, env.router, http.MethodGet, "/api/events", env.tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list.Events)

	// A's event is untouched
	w = doJSON(t, env.router, http.MethodGet, "/api/events/"+id, env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Standup", got.Event.Title)
}

func TestEventHandler_PartialUpdate(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())

	w := doJSON(t, env.router, http.MethodPut, "/api/events/"+itoa(event.ID), env.tokenA, map[string]interface{}{
		"title": "Daily Standup",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Daily Standup", response.Event.Title)

	// Untouched fields survive the partial update
	require.Equal(t, "2026-02-09", response.Event.EventDate)
	require.Equal(t, "09:00", response.Event.StartTime)
	require.Equal(t, "09:15", response.Event.EndTime)
	require.Equal(t, "Personal", response.Event.Category)
}

func TestEventHandler_UpdateTimeOrder(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())

	w := doJSON(t, env.router, http.MethodPut, "/api/events/"+itoa(event.ID), env.tokenA, map[string]interface{}{
		"startTime": "10:00",
		"endTime":   "09:30",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Start time must be before end time"}`, w.Body.String())

	// The row is unchanged after the rejected update
	w = doJSON(t, env.router, http.MethodGet, "/api/events/"+itoa(event.ID), env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "09:00", got.Event.StartTime)
	require.Equal(t, "09:15", got.Event.EndTime)
}

func TestEventHandler_EmptyUpdateIsNoOp(t *testing.T) {
	env := setupAPITestEnv(t)

	event := createEvent(t, env, env.tokenA, standupPayload())

	w := doJSON(t, env.router, http.MethodPut, "/api/events/"+itoa(event.ID), env.tokenA, map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Standup", response.Event.Title)
	require.Equal(t, "09:00", response.Event.StartTime)
}

func TestEventHandler_ListOrdering(t *testing.T) {
	env := setupAPITestEnv(t)

	later := standupPayload()
	later["title"] = "Lunch"
	later["startTime"] = "12:00"
	later["endTime"] = "13:00"
	earlier := standupPayload()
	nextDay := standupPayload()
	nextDay["title"] = "Review"
	nextDay["eventDate"] = "2026-02-10"

	createEvent(t, env, env.tokenA, later)
	createEvent(t, env, env.tokenA, nextDay)
	createEvent(t, env, env.tokenA, earlier)

	w := doJSON(t, env.router, http.MethodGet, "/api/events", env.tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Events, 3)
	require.Equal(t, "Standup", list.Events[0].Title)
	require.Equal(t, "Lunch", list.Events[1].Title)
	require.Equal(t, "Review", list.Events[2].Title)
}
