package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"

	"github.com/CODINGDONG1211/Lifestyleapp/middleware"
	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/repository"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
	"github.com/CODINGDONG1211/Lifestyleapp/streak"
)

var jwtSecret = []byte("test-secret")

// setupTestRouter builds the full API router over an in-memory user table
// and a file document store in a temp dir.
func setupTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		t.Fatalf("Failed to create user repository: %v", err)
	}

	documents := repository.NewFileDocuments(t.TempDir())
	t.Cleanup(func() { documents.Close() })

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only log errors in tests
	}))

	sessions := store.NewManager(documents, logger, 10*time.Millisecond)
	t.Cleanup(sessions.CloseAll)

	return NewRouter(RouterConfig{
		UserRepo:    userRepo,
		Sessions:    sessions,
		Logger:      logger,
		JWTSecret:   jwtSecret,
		TokenTTL:    24 * time.Hour,
		CORSOrigins: []string{"*"},
	})
}

// generateTestToken creates a valid JWT token for testing
func generateTestToken(username string, userID int) string {
	claims := &middleware.Claims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString(jwtSecret)
	return tokenString
}

// doJSON performs an authenticated JSON request against the router.
func doJSON(router *chi.Mux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ==================== AUTHENTICATION TESTS ====================

func TestRegister_Success(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)

	if response["username"] != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", response["username"])
	}
}

func TestRegister_MissingFields(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "",
		Password: "password123",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := setupTestRouter(t)

	first := doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})
	if first.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", first.Code)
	}

	w := doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "testuser",
		Password: "password456",
	})

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	router := setupTestRouter(t)

	doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	w := doJSON(router, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response models.LoginResponse
	json.NewDecoder(w.Body).Decode(&response)

	if response.Token == "" {
		t.Error("Expected a token in the response")
	}
	if response.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", response.Username)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := setupTestRouter(t)

	doJSON(router, "POST", "/api/auth/register", "", models.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	w := doJSON(router, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: "testuser",
		Password: "wrongpassword",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/api/tasks/", "/api/habits/", "/api/workouts/", "/api/events/"} {
		w := doJSON(router, "GET", path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected status 401, got %d", path, w.Code)
		}
	}
}

func TestLogout_EndsSession(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "Buy milk"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	w = doJSON(router, "POST", "/api/auth/logout", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}

	// The session was flushed on logout; a new one loads the same state.
	w = doJSON(router, "GET", "/api/tasks/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var tasks []models.Task
	json.NewDecoder(w.Body).Decode(&tasks)
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("Expected the task to survive logout, got %+v", tasks)
	}
}

// ==================== TASK TESTS ====================

func TestCreateTask_Success(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{
		Title:    "Buy milk",
		Priority: "high",
		Date:     time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var task models.Task
	json.NewDecoder(w.Body).Decode(&task)

	if task.ID == "" {
		t.Error("Expected a generated task id")
	}
	if task.Priority != "high" {
		t.Errorf("Expected priority 'high', got '%s'", task.Priority)
	}
}

func TestCreateTask_DefaultPriority(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "Buy milk"})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var task models.Task
	json.NewDecoder(w.Body).Decode(&task)

	if task.Priority != models.PriorityMedium {
		t.Errorf("Expected default priority 'medium', got '%s'", task.Priority)
	}
}

func TestCreateTask_EmptyTitleRejected(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	// The collection must be unchanged.
	w = doJSON(router, "GET", "/api/tasks/", token, nil)
	var tasks []models.Task
	json.NewDecoder(w.Body).Decode(&tasks)
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks after rejected create, got %d", len(tasks))
	}
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{
		Title:    "Buy milk",
		Priority: "low",
	})
	var task models.Task
	json.NewDecoder(w.Body).Decode(&task)

	completed := true
	w = doJSON(router, "PUT", "/api/tasks/"+task.ID, token, models.TaskPatch{Completed: &completed})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var updated models.Task
	json.NewDecoder(w.Body).Decode(&updated)

	if !updated.Completed {
		t.Error("Expected task to be completed")
	}
	if updated.Title != "Buy milk" || updated.Priority != "low" {
		t.Errorf("Expected untouched fields to survive, got %+v", updated)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	completed := true
	w := doJSON(router, "PUT", "/api/tasks/nope", token, models.TaskPatch{Completed: &completed})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeleteTask(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "Buy milk"})
	var task models.Task
	json.NewDecoder(w.Body).Decode(&task)

	w = doJSON(router, "DELETE", "/api/tasks/"+task.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}

	w = doJSON(router, "DELETE", "/api/tasks/"+task.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", w.Code)
	}
}

func TestUsers_AreIsolated(t *testing.T) {
	router := setupTestRouter(t)
	alice := generateTestToken("alice", 1)
	bob := generateTestToken("bob", 2)

	doJSON(router, "POST", "/api/tasks/", alice, models.CreateTaskRequest{Title: "Alice's task"})

	w := doJSON(router, "GET", "/api/tasks/", bob, nil)
	var tasks []models.Task
	json.NewDecoder(w.Body).Decode(&tasks)

	if len(tasks) != 0 {
		t.Errorf("Expected bob to see no tasks, got %d", len(tasks))
	}
}

// ==================== HABIT TESTS ====================

func TestCreateHabit_Defaults(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/habits/", token, models.CreateHabitRequest{
		Name:   "Read",
		Target: 30,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var habit models.Habit
	json.NewDecoder(w.Body).Decode(&habit)

	if habit.Streak != 0 {
		t.Errorf("Expected new habit streak 0, got %d", habit.Streak)
	}
	if len(habit.CompletedDays) != 0 {
		t.Errorf("Expected no completed days, got %v", habit.CompletedDays)
	}
	if habit.Color == "" {
		t.Error("Expected a default color")
	}
}

func TestToggleHabitDay_StreakRoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/habits/", token, models.CreateHabitRequest{
		Name:   "Read",
		Target: 30,
	})
	var habit models.Habit
	json.NewDecoder(w.Body).Decode(&habit)

	today := streak.Day(time.Now())

	w = doJSON(router, "POST", "/api/habits/"+habit.ID+"/toggle", token, models.ToggleDayRequest{Day: today})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.NewDecoder(w.Body).Decode(&habit)

	if habit.Streak != 1 {
		t.Errorf("Expected streak 1 after marking today, got %d", habit.Streak)
	}
	if len(habit.CompletedDays) != 1 || habit.CompletedDays[0] != today {
		t.Errorf("Expected completed days [%s], got %v", today, habit.CompletedDays)
	}

	// Toggling the same day off drops the streak back to zero.
	w = doJSON(router, "POST", "/api/habits/"+habit.ID+"/toggle", token, models.ToggleDayRequest{Day: today})
	json.NewDecoder(w.Body).Decode(&habit)

	if habit.Streak != 0 {
		t.Errorf("Expected streak 0 after untoggling, got %d", habit.Streak)
	}
	if len(habit.CompletedDays) != 0 {
		t.Errorf("Expected no completed days, got %v", habit.CompletedDays)
	}
}

func TestToggleHabitDay_InvalidDay(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/habits/", token, models.CreateHabitRequest{
		Name:   "Read",
		Target: 30,
	})
	var habit models.Habit
	json.NewDecoder(w.Body).Decode(&habit)

	w = doJSON(router, "POST", "/api/habits/"+habit.ID+"/toggle", token, models.ToggleDayRequest{Day: "04-01-2025"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

// ==================== WORKOUT TESTS ====================

func TestCreateWorkout_AssignsExerciseIDs(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/workouts/", token, models.CreateWorkoutRequest{
		Name: "Push Day",
		Date: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		Exercises: []models.ExerciseInput{
			{Name: "Bench Press", Sets: 3, Reps: 8, Weight: 60},
			{Name: "Overhead Press", Sets: 3, Reps: 10, Weight: 30},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var workout models.Workout
	json.NewDecoder(w.Body).Decode(&workout)

	if len(workout.Exercises) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(workout.Exercises))
	}
	for i, e := range workout.Exercises {
		if e.ID == "" {
			t.Errorf("Exercise %d: expected a generated id", i)
		}
	}
}

func TestCreateWorkout_RequiresExercises(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/workouts/", token, models.CreateWorkoutRequest{
		Name: "Push Day",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestUpdateWorkout_EmptyExercisesRejected(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/workouts/", token, models.CreateWorkoutRequest{
		Name: "Push Day",
		Exercises: []models.ExerciseInput{
			{Name: "Bench Press", Sets: 3, Reps: 8, Weight: 60},
		},
	})
	var workout models.Workout
	json.NewDecoder(w.Body).Decode(&workout)

	empty := []models.ExerciseInput{}
	w = doJSON(router, "PUT", "/api/workouts/"+workout.ID, token, models.WorkoutPatch{Exercises: &empty})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	// The stored exercise list must be untouched.
	w = doJSON(router, "GET", "/api/workouts/", token, nil)
	var workouts []models.Workout
	json.NewDecoder(w.Body).Decode(&workouts)
	if len(workouts) != 1 || len(workouts[0].Exercises) != 1 {
		t.Errorf("Expected the exercise list to survive, got %+v", workouts)
	}
}

func TestExportWorkout_CSV(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/workouts/", token, models.CreateWorkoutRequest{
		Name: "Push Day",
		Date: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		Exercises: []models.ExerciseInput{
			{Name: "Bench Press", Sets: 3, Reps: 8, Weight: 60.5},
		},
	})
	var workout models.Workout
	json.NewDecoder(w.Body).Decode(&workout)

	w = doJSON(router, "GET", "/api/workouts/"+workout.ID+"/export", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Push-Day_Sat-Jan-4.csv") {
		t.Errorf("Unexpected content disposition: %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 CSV lines, got %d: %q", len(lines), w.Body.String())
	}
	if strings.TrimSpace(lines[0]) != "Exercise,Sets,Reps,Weight" {
		t.Errorf("Unexpected CSV header: %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "Bench Press,3,8,60.5" {
		t.Errorf("Unexpected CSV row: %q", lines[1])
	}
}

// ==================== EVENT TESTS ====================

func TestUpdateEvent_StartEditPushesEnd(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	start := time.Date(2025, 1, 4, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 4, 15, 0, 0, 0, time.UTC)
	w := doJSON(router, "POST", "/api/events/", token, models.CreateEventRequest{
		Title:   "Meeting",
		Date:    start,
		EndTime: &end,
	})
	var event models.Event
	json.NewDecoder(w.Body).Decode(&event)

	// Move the start onto the end; the end gets pushed 15 minutes out.
	newStart := time.Date(2025, 1, 4, 15, 0, 0, 0, time.UTC)
	w = doJSON(router, "PUT", "/api/events/"+event.ID, token, models.EventPatch{Date: &newStart})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.NewDecoder(w.Body).Decode(&event)

	if !event.Date.Equal(newStart) {
		t.Errorf("Expected start %v, got %v", newStart, event.Date)
	}
	wantEnd := time.Date(2025, 1, 4, 15, 15, 0, 0, time.UTC)
	if event.EndTime == nil || !event.EndTime.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, event.EndTime)
	}
}

func TestUpdateEvent_RejectedEndEditKeepsCurrent(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	start := time.Date(2025, 1, 4, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 4, 15, 0, 0, 0, time.UTC)
	w := doJSON(router, "POST", "/api/events/", token, models.CreateEventRequest{
		Title:   "Meeting",
		Date:    start,
		EndTime: &end,
	})
	var event models.Event
	json.NewDecoder(w.Body).Decode(&event)

	badEnd := time.Date(2025, 1, 4, 13, 0, 0, 0, time.UTC)
	w = doJSON(router, "PUT", "/api/events/"+event.ID, token, models.EventPatch{EndTime: &badEnd})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.NewDecoder(w.Body).Decode(&event)

	if event.EndTime == nil || !event.EndTime.Equal(end) {
		t.Errorf("Expected end to stay %v, got %v", end, event.EndTime)
	}
}

func TestCreateEventFromDrag_SnapsAndOrders(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	day := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	// Reversed drag over a 1440px column: 870px (14:30) up to 600px (10:00).
	w := doJSON(router, "POST", "/api/events/drag", token, DragCreateRequest{
		Date:         day,
		StartOffset:  870,
		EndOffset:    600,
		ColumnHeight: 1440,
		Title:        "Gym",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var event models.Event
	json.NewDecoder(w.Body).Decode(&event)

	wantStart := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 1, 4, 14, 30, 0, 0, time.UTC)
	if !event.Date.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, event.Date)
	}
	if event.EndTime == nil || !event.EndTime.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, event.EndTime)
	}
}

func TestCreateEventFromDrag_MissingDateRejected(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "POST", "/api/events/drag", token, DragCreateRequest{
		StartOffset:  600,
		EndOffset:    870,
		ColumnHeight: 1440,
		Title:        "Gym",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/events/", token, nil)
	var events []models.Event
	json.NewDecoder(w.Body).Decode(&events)
	if len(events) != 0 {
		t.Errorf("Expected no events after rejected drag, got %d", len(events))
	}
}

func TestEventCalendarLink(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	start := time.Date(2025, 1, 4, 14, 0, 0, 0, time.UTC)
	w := doJSON(router, "POST", "/api/events/", token, models.CreateEventRequest{
		Title: "Meeting",
		Date:  start,
	})
	var event models.Event
	json.NewDecoder(w.Body).Decode(&event)

	w = doJSON(router, "GET", "/api/events/"+event.ID+"/calendar-link", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)

	url := response["url"]
	if !strings.HasPrefix(url, "https://calendar.google.com/calendar/render?") {
		t.Errorf("Unexpected link prefix: %q", url)
	}
	if !strings.Contains(url, "20250104T140000Z%2F20250104T150000Z") {
		t.Errorf("Expected default one-hour span in %q", url)
	}
}

// ==================== CALENDAR TESTS ====================

func TestCalendarMonth_GridWithEvents(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	doJSON(router, "POST", "/api/events/", token, models.CreateEventRequest{
		Title: "Meeting",
		Date:  time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	})

	w := doJSON(router, "GET", "/api/calendar/month?date=2025-01-15", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Days []MonthCell `json:"days"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	if len(response.Days)%7 != 0 {
		t.Errorf("Expected complete weeks, got %d cells", len(response.Days))
	}

	found := 0
	for _, cell := range response.Days {
		found += len(cell.Events)
	}
	if found != 1 {
		t.Errorf("Expected the event to appear exactly once, got %d", found)
	}
}

func TestCalendarDay_MinuteOffsets(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	doJSON(router, "POST", "/api/events/", token, models.CreateEventRequest{
		Title: "Meeting",
		Date:  time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
	})

	w := doJSON(router, "GET", "/api/calendar/day?date=2025-01-15", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Events []ScheduledEvent `json:"events"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	if len(response.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(response.Events))
	}
	if response.Events[0].MinuteOffset != 9*60+30 {
		t.Errorf("Expected offset 570, got %d", response.Events[0].MinuteOffset)
	}
}

func TestCalendarNavigate(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	tests := []struct {
		view      string
		direction string
		want      string
	}{
		{"day", "next", "2025-01-16"},
		{"day", "prev", "2025-01-14"},
		{"week", "next", "2025-01-22"},
		{"month", "next", "2025-02-15"},
		{"month", "prev", "2024-12-15"},
	}

	for _, tt := range tests {
		path := fmt.Sprintf("/api/calendar/navigate?view=%s&date=2025-01-15&direction=%s", tt.view, tt.direction)
		w := doJSON(router, "GET", path, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: expected status 200, got %d", tt.view, tt.direction, w.Code)
		}

		var response struct {
			Date time.Time `json:"date"`
		}
		json.NewDecoder(w.Body).Decode(&response)

		if got := response.Date.Format("2006-01-02"); got != tt.want {
			t.Errorf("%s %s: expected %s, got %s", tt.view, tt.direction, tt.want, got)
		}
	}
}

func TestCalendarNavigate_InvalidView(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "GET", "/api/calendar/navigate?view=year&date=2025-01-15&direction=next", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

// ==================== ANALYTICS AND CATALOG TESTS ====================

func TestAnalyticsSummary(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "Done one"})
	w := doJSON(router, "GET", "/api/tasks/", token, nil)
	var tasks []models.Task
	json.NewDecoder(w.Body).Decode(&tasks)

	completed := true
	doJSON(router, "PUT", "/api/tasks/"+tasks[0].ID, token, models.TaskPatch{Completed: &completed})
	doJSON(router, "POST", "/api/tasks/", token, models.CreateTaskRequest{Title: "Still open"})

	w = doJSON(router, "GET", "/api/analytics/summary", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var summary struct {
		Tasks struct {
			Total          int `json:"total"`
			Completed      int `json:"completed"`
			CompletionRate int `json:"completionRate"`
		} `json:"tasks"`
	}
	json.NewDecoder(w.Body).Decode(&summary)

	if summary.Tasks.Total != 2 || summary.Tasks.Completed != 1 {
		t.Errorf("Expected 1/2 tasks completed, got %d/%d", summary.Tasks.Completed, summary.Tasks.Total)
	}
	if summary.Tasks.CompletionRate != 50 {
		t.Errorf("Expected completion rate 50, got %d", summary.Tasks.CompletionRate)
	}
}

func TestExercises_CatalogSearch(t *testing.T) {
	router := setupTestRouter(t)
	token := generateTestToken("testuser", 1)

	w := doJSON(router, "GET", "/api/exercises?query=bench", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var results []models.CatalogExercise
	json.NewDecoder(w.Body).Decode(&results)

	if len(results) == 0 {
		t.Fatal("Expected catalog matches for 'bench'")
	}
	for _, e := range results {
		if !strings.Contains(strings.ToLower(e.Name), "bench") {
			t.Errorf("Unexpected match: %q", e.Name)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
