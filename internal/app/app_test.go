package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mimir_backend/internal/app"
	"mimir_backend/internal/config"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/llm"
	"mimir_backend/internal/testutil"
	"mimir_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t     *testing.T
	app   *app.App
	mock  *llm.MockProvider
	token string
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:   "test-secret-test-secret-test-secret",
			Audience: "authenticated",
		},
		AI: config.AIConfig{Provider: "mock"},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := testConfig()
	mock := llm.NewMockProvider()

	a := app.New(cfg, app.Dependencies{
		DB:               testutil.DB(t),
		Provider:         mock,
		GeneratorOptions: []generator.Option{generator.WithPolicy(generator.Policy{MaxAttempts: 3})},
	})

	token, err := util.GenerateJWT(uuid.NewString(), cfg.JWT, time.Hour)
	require.NoError(t, err)

	return &testServer{t: t, app: a, mock: mock, token: token}
}

func (s *testServer) do(method, path string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()
	return s.doWithToken(method, path, body, s.token)
}

func (s *testServer) doWithToken(method, path string, body interface{}, token string) (int, map[string]interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func lessonBody(bootcampID string, day int) gin.H {
	return gin.H{
		"bootcampId": bootcampID,
		"dayNumber":  day,
		"dayTitle":   "Hooks day",
		"topics":     []string{"useState", "useEffect"},
		"goal":       "Master React Hooks",
	}
}

func TestReactHooksBootcampFlow(t *testing.T) {
	s := newTestServer(t)

	// 大纲
	s.mock.AddResponse(llm.MockResponse{Text: "```json\n" + testutil.SyllabusJSON(7) + "\n```"})
	code, resp := s.do(http.MethodPost, "/api/generate-syllabus", gin.H{"goal": "Master React Hooks", "duration": 7})
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Master React Hooks", resp["goal"])
	syllabus := resp["syllabus"].(map[string]interface{})
	days := syllabus["days"].([]interface{})
	require.Len(t, days, 7)
	for _, d := range days {
		day := d.(map[string]interface{})
		assert.Contains(t, day, "day")
		assert.Contains(t, day, "title")
		assert.Contains(t, day, "topics")
		assert.Contains(t, day, "description")
	}

	// 保存训练营，大纲已给出不再调用模型
	code, resp = s.do(http.MethodPost, "/api/bootcamps", gin.H{
		"goal":     "Master React Hooks",
		"duration": 7,
		"syllabus": syllabus,
	})
	require.Equal(t, http.StatusCreated, code, resp)
	assert.Equal(t, 1, s.mock.CallCount())
	bootcamp := resp["bootcamp"].(map[string]interface{})
	bootcampID := bootcamp["id"].(string)
	assert.EqualValues(t, 1, bootcamp["currentDay"])

	// 第1天课程
	s.mock.AddResponse(llm.MockResponse{Text: testutil.LessonMarkdown("useState")})
	code, resp = s.do(http.MethodPost, "/api/generate-lesson", lessonBody(bootcampID, 1))
	require.Equal(t, http.StatusOK, code, resp)
	lesson := resp["lesson"].(map[string]interface{})
	assert.EqualValues(t, 1, lesson["dayNumber"])
	lessonID := lesson["id"].(string)

	// 第2天尚未解锁
	code, resp = s.do(http.MethodPost, "/api/generate-lesson", lessonBody(bootcampID, 2))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "You must complete Day 1 first", resp["error"])
	assert.Equal(t, 2, s.mock.CallCount())

	// 完成第1天
	code, resp = s.do(http.MethodPost, "/api/bootcamp/"+bootcampID+"/complete-day", gin.H{"dayNumber": 1})
	require.Equal(t, http.StatusOK, code, resp)
	progress := resp["bootcamp"].(map[string]interface{})
	assert.Equal(t, bootcampID, progress["id"])
	assert.EqualValues(t, 2, progress["currentDay"])
	assert.EqualValues(t, 1, progress["completedDay"])

	// 第2天解锁
	s.mock.AddResponse(llm.MockResponse{Text: testutil.LessonMarkdown("useEffect")})
	code, resp = s.do(http.MethodPost, "/api/generate-lesson", lessonBody(bootcampID, 2))
	require.Equal(t, http.StatusOK, code, resp)

	// 读取课程
	code, resp = s.do(http.MethodGet, "/api/generate-lesson?bootcampId="+bootcampID+"&dayNumber=1", nil)
	require.Equal(t, http.StatusOK, code, resp)
	stored := resp["lesson"].(map[string]interface{})
	assert.Equal(t, testutil.LessonMarkdown("useState"), stored["content"])
	assert.EqualValues(t, 1, stored["readingMinutes"])

	// 练习
	s.mock.AddResponse(llm.MockResponse{Text: testutil.ActivitiesJSON})
	code, resp = s.do(http.MethodPost, "/api/generate-activities", gin.H{"lessonId": lessonID})
	require.Equal(t, http.StatusOK, code, resp)
	assert.EqualValues(t, 4, resp["count"])

	code, resp = s.do(http.MethodPost, "/api/generate-activities", gin.H{"lessonId": lessonID})
	assert.Equal(t, http.StatusConflict, code, resp)

	code, resp = s.do(http.MethodGet, "/api/generate-activities?lessonId="+lessonID, nil)
	require.Equal(t, http.StatusOK, code, resp)
	activities := resp["activities"].([]interface{})
	require.Len(t, activities, 4)
	first := activities[0].(map[string]interface{})
	assert.EqualValues(t, 0, first["orderIndex"])
	assert.Equal(t, false, first["revealed"])

	code, resp = s.do(http.MethodPatch, "/api/activities/"+first["id"].(string)+"/reveal", gin.H{"revealed": true})
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, true, resp["activity"].(map[string]interface{})["revealed"])

	// 详情
	code, resp = s.do(http.MethodGet, "/api/bootcamp/"+bootcampID, nil)
	require.Equal(t, http.StatusOK, code, resp)
	detail := resp["bootcamp"].(map[string]interface{})
	assert.Equal(t, []interface{}{float64(1), float64(2)}, detail["lessonDays"])
	assert.EqualValues(t, 1, detail["progress"].(map[string]interface{})["completedDays"])
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.doWithToken(http.MethodPost, "/api/generate-syllabus", gin.H{"goal": "Go", "duration": 7}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, resp["success"])

	code, _ = s.doWithToken(http.MethodGet, "/api/bootcamps", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Zero(t, s.mock.CallCount())
}

func TestValidationErrorsCarryFieldDetails(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/api/generate-syllabus", gin.H{"goal": "Learn Rust", "duration": 3})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request data", resp["error"])
	details := resp["details"].([]interface{})
	require.Len(t, details, 1)
	issue := details[0].(map[string]interface{})
	assert.Equal(t, "duration", issue["field"])
	assert.Equal(t, "must be at least 7", issue["message"])

	code, resp = s.do(http.MethodPost, "/api/generate-lesson", gin.H{"bootcampId": "nope", "dayNumber": 1})
	assert.Equal(t, http.StatusBadRequest, code)
	fields := map[string]bool{}
	for _, d := range resp["details"].([]interface{}) {
		fields[d.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["bootcampId"])
	assert.True(t, fields["dayTitle"])
	assert.True(t, fields["topics"])
	assert.True(t, fields["goal"])

	code, _ = s.do(http.MethodGet, "/api/generate-activities", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Zero(t, s.mock.CallCount())
}

func TestGenerationFailureReturns500WithDetails(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		s.mock.AddResponse(llm.MockResponse{Err: errors.New("upstream unavailable")})
	}

	code, resp := s.do(http.MethodPost, "/api/generate-syllabus", gin.H{"goal": "Learn Go", "duration": 7})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to generate valid syllabus after multiple attempts", resp["error"])
	details := resp["details"].(map[string]interface{})
	assert.EqualValues(t, 3, details["attempts"])
	assert.Equal(t, 3, s.mock.CallCount())
}

func TestForeignBootcampIsNotFound(t *testing.T) {
	s := newTestServer(t)
	other := testutil.SeedBootcamp(t, s.app.DB, uuid.NewString(), 7, 1)

	code, resp := s.do(http.MethodGet, "/api/bootcamp/"+other.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "bootcamp not found", resp["error"])

	code, _ = s.do(http.MethodPost, "/api/bootcamp/"+other.ID+"/complete-day", gin.H{"dayNumber": 1})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, "/api/bootcamp/"+other.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCompleteDayOutOfOrder(t *testing.T) {
	s := newTestServer(t)
	code, resp := s.do(http.MethodPost, "/api/bootcamps", gin.H{
		"goal":     "Learn Go",
		"duration": 7,
		"syllabus": testutil.Syllabus(7),
	})
	require.Equal(t, http.StatusCreated, code, resp)
	id := resp["bootcamp"].(map[string]interface{})["id"].(string)

	code, resp = s.do(http.MethodPost, "/api/bootcamp/"+id+"/complete-day", gin.H{"dayNumber": 3})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You must complete Day 1 first", resp["error"])

	code, resp = s.do(http.MethodPost, "/api/bootcamp/"+id+"/complete-day", gin.H{"dayNumber": 8})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid day number", resp["error"])
}

func TestDeleteBootcamp(t *testing.T) {
	s := newTestServer(t)
	code, resp := s.do(http.MethodPost, "/api/bootcamps", gin.H{
		"goal":     "Learn Go",
		"duration": 7,
		"syllabus": testutil.Syllabus(7),
	})
	require.Equal(t, http.StatusCreated, code, resp)
	id := resp["bootcamp"].(map[string]interface{})["id"].(string)

	code, _ = s.do(http.MethodDelete, "/api/bootcamp/"+id, nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp = s.do(http.MethodGet, "/api/bootcamps", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, resp["count"])
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.doWithToken(http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, "ok", resp["status"])
	components := resp["components"].(map[string]interface{})
	assert.Equal(t, "up", components["database"])
	assert.Equal(t, "disabled", components["redis"])
}

func TestOverlongDayTitleRejectedBeforeGeneration(t *testing.T) {
	s := newTestServer(t)

	body := lessonBody(uuid.NewString(), 1)
	body["dayTitle"] = strings.Repeat("钩", 256)
	code, resp := s.do(http.MethodPost, "/api/generate-lesson", body)
	require.Equal(t, http.StatusBadRequest, code, resp)
	assert.Equal(t, "Invalid request data", resp["error"])

	details := resp["details"].([]interface{})
	require.Len(t, details, 1)
	issue := details[0].(map[string]interface{})
	assert.Equal(t, "dayTitle", issue["field"])
	assert.Equal(t, "must contain at most 255 item(s) or character(s)", issue["message"])
	assert.Zero(t, s.mock.CallCount())

	// 恰好 255 字符通过校验，训练营不存在返回 404
	body["dayTitle"] = strings.Repeat("钩", 255)
	code, resp = s.do(http.MethodPost, "/api/generate-lesson", body)
	assert.Equal(t, http.StatusNotFound, code, resp)
	assert.Zero(t, s.mock.CallCount())
}

func TestRateLimitedRequestUsesErrorEnvelope(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{MaxRequests: 1, WindowMinutes: 60}
	a := app.New(cfg, app.Dependencies{DB: testutil.DB(t), Provider: llm.NewMockProvider()})
	defer a.Close(context.Background())

	call := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, call().Code)
	w := call()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Too many requests"}`, w.Body.String())
}
