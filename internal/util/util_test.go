package util

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusCodeByKind(t *testing.T) {
	cases := map[ErrorKind]int{
		KindInputValidation: http.StatusBadRequest,
		KindBadRequest:      http.StatusBadRequest,
		KindNotFound:        http.StatusNotFound,
		KindForbidden:       http.StatusForbidden,
		KindConflict:        http.StatusConflict,
		KindGeneration:      http.StatusInternalServerError,
		KindPersistence:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusCode(kind), kind)
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewNotFound(ErrLessonNotFound))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.ErrorIs(t, err, ErrLessonNotFound)
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"forbidden", NewForbidden("You must complete Day 2 first"), http.StatusForbidden,
			`{"success":false,"error":"You must complete Day 2 first"}`},
		{"conflict", NewConflict(ErrLessonExists), http.StatusConflict,
			`{"success":false,"error":"lesson already exists for this day"}`},
		{"generation", NewGenerationError("Failed to generate lesson", map[string]interface{}{"attempts": 3}, errors.New("x")),
			http.StatusInternalServerError, `{"success":false,"error":"Failed to generate lesson","details":{"attempts":3}}`},
		{"unclassified", errors.New("db down"), http.StatusInternalServerError,
			`{"success":false,"error":"Internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tc.err)
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestSuccessMergesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, gin.H{"bootcamp": gin.H{"id": "b1"}})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"bootcamp":{"id":"b1"}}`, w.Body.String())
}

type bindTarget struct {
	Goal   string   `json:"goal" binding:"required,notblank,max=10"`
	Days   int      `json:"days" binding:"required,min=7"`
	ID     string   `json:"id" binding:"required,uuid"`
	Topics []string `json:"topics" binding:"required,min=1,dive,notblank"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var target bindTarget
	return BindJSON(c, &target)
}

func TestBindJSONFieldIssues(t *testing.T) {
	err := bind(t, `{"goal":"   ","days":3,"id":"nope","topics":["ok"," "]}`)
	require.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindInputValidation, appErr.Kind)
	assert.Equal(t, "Invalid request data", appErr.Message)

	issues := appErr.Details.([]FieldIssue)
	got := map[string]string{}
	for _, is := range issues {
		got[is.Field] = is.Message
	}
	assert.Equal(t, "is required", got["goal"])
	assert.Equal(t, "must be at least 7", got["days"])
	assert.Equal(t, "must be a valid UUID", got["id"])
	assert.Equal(t, "is required", got["topics[1]"])
}

func TestBindJSONTypeMismatch(t *testing.T) {
	err := bind(t, `{"goal":"go","days":"seven"}`)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	issues := appErr.Details.([]FieldIssue)
	require.Len(t, issues, 1)
	assert.Equal(t, "days", issues[0].Field)
}

func TestBindJSONAcceptsValidBody(t *testing.T) {
	err := bind(t, `{"goal":"Learn Go","days":7,"id":"0b6b9c54-5d1e-4f0b-9a57-1c7e0a3f8e21","topics":["a"]}`)
	assert.NoError(t, err)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "Learn", TruncateRunes("  Learn  ", 10))
	assert.Equal(t, "学习Go", TruncateRunes("学习Go语言并发", 4))
	assert.Equal(t, "abc", TruncateRunes("abc def", 4))
}
