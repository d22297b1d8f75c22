package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-hive/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestNew_SuccessFlag(t *testing.T) {
	assert.True(t, New(http.StatusOK, "ok", nil).Success)
	assert.True(t, New(http.StatusCreated, "created", nil).Success)
	assert.False(t, New(http.StatusBadRequest, "bad", nil).Success)
	assert.Equal(t, "Request completed", New(http.StatusOK, "", nil).Message)
}

func TestOK_WritesEnvelope(t *testing.T) {
	router := setupTestRouter()
	router.GET("/", func(c *gin.Context) {
		OK(c, "fetched", gin.H{"id": "1"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, "fetched", body["message"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1", body["data"].(map[string]interface{})["id"])
}

func TestError_AppError(t *testing.T) {
	router := setupTestRouter()
	router.GET("/", func(c *gin.Context) {
		Error(c, apperror.Conflict("User already exists!"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists!", body["message"])
	assert.Nil(t, body["data"])
	assert.Equal(t, []interface{}{}, body["errors"])
}

func TestError_UnknownErrorHidesCause(t *testing.T) {
	router := setupTestRouter()
	router.GET("/", func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, "Processing request", DefaultMessage(101))
	assert.Equal(t, "Resource moved permanently", DefaultMessage(301))
	assert.Equal(t, "Resource not found", DefaultMessage(404))
	assert.Equal(t, "Internal server error", DefaultMessage(503))
}
