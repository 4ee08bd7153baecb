package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daveshb/taskload/internal/adapter/http/handlers"
	"github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/pkg/apiresponse"
	"github.com/daveshb/taskload/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(serviceMock *userServiceMock) *gin.Engine {
	handler := handlers.NewAuthHandler(serviceMock)
	router := gin.New()
	router.POST("/api/auth/login", middleware.LanguageMiddleware(), handler.Login)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Login", mock.Anything, "maria@example.com", "secret").Return(domain.User{
		ID:    "u-1",
		CC:    "10203040",
		Name:  "Maria",
		Tel:   "555",
		Email: "maria@example.com",
		Pass:  "secret",
	}, nil).Once()

	router := newAuthRouter(serviceMock)
	rec := postLogin(t, router, `{"email":"maria@example.com","pass":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User map[string]interface{} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "Login successful", got.Message)
	require.Equal(t, "u-1", got.Data.User["_id"])
	require.Equal(t, "maria@example.com", got.Data.User["email"])
	require.NotContains(t, got.Data.User, "pass")
	require.NotContains(t, rec.Body.String(), "secret")
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	serviceMock := new(userServiceMock)
	router := newAuthRouter(serviceMock)

	for _, body := range []string{`{}`, `{"email":"maria@example.com"}`, `{"pass":"secret"}`} {
		rec := postLogin(t, router, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}

	serviceMock.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_UnknownEmailAndWrongPassAreIdentical(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Login", mock.Anything, "nobody@example.com", "whatever").
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()
	serviceMock.On("Login", mock.Anything, "maria@example.com", "not-secret").
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()

	router := newAuthRouter(serviceMock)
	unknownRec := postLogin(t, router, `{"email":"nobody@example.com","pass":"whatever"}`)
	wrongPassRec := postLogin(t, router, `{"email":"maria@example.com","pass":"not-secret"}`)

	require.Equal(t, http.StatusUnauthorized, unknownRec.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassRec.Code)
	// Byte-identical bodies: the response reveals nothing about which
	// credential was wrong.
	require.Equal(t, unknownRec.Body.String(), wrongPassRec.Body.String())

	var got apiresponse.Response
	require.NoError(t, json.Unmarshal(unknownRec.Body.Bytes(), &got))
	require.False(t, got.Success)
	require.Equal(t, "invalid credentials", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Login", mock.Anything, "maria@example.com", "secret").
		Return(domain.User{}, errors.New("db is down")).Once()

	router := newAuthRouter(serviceMock)
	rec := postLogin(t, router, `{"email":"maria@example.com","pass":"secret"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	serviceMock.AssertExpectations(t)
}
