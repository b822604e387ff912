//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-admin/internal/domain/staff"
	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/cookie"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/mocks"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	"hotel-admin/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *mocks.MockAuthUseCase
	handler     *api.AuthHandler
	staffID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = mocks.NewMockAuthUseCase(s.mockCtrl)

	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	s.handler = api.NewAuthHandler(s.mockUseCase, jwtService, config.CookieConfig{SameSite: "lax"})

	s.staffID = uuid.New()
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("staff_role", staff.RoleManager)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	staffBuilder := builder.NewStaffBuilder()
	reqBody := staffBuilder.BuildLoginRequestDTO()
	returnRM := staffBuilder.BuildRM()

	s.Run("success: returns token in body and http-only cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("signed.jwt.token", returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.AccessToken)
		s.Equal(returnRM.ID, response.Staff.ID)
		s.Equal(returnRM.Email, response.Staff.Email)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("signed.jwt.token", tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown staff",
				useCaseError:   usecase.ErrStaffNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "wrong password",
				useCaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "inactive account",
				useCaseError:   usecase.ErrStaffInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return("", nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 204 and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
		s.Negative(tokenCookie.MaxAge)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated staff", func() {
		returnRM := builder.NewStaffBuilder().BuildRM()
		returnRM.ID = s.staffID

		s.mockUseCase.EXPECT().GetCurrentStaff(gomock.Any(), s.staffID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.staffID.String(), response["id"])
		s.Equal(returnRM.Email, response["email"])
	})

	s.Run("error: 401 when the middleware never authenticated the request", func() {
		bareRouter := gin.New()
		bareRouter.GET("/auth/me", s.handler.Me)

		rec := httptest.PerformRequest(s.T(), bareRouter, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Staff not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "staff removed since login",
				useCaseError:   usecase.ErrStaffNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Staff not found",
			},
			{
				name:           "staff deactivated since login",
				useCaseError:   usecase.ErrStaffInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().GetCurrentStaff(gomock.Any(), s.staffID).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
