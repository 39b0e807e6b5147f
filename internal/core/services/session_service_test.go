package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/core/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	service portssvc.SessionSvcFacade
	ctx     context.Context
}

func (suite *SessionServiceTestSuite) SetupTest() {
	hashes, err := utils.HashAdminSecrets([]string{"admin123"})
	suite.Require().NoError(err)
	suite.service = services.NewSessionService(&config.Config{
		JWTSecret:           "test-secret",
		JWTIssuer:           "salesmaster-test",
		JWTExpiryDuration:   time.Hour,
		AdminPasswordHashes: hashes,
	})
	suite.ctx = context.Background()
}

func (suite *SessionServiceTestSuite) TestLogin_Administrator() {
	session, token, expiresAt, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleAdministrator, Secret: "admin123"})

	suite.Require().NoError(err)
	suite.True(session.IsAdministrator())
	suite.Equal("Master", session.DisplayName())
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	resolved, err := suite.service.Resolve(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(session.SessionID, resolved.SessionID)
}

func (suite *SessionServiceTestSuite) TestLogin_WrongAdministratorPassword() {
	_, _, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleAdministrator, Secret: "admin"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, _, _, err = suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleAdministrator})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestLogin_Vendor() {
	session, token, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleVendor, Secret: "  Juan  "})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleVendor, session.Role)
	suite.Equal("Juan", session.VendorName)

	resolved, err := suite.service.Resolve(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal("Juan", resolved.VendorName)
}

func (suite *SessionServiceTestSuite) TestLogin_VendorNameTooShort() {
	for _, name := range []string{"", " ", "J", "  é "} {
		_, _, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleVendor, Secret: name})
		suite.ErrorIs(err, apperrors.ErrValidation, "name %q", name)
	}
}

func (suite *SessionServiceTestSuite) TestLogout_EndsSession() {
	session, token, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleVendor, Secret: "Juan"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Logout(suite.ctx, session))
	suite.Require().NoError(suite.service.Logout(suite.ctx, session))

	_, err = suite.service.Resolve(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestResolve_RejectsForeignToken() {
	foreign, _, err := utils.GenerateSessionJWT(&domain.Session{SessionID: "x", Role: domain.RoleAdministrator}, "other-secret", time.Hour, "x")
	suite.Require().NoError(err)

	_, err = suite.service.Resolve(suite.ctx, foreign)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestResolve_RestartEndsSessions() {
	_, token, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Role: domain.RoleVendor, Secret: "Juan"})
	suite.Require().NoError(err)

	suite.SetupTest()

	_, err = suite.service.Resolve(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
