package auth

import (
	"time"

	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// OAuthService wraps the go-oauth2 server configured for the
// client_credentials grant. Issued tokens are signed with the same secret
// and claim shape as the user-facing tokens.
type OAuthService struct {
	server *server.Server
	db     *gorm.DB
}

func NewOAuthService(db *gorm.DB, jwtSecret string, accessTokenTTL time.Duration) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: accessTokenTTL})

	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS256, db))

	tokenStore := NewGormTokenStore(db)
	manager.MustTokenStorage(tokenStore, nil)

	clientStore := NewGormClientStore(db)
	manager.MapClientStorage(clientStore)

	srv := server.NewDefaultServer(manager)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server: srv,
		db:     db,
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}
