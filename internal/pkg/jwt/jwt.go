package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// Service verifies access tokens issued by the identity service. Token
// issuance happens outside this backend; GenerateAccessToken exists for the
// test suite and local tooling.
type Service interface {
	GenerateAccessToken(userID, organizationID string, role user.Role, expiresIn time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID, organizationID string, role user.Role, expiresIn time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(expiresIn).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":         userID,
		"organization_id": organizationID,
		"role":            string(role),
		"type":            "access",
		"exp":             expiresAt,
	})
	return tokenString, expiresAt, err
}
