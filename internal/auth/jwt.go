package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const SessionExpirationTime = 24 * time.Hour

// JWTClaim binds a dashboard login to its Redis session. The upstream
// bearer token never goes into the JWT; it stays server-side in the
// session record.
type JWTClaim struct {
	AdminId   string `json:"adminId"`
	Email     string `json:"email"`
	SessionId string `json:"sessionId"`
	jwt.RegisteredClaims
}

// Generate auth token for a new admin session.
func GenerateJWT(adminId, email, sessionId string) (string, int64, error) {
	expirationTime := time.Now().Local().Add(SessionExpirationTime)
	jwtKey := os.Getenv("SECRET")

	claims := JWTClaim{
		AdminId:   adminId,
		Email:     email,
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// Validate a signed jwt auth token and its expiration time.
func ValidateToken(signedToken string) (JWTClaim, error) {
	jwtKey := os.Getenv("SECRET")
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return JWTClaim{}, err
	}

	claim, ok := token.Claims.(*JWTClaim)
	if !ok {
		return JWTClaim{}, errors.New("couldn't parse claims")
	}
	exp, _ := claim.GetExpirationTime()
	if exp == nil || exp.Local().Unix() < time.Now().Local().Unix() {
		return JWTClaim{}, errors.New("token expired")
	}

	return *claim, nil
}

// Extract and validate the jwt auth token from the request.
func InitJwtClaim(c *gin.Context) (JWTClaim, error) {
	tknStr, err := ExtractToken(c)
	if err != nil {
		return JWTClaim{}, err
	}
	return ValidateToken(tknStr)
}

// Extract authorization token from request header.
func ExtractToken(c *gin.Context) (string, error) {
	return ExtractBearerToken(c.GetHeader("Authorization"))
}

// ExtractBearerToken extracts the Bearer token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("authorization header does not start with 'Bearer '")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", errors.New("token is empty")
	}

	return token, nil
}
