package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"shilpgroup-io/backoffice/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "admin-session:"

// AdminSession is the Redis-side record behind a dashboard login. It
// holds the upstream bearer token so the browser only ever sees our
// own JWT.
type AdminSession struct {
	SessionId     string       `json:"sessionId"`
	AdminId       string       `json:"adminId"`
	Email         string       `json:"email"`
	Admin         models.Admin `json:"admin"`
	UpstreamToken string       `json:"upstreamToken"`
	ExpiresAt     time.Time    `json:"expiresAt"`
}

func (s AdminSession) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *AdminSession) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}

// Checks if the admin session is expired.
func (s AdminSession) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}

func GenerateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// Set new admin login session.
func SetSession(ctx context.Context, db *redis.Client, admin models.Admin, upstreamToken string) (AdminSession, error) {
	session := AdminSession{
		SessionId:     GenerateSecureToken(20),
		AdminId:       admin.ID,
		Email:         admin.Email,
		Admin:         admin,
		UpstreamToken: upstreamToken,
		ExpiresAt:     time.Now().Add(SessionExpirationTime),
	}

	err := db.Set(ctx, sessionKeyPrefix+session.SessionId, session, SessionExpirationTime).Err()
	return session, err
}

// Get admin session by id.
func GetSession(ctx context.Context, db *redis.Client, sessionId string) (AdminSession, error) {
	value, err := db.Get(ctx, sessionKeyPrefix+sessionId).Result()
	if err != nil {
		return AdminSession{}, err
	}

	var session AdminSession
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return AdminSession{}, err
	}
	return session, nil
}

// Delete admin session.
func DeleteSession(ctx context.Context, db *redis.Client, sessionId string) error {
	return db.Del(ctx, sessionKeyPrefix+sessionId).Err()
}
