package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type Session struct {
	ID          string
	Username    string
	DisplayName string
}

type ctxKey string

var SessionKey ctxKey = "sessionKey"

func GenerateHexID() (string, error) {
	bytes := make([]byte, 8)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func NewSession(displayName, username string) *Session {
	ID, err := GenerateHexID()
	if err != nil {
		return nil
	}
	return &Session{ID: ID,
		Username:    username,
		DisplayName: displayName}
}

func CreateContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

func GetSessionFromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(SessionKey).(*Session)
	if !ok || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
