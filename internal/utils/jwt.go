package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// EditorClaims authorise exactly one side-panel editor session. The subject is the
// widget id and the token id is the session id.
type EditorClaims struct {
	jwt.RegisteredClaims
}

// WidgetID parses the subject of the claims.
func (c *EditorClaims) WidgetID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// GenerateEditorToken signs a token for a new editor session and returns it with
// the session id.
func GenerateEditorToken(widgetID uuid.UUID, ttl time.Duration, secret []byte) (string, string, error) {
	if len(secret) == 0 {
		return "", "", errors.New("editor token secret is empty")
	}

	jti := uuid.NewString()
	now := time.Now()

	claims := &EditorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   widgetID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign editor token: %w", err)
	}

	return signed, jti, nil
}

// VerifyEditorToken parses and validates an editor token.
func VerifyEditorToken(tokenStr string, secret []byte) (*EditorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &EditorClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*EditorClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
