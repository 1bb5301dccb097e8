package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"umlwidget/internal/responses"
	"umlwidget/internal/utils"
)

// EditorClaimsKey is the context key holding the verified *utils.EditorClaims.
const EditorClaimsKey = "editorClaims"

// RequireEditorToken accepts only requests carrying a valid side-panel editor
// token as "Authorization: Bearer <token>".
func RequireEditorToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Abort(c, http.StatusUnauthorized, nil, "Missing Authorization header")
			return
		}

		tokenStr, ok := utils.BearerToken(authHeader)
		if !ok {
			responses.Abort(c, http.StatusUnauthorized, nil, "Invalid Authorization format")
			return
		}

		claims, err := utils.VerifyEditorToken(tokenStr, secret)
		if err != nil {
			responses.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(EditorClaimsKey, claims)
		c.Next()
	}
}
