package handlers

import (
	"context"
	"net/http"

	"avoska-api/internal/session"
)

// establishSession writes a fresh session entry and sets the signed
// cookie. Logging in again simply overwrites the previous entry.
func establishSession(ctx context.Context, w http.ResponseWriter, store session.Store, secret []byte, cookieName, userID string) error {
	token := session.NewToken()
	if err := store.Set(ctx, token, userID); err != nil {
		return err
	}

	signed, err := session.SignToken(token, secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
