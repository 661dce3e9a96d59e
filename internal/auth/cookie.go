package auth

import "net/http"

// CookieName — имя куки с идентификационным токеном
const CookieName = "token"

// SetTokenCookie ставит HTTP-only куку с токеном.
// В production кука кросс-сайтовая (Secure + SameSite=None),
// в development — без Secure, SameSite=Lax.
func SetTokenCookie(w http.ResponseWriter, token string, production bool) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}

// ClearTokenCookie сбрасывает куку с тем же профилем атрибутов.
// Чисто клиентская инвалидация, серверного блэклиста нет.
func ClearTokenCookie(w http.ResponseWriter, production bool) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}
