package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки проверки токена
var (
	ErrTokenExpired = errors.New("token is expired")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenTTL — время жизни идентификационного токена (1 сутки)
const TokenTTL = 24 * time.Hour

// Claims — подписываемая идентичность пользователя
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет подписанные токены.
// Секрет общий на процесс, после старта только читается.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService создает TokenService с HS256-подписью
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Issue подписывает claims с email и сроком действия ttl от текущего момента
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify проверяет подпись и срок действия токена.
// Возвращает ErrTokenExpired для просроченного токена,
// ErrInvalidToken для любого другого дефекта (подпись, формат, метод).
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
