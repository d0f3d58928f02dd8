package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка токена: {id, firstname, iat, exp}
type Claims struct {
	UserID int64 `json:"id"`
	FirstName string `json:"firstname,omitempty"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет JWT. Сессии на сервере не храним -
// валидность токена это только подпись плюс срок жизни
type TokenService struct {
	secret []byte
	ttl time.Duration
	now func() time.Time // подменяется в тестах, чтобы не ждать час до истечения
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl: ttl,
		now: time.Now,
	}
}

func (s *TokenService) Issue(u model.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		FirstName: u.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify возвращает claims как есть, либо ErrInvalidToken на любую проблему:
// битая структура, чужая подпись, истекший срок
func (s *TokenService) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
