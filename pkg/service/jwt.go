package service

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"

	"offices-service/pkg/config"
	apperrors "offices-service/pkg/errors"
)

type JwtCustomClaim struct {
	jwt.RegisteredClaims
}

// JWTService проверяет bearer-токены, выпущенные внешним identity-сервисом.
// Этот сервис токены не выпускает.
type JWTService interface {
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
}

type jwtService struct {
	secretKey string
	issuer    string
	audience  string
}

func NewJWTService(cfg config.JWTConfig) JWTService {
	return &jwtService{
		secretKey: cfg.SecretKey,
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	claims := &JwtCustomClaim{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("неверный метод подписи токена")
		}
		return []byte(s.secretKey), nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewUnauthorizedError("Срок действия токена истёк")
		}
		return nil, apperrors.NewUnauthorizedError("Недопустимый токен")
	}

	if !token.Valid {
		return nil, apperrors.NewUnauthorizedError("Недопустимый токен")
	}

	return claims, nil
}
