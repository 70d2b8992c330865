package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
)

func NewToken(account domain.Account, ttl time.Duration, secret []byte) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["uuid"] = account.ID.String()
	claims["email"] = account.Email
	claims["expired"] = time.Now().Add(ttl).Unix()

	return token.SignedString(secret)
}

func parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	expired, ok := claims["expired"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	if expired < float64(time.Now().Unix()) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func GetUserUuidFromToken(tokenString string, secret []byte) (uuid.UUID, error) {
	claims, err := parse(tokenString, secret)
	if err != nil {
		return uuid.Nil, err
	}

	uuidString, ok := claims["uuid"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userUuid, err := uuid.Parse(uuidString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token parsing failed: %w", err)
	}
	return userUuid, nil
}
