package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Propósitos de token. Un token de recuperación nunca sirve como token de acceso y viceversa.
const (
	PurposeAccess = "access"
	PurposeReset  = "reset"
)

var errEmptySecret = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar JWT más la identidad del usuario ({id, email}).
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// Generate genera un token HS256 firmado con userID y email.
// expMinutes <= 0 emite un token sin claim exp (no vence).
func Generate(secret, userID, email, purpose, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
	}
	if expMinutes > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID y email.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta, otro emisor
// (cuando issuer no es vacío) o un propósito distinto al esperado.
func Parse(secret, tokenString, purpose, issuer string) (userID, email string, err error) {
	if secret == "" {
		return "", "", errEmptySecret
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", errors.New("claims inválidos")
	}
	if claims.Purpose != purpose {
		return "", "", fmt.Errorf("propósito de token inesperado: %q", claims.Purpose)
	}
	if claims.UserID == "" {
		return "", "", errors.New("token sin id")
	}
	return claims.UserID, claims.Email, nil
}
