package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer identifica os tokens emitidos pela API.
const Issuer = "CRM-Family-API"

// ErrInvalidToken é devolvido quando o token não passa na validação.
var ErrInvalidToken = errors.New("token inválido")

// TokenService emite e valida os JWTs de sessão.
type TokenService interface {
	GenerateToken(userID, email, perfil string) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims carrega id, email e perfil do usuário autenticado.
type CustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	jwt.RegisteredClaims
}

// Service assina tokens HS256 com validade fixa.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{secret: []byte(secretKey), ttl: expiry, now: time.Now}
}

// GenerateToken emite o token de sessão do usuário. O subject é o id.
func (s *Service) GenerateToken(userID, email, perfil string) (string, error) {
	issuedAt := jwt.NewNumericDate(s.now())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID: userID,
		Email:  email,
		Perfil: perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  issuedAt,
			NotBefore: issuedAt,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("assinar token de %s: %w", userID, err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, emissor e validade e devolve as claims.
// Erros de expiração continuam identificáveis com errors.Is(err, jwt.ErrTokenExpired).
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := new(CustomClaims)
	parsed, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case !parsed.Valid, claims.UserID == "":
		return nil, ErrInvalidToken
	}
	return claims, nil
}
