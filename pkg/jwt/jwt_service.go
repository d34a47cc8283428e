package jwt

import (
	"errors"
	"fmt"
	"time"

	"SmartCart-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

const purposeEmailConfirmation = "email_confirmation"

type (
	JWTService interface {
		GenerateAccessToken(userID string, email string, ttl time.Duration) (string, time.Time, error)
		GetUserIDByToken(token string) (string, error)
		GenerateEmailConfirmationToken(userID string, redirectTo string, ttl time.Duration) (string, error)
		ValidateEmailConfirmationToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtConfirmationClaim struct {
		UserID     string `json:"user_id"`
		RedirectTo string `json:"redirect_to"`
		Purpose    string `json:"purpose"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "SMARTCART",
	}
}

func (j *jwtService) GenerateAccessToken(userID string, email string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwtUserClaim{
		userID,
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			// jti keeps two tokens issued in the same second distinct
			ID: fmt.Sprintf("%d", now.UnixNano()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) GetUserIDByToken(token string) (string, error) {
	claims := &jwtUserClaim{}
	t_Token, err := jwt.ParseWithClaims(token, claims, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid || claims.UserID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.UserID, nil
}

func (j *jwtService) GenerateEmailConfirmationToken(userID string, redirectTo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtConfirmationClaim{
		userID,
		redirectTo,
		purposeEmailConfirmation,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ValidateEmailConfirmationToken returns the user id and redirect target
// carried by a confirmation token.
func (j *jwtService) ValidateEmailConfirmationToken(token string) (string, string, error) {
	claims := &jwtConfirmationClaim{}
	t_Token, err := jwt.ParseWithClaims(token, claims, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid || claims.Purpose != purposeEmailConfirmation {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.UserID, claims.RedirectTo, nil
}
