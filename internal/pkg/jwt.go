package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
	ErrSecretNotSet      = errors.New("secret key not set")
)

// AccessTTL 访问令牌有效期，和签发时的 24h 窗口保持一致
const AccessTTL = time.Hour * 24

// accessSecret 启动时由 config 注入，禁止默认值
var accessSecret []byte

// InitJWT 注入签名密钥，secret 为空直接报错，避免带默认密钥上线
func InitJWT(secret string) error {
	if secret == "" {
		return ErrSecretNotSet
	}
	accessSecret = []byte(secret)
	return nil
}

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken 签发 access token，唯一声明就是用户 id
func GenerateAccessToken(userID string) (string, error) {
	if len(accessSecret) == 0 {
		return "", ErrSecretNotSet
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			Subject:   "access",
		},
	})
	return token.SignedString(accessSecret)
}

// ParseAccess 解析 access token
func ParseAccess(tokenStr string) (*Claims, error) {
	if len(accessSecret) == 0 {
		return nil, ErrSecretNotSet
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenInvalid
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenParseFailure
	}
	return token.Claims.(*Claims), nil
}
