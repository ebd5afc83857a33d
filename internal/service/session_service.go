package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// 会话令牌错误
var (
	ErrSessionSecretMissing = errors.New("session secret is missing")
	ErrSessionTokenInvalid  = errors.New("session token is invalid")
)

// SessionClaims 匿名会话令牌声明
type SessionClaims struct {
	OwnerID string `json:"owner_id"`
	jwt.RegisteredClaims
}

// SessionService 匿名会话令牌服务。购物车与收藏没有账号体系，
// 由会话令牌中的 owner_id 标识归属。
type SessionService struct {
	secret      string
	expireHours int
}

// NewSessionService 创建会话服务
func NewSessionService(secret string, expireHours int) *SessionService {
	if expireHours <= 0 {
		expireHours = 720
	}
	return &SessionService{
		secret:      strings.TrimSpace(secret),
		expireHours: expireHours,
	}
}

// IssueToken 签发会话令牌。ownerID 为空时生成新的会话标识。
func (s *SessionService) IssueToken(ownerID string) (string, string, time.Time, error) {
	if s == nil || s.secret == "" {
		return "", "", time.Time{}, ErrSessionSecretMissing
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		ownerID = uuid.NewString()
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.expireHours) * time.Hour)
	claims := SessionClaims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, ownerID, expiresAt, nil
}

// Parse 解析并校验会话令牌
func (s *SessionService) Parse(tokenString string) (*SessionClaims, error) {
	if s == nil || s.secret == "" {
		return nil, ErrSessionSecretMissing
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &SessionClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid || strings.TrimSpace(claims.OwnerID) == "" {
		return nil, ErrSessionTokenInvalid
	}
	return claims, nil
}
