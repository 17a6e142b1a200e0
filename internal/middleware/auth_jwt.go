package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shop/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey       = "user_id"       // int64
	CtxTokenVersionKey = "token_version" // int
)

var errInvalidClaim = errors.New("invalid claim")

// JWTから取り出す利用者情報
type identity struct {
	UserID       int64
	TokenVersion int
}

// bearerAuth用のJWT検証ミドルウェア。
// トークンは外部IdPが発行する（HS256, sub=ユーザーID, tv=token_version）
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	secret := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			id, err := parseIdentity(parser, raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxUserIDKey, id.UserID)
			c.Set(CtxTokenVersionKey, id.TokenVersion)

			return next(c)
		}
	}
}

// "Bearer xxx" からxxxを取り出す
func bearerToken(authz string) (string, bool) {
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func parseIdentity(parser *jwt.Parser, raw string, secret []byte) (identity, error) {
	claims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return identity{}, errInvalidClaim
	}

	userID, err := claimInt(claims["sub"])
	if err != nil || userID <= 0 {
		return identity{}, errInvalidClaim
	}
	tv, err := claimInt(claims["tv"])
	if err != nil || tv < 0 {
		return identity{}, errInvalidClaim
	}

	return identity{UserID: userID, TokenVersion: int(tv)}, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// JSONの数値はfloat64、IdPによっては文字列
func claimInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errInvalidClaim
	}
}
