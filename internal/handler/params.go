package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// フロントはidを数値でも文字列でも送ってくる
type idValue int64

func (v *idValue) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v = idValue(n)
	return nil
}

func (v *idValue) UnmarshalParam(param string) error {
	return v.UnmarshalJSON([]byte(param))
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

// 最初に値が入っているキーを使う
func firstQuery(c echo.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.QueryParam(k)); v != "" {
			return v
		}
	}
	return ""
}

func queryInt(c echo.Context, field string, keys ...string) (int, error) {
	v := firstQuery(c, keys...)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, usecase.NewValidationError(map[string][]string{field: {"a valid integer is required"}})
	}
	return n, nil
}

func queryInt64Ptr(c echo.Context, field string, keys ...string) (*int64, error) {
	v := firstQuery(c, keys...)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, usecase.NewValidationError(map[string][]string{field: {"a valid integer is required"}})
	}
	return &n, nil
}

func queryDecimalPtr(c echo.Context, field string, keys ...string) (*decimal.Decimal, error) {
	v := firstQuery(c, keys...)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, usecase.NewValidationError(map[string][]string{field: {"a valid number is required"}})
	}
	return &d, nil
}

// "true"/"1"/"on"
func queryBool(c echo.Context, keys ...string) bool {
	switch strings.ToLower(firstQuery(c, keys...)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
