package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/shopping_cart/internal/hash"
)

const (
	Realm = "shopping-cart"

	challenge     = `basic realm="` + Realm + `"`
	authPassedKey = "admin_auth_passed"
)

var ErrUnauthorized = errors.New("unauthorized")

// Gate checks HTTP Basic credentials against the single admin account.
// PasswordHash, when set, takes precedence over Password.
type Gate struct {
	Username     string
	Password     string
	PasswordHash string
}

// Check compares both fields without short-circuiting so the response time
// does not reveal which one was wrong.
func (g *Gate) Check(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.Username)) == 1

	var passOK bool
	if g.PasswordHash != "" {
		passOK = hash.CheckPassword(g.PasswordHash, password)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(g.Password)) == 1
	}

	if g.Username == "" || !userOK || !passOK {
		return ErrUnauthorized
	}
	return nil
}

// AdminOnly rejects requests without valid admin credentials with 401 and a
// Basic challenge before the handler runs. Undecodable credentials get the
// same 401 instead of echo's 400.
func (g *Gate) AdminOnly() echo.MiddlewareFunc {
	basic := echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Realm: Realm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			err := g.Check(username, password)
			if errors.Is(err, ErrUnauthorized) {
				return false, nil
			}
			if err == nil {
				c.Set(authPassedKey, true)
			}
			return err == nil, err
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := basic(next)
		return func(c echo.Context) error {
			err := h(c)
			var he *echo.HTTPError
			if errors.As(err, &he) && he.Code == http.StatusBadRequest && c.Get(authPassedKey) == nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				return echo.ErrUnauthorized
			}
			return err
		}
	}
}
