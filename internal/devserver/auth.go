package devserver

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid token")

// claims carries the standard claims plus the authenticated employee.
type claims struct {
	jwt.RegisteredClaims
	EmployeeID int `json:"employee_id"`
}

// generateToken issues an HS256 bearer token for the employee.
func generateToken(employeeID int, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		EmployeeID: employeeID,
	})
	return token.SignedString(secret)
}

// employeeIDFromToken verifies the token and returns the employee it was
// issued to.
func employeeIDFromToken(tokenString string, secret []byte) (int, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errInvalidToken
	}
	return c.EmployeeID, nil
}
