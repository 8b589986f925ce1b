package helper

import (
	"fmt"
	"time"

	"studio_booking/config"
	"studio_booking/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 60 * time.Minute

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["exp"] = time.Now().Add(accessTokenTTL).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// AuthenticateAdmin checks credentials against ADMIN_USERNAME and the bcrypt
// hash in ADMIN_PASSWORD_HASH.
func AuthenticateAdmin(username, password string) bool {
	wantUser := config.Config("ADMIN_USERNAME")
	hash := config.Config("ADMIN_PASSWORD_HASH")
	if wantUser == "" || hash == "" {
		return false
	}
	return username == wantUser && CheckPasswordHash(password, hash)
}
