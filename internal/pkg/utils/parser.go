package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParsePatientJWT extracts the patient scope from a token issued by the
// external auth collaborator. Token issuance and storage are out of scope
// here; this only validates the HMAC and reads the patient_id claim.
func ParsePatientJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if patientID, ok := claims["patient_id"].(string); ok && patientID != "" {
			return patientID, nil
		}
	}

	return "", errors.New("invalid token")
}
