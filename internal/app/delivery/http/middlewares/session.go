package middlewares

import (
	"context"
	"net/http"
	"strings"

	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/exceptions"
	"healiinn-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// PatientSession authenticates the bearer token and stores the patient id in
// the request context. Every patient-facing route sits behind it.
func (m *Middlewares) PatientSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		patientID, err := utils.ParsePatientJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			requestID := utils.GetRequestID(r.Context())
			utils.LogSecurityEvent(m.Log, "patient_token_rejected", requestID, "warn",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PATIENT_ID_KEY, patientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
