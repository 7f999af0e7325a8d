package auth

import (
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
)

// Authentication attempt outcomes
const (
	AttemptSuccess = "Success"
	AttemptFail    = "Fail"
)

// logAuthAttempt records an authentication attempt.
// authType is Local or Logout, identifier the email or user id.
func logAuthAttempt(log *logging.Logger, authType, status, identifier, message string) {
	if log == nil {
		return
	}
	kv := []any{"auth_type", authType, "status", status}
	if identifier != "" {
		kv = append(kv, "identifier", identifier)
	}
	if message != "" {
		kv = append(kv, "message", message)
	}

	if status == AttemptSuccess {
		log.Info("auth attempt", kv...)
		return
	}
	log.Warn("auth attempt", kv...)
}
