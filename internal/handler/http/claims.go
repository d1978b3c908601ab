package http

import (
	"net/http"

	"github.com/caretrack/agency-backend-go/internal/domain/auth"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/go-chi/jwtauth/v5"
)

// actorFromRequest builds the acting identity from verified token claims.
// Services receive the actor explicitly and never read claims themselves.
func actorFromRequest(r *http.Request) (visit.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return visit.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return visit.Actor{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return visit.Actor{}, auth.ErrInvalidToken
	}

	actor := visit.Actor{
		UserID: userID,
		Role:   user.Role(roleStr),
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		actor.EmployeeID = &employeeID
	}
	if clientID, ok := claims["client_id"].(string); ok && clientID != "" {
		actor.ClientID = &clientID
	}

	return actor, nil
}

// employeeIDFromRequest returns the acting employee identity for clock and
// documentation endpoints.
func employeeIDFromRequest(r *http.Request) (string, error) {
	actor, err := actorFromRequest(r)
	if err != nil {
		return "", err
	}

	if actor.EmployeeID == nil {
		return "", user.ErrMissingEmployeeIdentity
	}

	return *actor.EmployeeID, nil
}
