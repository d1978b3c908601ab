package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roleTestAuth = jwtauth.New("HS256", []byte("role-middleware-test-secret"), nil)

func requestWithRole(t *testing.T, role user.Role) *http.Request {
	t.Helper()

	token, _, err := roleTestAuth.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    string(role),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

// serve runs req through the middleware and reports whether the inner
// handler was reached.
func serve(mw func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	rec, reached := serve(RequireAdmin, requestWithRole(t, user.RoleAdmin))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = serve(RequireAdmin, requestWithRole(t, user.RoleScheduler))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireScheduler(t *testing.T) {
	t.Parallel()

	for _, role := range []user.Role{user.RoleScheduler, user.RoleAdmin} {
		rec, reached := serve(RequireScheduler, requestWithRole(t, role))
		assert.True(t, reached, "role %s should pass", role)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, reached := serve(RequireScheduler, requestWithRole(t, user.RoleCaregiver))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireCareStaff(t *testing.T) {
	t.Parallel()

	for _, role := range []user.Role{user.RoleCaregiver, user.RoleNurse} {
		_, reached := serve(RequireCareStaff, requestWithRole(t, role))
		assert.True(t, reached, "role %s should pass", role)
	}

	rec, reached := serve(RequireCareStaff, requestWithRole(t, user.RoleClient))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	manage := RequirePermission(user.PermissionVisitManage)

	rec, reached := serve(manage, requestWithRole(t, user.RoleScheduler))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = serve(manage, requestWithRole(t, user.RoleCaregiver))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Clocking is a care staff permission, schedulers do not hold it
	clock := RequirePermission(user.PermissionVisitClock)
	_, reached = serve(clock, requestWithRole(t, user.RoleScheduler))
	assert.False(t, reached)
}

func TestRequirePermission_MissingClaims(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, reached := serve(RequirePermission(user.PermissionVisitManage), req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
