package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddrone/internal/adapters/out/httpclient"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClient_GetUser_Success(t *testing.T) {
	userID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/"+userID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + userID.String() + `",
			"fullName": "Nguyen Van A",
			"email": "a@example.com",
			"phone": "+84901234567"
		}`))
	}))
	defer server.Close()

	client := httpclient.NewUserClient(server.URL)
	user, err := client.GetUser(t.Context(), userID)

	require.NoError(t, err)
	assert.True(t, user.ID.IsEqual(userID))
	assert.Equal(t, "Nguyen Van A", user.FullName)
}

func TestUserClient_GetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := httpclient.NewUserClient(server.URL)
	_, err := client.GetUser(t.Context(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUserClient_GetUser_ServiceDownFallsBackToPlaceholder(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()

	userID := kernel.NewUUID()
	client := httpclient.NewUserClient(server.URL)
	user, err := client.GetUser(t.Context(), userID)

	require.NoError(t, err)
	assert.True(t, user.ID.IsEqual(userID))
	assert.Equal(t, "Unknown User", user.FullName)
}
