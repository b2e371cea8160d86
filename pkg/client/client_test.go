package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"noteshop/pkg/client"
	"noteshop/pkg/credential"
	"noteshop/pkg/purchase"
	"noteshop/pkg/song"
	"noteshop/pkg/storage"
)

func issueToken(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{
			"id":    "user123",
			"name":  "Test User",
			"email": "test@example.com",
			"role":  "regular",
		},
		"iat": time.Now().UTC().Unix(),
		"exp": time.Now().Add(time.Hour).UTC().Unix(),
	})
	signed, err := token.SignedString([]byte("test_secret"))
	assert.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *credential.Manager) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cred := credential.NewManager(storage.NewMemStore())
	return client.New(server.URL, cred), cred
}

func TestLoginStoresToken(t *testing.T) {
	token := issueToken(t)

	api, cred := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var form map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "validuser", form["username"])

		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))

	assert.NoError(t, api.Login("validuser", "correct"))
	assert.Equal(t, token, cred.ValidToken())
}

func TestLoginRejectsUnusableToken(t *testing.T) {
	api, cred := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "not.a.token"})
	}))

	assert.Error(t, api.Login("validuser", "correct"))
	assert.Equal(t, "", cred.ValidToken())
}

func TestLoginFailure(t *testing.T) {
	api, cred := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid password"})
	}))

	err := api.Login("validuser", "wrong")

	assert.ErrorContains(t, err, "invalid password")
	assert.Equal(t, "", cred.ValidToken())
}

func TestSongs(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/songs/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "classical", r.URL.Query().Get("category"))

		json.NewEncoder(w).Encode(song.Page{
			Items:      []*song.Song{{Title: "Prelude", Artist: "Bach"}},
			Pagination: song.Pagination{Page: 2, HasMore: true},
		})
	}))

	page, err := api.Songs(2, "classical")

	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.Pagination.HasMore)
}

func TestReportView(t *testing.T) {
	const songID = "607f1f77bcf86cd799439011"

	var calls int
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/song/"+songID+"/view", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]int{"views": 1})
	}))

	assert.NoError(t, api.ReportView(songID))
	assert.Equal(t, 1, calls)
}

func TestPurchasesSendsBearerToken(t *testing.T) {
	token := issueToken(t)

	api, cred := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]*purchase.Purchase{
			{SongID: "607f1f77bcf86cd799439011", Status: purchase.StatusCompleted, Type: purchase.TypeSong},
		})
	}))
	assert.NoError(t, cred.SetToken(token))

	purchases, err := api.Purchases()

	assert.NoError(t, err)
	assert.Len(t, purchases, 1)
	assert.True(t, purchase.HasAccess("607f1f77bcf86cd799439011", purchases))
}

func TestLogoutClearsCredentialEvenOnServerError(t *testing.T) {
	token := issueToken(t)

	api, cred := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	assert.NoError(t, cred.SetToken(token))

	err := api.Logout()

	assert.Error(t, err)
	assert.Equal(t, "", cred.ValidToken())
}
