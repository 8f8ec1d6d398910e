package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/console/internal/infrastructure/api"
)

func TestRun(t *testing.T) {
	var mu sync.Mutex
	posts := map[string]int{}
	var firstUser map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		mu.Lock()
		posts[r.URL.Path]++
		if r.URL.Path == "/users" && firstUser == nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&firstUser))
		}
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := api.New(srv.URL, 5*time.Second, zap.NewNop())
	require.NoError(t, Run(context.Background(), client, zap.NewNop(), 2))

	// The admin account plus two random users.
	assert.Equal(t, 3, posts["/users"])
	assert.Equal(t, 2, posts["/employees"])
	assert.Equal(t, 2, posts["/suppliers"])
	assert.Equal(t, 2, posts["/customers"])
	assert.Equal(t, 2, posts["/forests"])
	assert.Equal(t, 2, posts["/treespecies"])
	assert.Equal(t, 2, posts["/warehouses"])
	assert.Equal(t, 2, posts["/producttypes"])
	assert.Equal(t, 2, posts["/sawmills"])
	assert.Equal(t, 2, posts["/transportcompanies"])

	require.NotNil(t, firstUser)
	assert.Equal(t, "admin@lumber.local", firstUser["email"])
	// Passwords are stored hashed, never as typed.
	assert.NotEqual(t, "admin", firstUser["password"])
}

func TestRunBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := api.New(srv.URL, time.Second, zap.NewNop())
	err := Run(context.Background(), client, zap.NewNop(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed users")
}
