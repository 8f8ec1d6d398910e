package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func testEntity(t *testing.T, name string) *catalog.Entity {
	t.Helper()
	e, ok := catalog.ByName(name)
	require.True(t, ok)
	return e
}

func testClient(t *testing.T, srv *httptest.Server) *api.Client {
	t.Helper()
	return api.New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestListRefreshAndFilter(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees", r.URL.Path)
		hits.Add(1)
		_ = json.NewEncoder(w).Encode([]api.Record{
			{"employee_id": 1, "full_name": "Maria Keller", "department": "Sales", "position": "Lead"},
			{"employee_id": 2, "full_name": "Jonas Weber", "department": "Warehouse", "position": "Clerk"},
		})
	}))
	defer srv.Close()

	l := NewList(testClient(t, srv), testEntity(t, "employees"), nil, zap.NewNop())
	require.NoError(t, l.Refresh(context.Background()))
	require.Len(t, l.All(), 2)
	assert.False(t, l.Loading())
	assert.NoError(t, l.Err())

	// Filtering is derived from the fetched set: narrowing and clearing
	// the query never trigger another fetch.
	l.SetQuery("maria")
	recs := l.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "Maria Keller", recs[0]["full_name"])

	l.SetQuery("warehouse")
	recs = l.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "Jonas Weber", recs[0]["full_name"])

	l.SetQuery("")
	assert.Len(t, l.Records(), 2)
	assert.Equal(t, int32(1), hits.Load())
}

func TestListRefreshFailureKeepsRecords(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
			return
		}
		_ = json.NewEncoder(w).Encode([]api.Record{{"employee_id": 1, "full_name": "Maria"}})
	}))
	defer srv.Close()

	l := NewList(testClient(t, srv), testEntity(t, "employees"), nil, zap.NewNop())
	require.NoError(t, l.Refresh(context.Background()))
	require.Len(t, l.All(), 1)

	fail.Store(true)
	require.Error(t, l.Refresh(context.Background()))
	assert.Error(t, l.Err())
	// The last good record set stays visible.
	assert.Len(t, l.All(), 1)
}

func TestListCloseDiscardsLateResponse(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode([]api.Record{{"employee_id": 9, "full_name": "Late"}})
	}))
	defer srv.Close()

	l := NewList(testClient(t, srv), testEntity(t, "employees"), nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Refresh(context.Background())
	}()

	// Leave the screen while the fetch is still in flight.
	for !l.Loading() {
		time.Sleep(time.Millisecond)
	}
	l.Close()
	close(release)
	<-done

	assert.Empty(t, l.All())
	assert.False(t, l.Loading())
}

func TestListDelete(t *testing.T) {
	var deletes, lists atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			require.Equal(t, "/supplier", r.URL.Path)
			require.Equal(t, "4", r.URL.Query().Get("id"))
			deletes.Add(1)
			w.WriteHeader(http.StatusOK)
		default:
			lists.Add(1)
			_ = json.NewEncoder(w).Encode([]api.Record{})
		}
	}))
	defer srv.Close()

	t.Run("declined confirmation aborts", func(t *testing.T) {
		decline := func(string) bool { return false }
		l := NewList(testClient(t, srv), testEntity(t, "suppliers"), decline, zap.NewNop())
		err := l.Delete(context.Background(), 4)
		assert.ErrorIs(t, err, ErrCancelled)
		assert.Equal(t, int32(0), deletes.Load())
	})

	t.Run("confirmed delete refetches", func(t *testing.T) {
		var prompt string
		accept := func(p string) bool { prompt = p; return true }
		l := NewList(testClient(t, srv), testEntity(t, "suppliers"), accept, zap.NewNop())
		require.NoError(t, l.Delete(context.Background(), 4))
		assert.Equal(t, "Delete Suppliers #4?", prompt)
		assert.Equal(t, int32(1), deletes.Load())
		assert.Equal(t, int32(1), lists.Load())
	})

	t.Run("read only entities refuse", func(t *testing.T) {
		l := NewList(testClient(t, srv), testEntity(t, "auditlogs"), nil, zap.NewNop())
		assert.Error(t, l.Delete(context.Background(), 1))
	})
}
