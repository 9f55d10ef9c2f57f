package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// documentServer mimics the remote REST surface: PUT/GET/DELETE on
// /{collection}/{key}.json and GET/DELETE on /{collection}.json, absent
// paths reading as JSON null.
type documentServer struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage // path (without .json) -> record
}

func newDocumentServer() *documentServer {
	return &documentServer{docs: map[string]json.RawMessage{}}
}

func (d *documentServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
	d.mu.Lock()
	defer d.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		var body json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		d.docs[path] = body
		w.Write(body)
	case http.MethodGet:
		if doc, ok := d.docs[path]; ok {
			w.Write(doc)
			return
		}
		// Collection read: gather keys one level below path.
		collection := map[string]json.RawMessage{}
		for p, doc := range d.docs {
			if strings.HasPrefix(p, path+"/") {
				collection[strings.TrimPrefix(p, path+"/")] = doc
			}
		}
		if len(collection) == 0 {
			w.Write([]byte("null"))
			return
		}
		json.NewEncoder(w).Encode(collection)
	case http.MethodDelete:
		delete(d.docs, path)
		for p := range d.docs {
			if strings.HasPrefix(p, path+"/") {
				delete(d.docs, p)
			}
		}
		w.Write([]byte("null"))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestHTTPStore(t *testing.T) *HTTPStore {
	t.Helper()
	srv := httptest.NewServer(newDocumentServer())
	t.Cleanup(srv.Close)
	return NewHTTPStore(srv.URL, internal.NopLogger())
}

func TestHTTPStoreRoundTrip(t *testing.T) {
	s := newTestHTTPStore(t)
	ctx := context.Background()

	entry := internal.EmotionEntry{EntryID: "e1", UserID: "u1", JournalText: "hello"}
	require.NoError(t, s.Push(ctx, CollectionEntries, "e1", entry))

	raw, err := s.Read(ctx, CollectionEntries, "e1")
	require.NoError(t, err)

	var got internal.EmotionEntry
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "e1", got.EntryID)
	assert.Equal(t, "hello", got.JournalText)
}

func TestHTTPStoreReadMissingKey(t *testing.T) {
	s := newTestHTTPStore(t)

	_, err := s.Read(context.Background(), CollectionEntries, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPStoreReadAll(t *testing.T) {
	s := newTestHTTPStore(t)
	ctx := context.Background()

	// Absent collection reads as empty, not an error.
	records, err := s.ReadAll(ctx, CollectionEmotions)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, s.Push(ctx, CollectionEmotions, "calm", internal.Emotion{Name: "Calm"}))
	require.NoError(t, s.Push(ctx, CollectionEmotions, "tense", internal.Emotion{Name: "Tense"}))

	records, err = s.ReadAll(ctx, CollectionEmotions)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Contains(t, records, "calm")
	assert.Contains(t, records, "tense")
}

func TestHTTPStoreDelete(t *testing.T) {
	s := newTestHTTPStore(t)
	ctx := context.Background()

	require.NoError(t, s.Push(ctx, CollectionEntries, "e1", internal.EmotionEntry{EntryID: "e1"}))
	require.NoError(t, s.Delete(ctx, CollectionEntries, "e1"))

	_, err := s.Read(ctx, CollectionEntries, "e1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPStoreDeleteAll(t *testing.T) {
	s := newTestHTTPStore(t)
	ctx := context.Background()

	require.NoError(t, s.Push(ctx, CollectionEmotions, "calm", internal.Emotion{Name: "Calm"}))
	require.NoError(t, s.Push(ctx, CollectionEmotions, "tense", internal.Emotion{Name: "Tense"}))
	require.NoError(t, s.DeleteAll(ctx, CollectionEmotions))

	records, err := s.ReadAll(ctx, CollectionEmotions)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHTTPStoreSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, internal.NopLogger())
	assert.Error(t, s.Push(context.Background(), CollectionEntries, "e1", "x"))
}

func TestHTTPAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		switch body["token"] {
		case "valid":
			json.NewEncoder(w).Encode(internal.User{ID: "u1", Name: "Ada"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	userID, err := NewHTTPAuth(srv.URL, "valid", internal.NopLogger()).CurrentUserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	// A rejected token means nobody is signed in, not an error.
	userID, err = NewHTTPAuth(srv.URL, "expired", internal.NopLogger()).CurrentUserID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryStoreNewKeyUnique(t *testing.T) {
	s := NewMemoryStore()
	assert.NotEqual(t, s.NewKey(), s.NewKey())
}
