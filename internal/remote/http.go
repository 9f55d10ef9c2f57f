package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// HTTPStore talks to a document store exposing a Firebase-RTDB-style REST
// surface: PUT/GET/DELETE {base}/{collection}/{key}.json and
// GET/DELETE {base}/{collection}.json for whole collections.
type HTTPStore struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewHTTPStore(baseURL string, logger internal.Logger) *HTTPStore {
	return &HTTPStore{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *HTTPStore) NewKey() string { return uuid.NewString() }

func (s *HTTPStore) Push(ctx context.Context, collection, key string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = s.do(ctx, http.MethodPut, s.keyURL(collection, key), bytes.NewReader(body))
	return err
}

func (s *HTTPStore) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	raw, err := s.do(ctx, http.MethodGet, s.keyURL(collection, key), nil)
	if err != nil {
		return nil, err
	}
	if isJSONNull(raw) {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (s *HTTPStore) ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	raw, err := s.do(ctx, http.MethodGet, s.collectionURL(collection), nil)
	if err != nil {
		return nil, err
	}
	// An absent collection reads as JSON null.
	if isJSONNull(raw) {
		return map[string]json.RawMessage{}, nil
	}
	records := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Errorf("failed to decode collection %s: %v", collection, err)
		return nil, err
	}
	return records, nil
}

func (s *HTTPStore) Delete(ctx context.Context, collection, key string) error {
	_, err := s.do(ctx, http.MethodDelete, s.keyURL(collection, key), nil)
	return err
}

func (s *HTTPStore) DeleteAll(ctx context.Context, collection string) error {
	_, err := s.do(ctx, http.MethodDelete, s.collectionURL(collection), nil)
	return err
}

func (s *HTTPStore) do(ctx context.Context, method, target string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		s.logger.Errorf("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.logger.Errorf("remote store call failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.logger.Errorf("remote store returned %d for %s %s", resp.StatusCode, method, target)
		return nil, errors.New("remote store returned non-200")
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Errorf("failed to read remote response: %v", err)
		return nil, err
	}
	return raw, nil
}

func (s *HTTPStore) collectionURL(collection string) string {
	return s.BaseURL + "/" + url.PathEscape(collection) + ".json"
}

func (s *HTTPStore) keyURL(collection, key string) string {
	return s.BaseURL + "/" + url.PathEscape(collection) + "/" + url.PathEscape(key) + ".json"
}

func isJSONNull(raw []byte) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// HTTPAuth resolves the signed-in user by presenting the device token to the
// remote auth service.
type HTTPAuth struct {
	AuthServiceURL string
	Token          string
	HTTPClient     *http.Client
	logger         internal.Logger
}

func NewHTTPAuth(authServiceURL, token string, logger internal.Logger) *HTTPAuth {
	return &HTTPAuth{
		AuthServiceURL: authServiceURL,
		Token:          token,
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
		logger:         logger,
	}
}

func (a *HTTPAuth) CurrentUserID(ctx context.Context) (string, error) {
	body, _ := json.Marshal(map[string]string{"token": a.Token})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.AuthServiceURL, bytes.NewReader(body))
	if err != nil {
		a.logger.Errorf("failed to create auth request: %v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.logger.Errorf("failed to call auth service: %v", err)
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Errorf("auth service returned %d", resp.StatusCode)
		return "", errors.New("auth service returned non-200")
	}
	var user internal.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		a.logger.Errorf("failed to decode auth response: %v", err)
		return "", err
	}
	return user.ID, nil
}

// StaticAuth pins the signed-in user, for development and tests.
type StaticAuth struct {
	UserID string
}

func (a *StaticAuth) CurrentUserID(ctx context.Context) (string, error) {
	return a.UserID, nil
}

var _ Store = (*HTTPStore)(nil)
var _ Auth = (*HTTPAuth)(nil)
var _ Auth = (*StaticAuth)(nil)
