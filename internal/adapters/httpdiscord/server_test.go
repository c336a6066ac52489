package httpdiscord

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/spelltable-bot/internal/adapters/discord"
	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

type stubRouter struct {
	resp   *discordgo.InteractionResponse
	err    error
	called int
}

func (s *stubRouter) Route(_ context.Context, _ *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	s.called++
	return s.resp, s.err
}

type stubImages struct {
	url string
}

func (s *stubImages) Get(_ context.Context, _ string) (storage.CardImage, error) {
	if s.url == "" {
		return storage.CardImage{}, storage.ErrNotFound
	}
	return storage.CardImage{ImageURL: s.url}, nil
}

func newTestServer(t *testing.T, router Router, images ImageStore) (*Server, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	proxy := NewImageProxy(images, "spelltable-discord-bot")
	return New(testAppID, pub, router, proxy), priv
}

const testAppID = "app-123"

// signedRequest firma como lo hace Discord: ed25519 sobre timestamp+body.
func signedRequest(priv ed25519.PrivateKey, body string) *http.Request {
	const ts = "1700000000"
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	sig := ed25519.Sign(priv, []byte(ts+body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", ts)
	return req
}

func TestInteractionRejectsUnsignedRequest(t *testing.T) {
	router := &stubRouter{}
	srv, _ := newTestServer(t, router, &stubImages{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":1}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// sin firma válida no corre ningún handler
	assert.Zero(t, router.called)
}

func TestInteractionRejectsBadSignature(t *testing.T) {
	router := &stubRouter{}
	srv, _ := newTestServer(t, router, &stubImages{})
	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	req := signedRequest(otherPriv, `{"type":1}`)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, router.called)
}

func TestInteractionPongRoundTrip(t *testing.T) {
	router := &stubRouter{resp: discord.Pong()}
	srv, priv := newTestServer(t, router, &stubImages{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, signedRequest(priv, `{"type":1}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, router.called)

	var out struct {
		Type int `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int(discordgo.InteractionResponsePong), out.Type)
}

func TestInteractionUnknownCommandIs404(t *testing.T) {
	router := &stubRouter{err: discord.ErrUnknownCommand}
	srv, priv := newTestServer(t, router, &stubImages{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, signedRequest(priv, `{"type":2,"data":{"name":"bogus"}}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Command not found")
}

func TestInteractionUnknownTypeIs400(t *testing.T) {
	router := &stubRouter{err: discord.ErrUnknownInteraction}
	srv, priv := newTestServer(t, router, &stubImages{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, signedRequest(priv, `{"type":99}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown Type")
}

func TestRootLiveness(t *testing.T) {
	srv, _ := newTestServer(t, &stubRouter{}, &stubImages{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testAppID)
}

func TestImageRouteServesStoredImage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/card.jpg", r.URL.Path)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer upstream.Close()

	srv, _ := newTestServer(t, &stubRouter{}, &stubImages{url: upstream.URL + "/card.jpg"})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestImageRouteServesFirstFaceOfDoubleFaced(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/front.jpg", r.URL.Path)
		_, _ = w.Write([]byte("front"))
	}))
	defer upstream.Close()

	srv, _ := newTestServer(t, &stubRouter{},
		&stubImages{url: upstream.URL + "/front.jpg " + upstream.URL + "/back.jpg"})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user-1", nil))

	assert.Equal(t, "front", rec.Body.String())
}

func TestImageRouteFallsBackToCardBack(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("card-back"))
	}))
	defer upstream.Close()

	proxy := NewImageProxy(&stubImages{}, "spelltable-discord-bot")
	proxy.fallback = upstream.URL + "/back.jpg"
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	srv := New(testAppID, pub, &stubRouter{}, proxy)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nobody", nil))

	// usuario desconocido nunca es 404: se sirve el dorso
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "card-back", rec.Body.String())
}
