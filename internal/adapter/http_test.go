package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulrahman/storyshare/internal/config"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/models"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestAPI(t *testing.T, handler http.Handler) StoryAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewHTTPStoryAPI(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return api
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPStoryAPI_BaseURLValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "full url", baseURL: "https://story-api.example.com/v1"},
		{name: "scheme added when missing", baseURL: "story-api.example.com"},
		{name: "empty", baseURL: "", wantErr: true},
		{name: "whitespace only", baseURL: "   ", wantErr: true},
		{name: "scheme without host", baseURL: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPStoryAPI(config.ClientAdapter{BaseURL: tt.baseURL}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestHTTPStoryAPI_SetToken(t *testing.T) {
	api := newTestAPI(t, http.NotFoundHandler())

	assert.Empty(t, api.Token())

	api.SetToken("  jwt-token  ")
	assert.Equal(t, "jwt-token", api.Token())

	api.SetToken("")
	assert.Empty(t, api.Token())
}

func TestHTTPStoryAPI_Token_ConcurrentAccess(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"message":"ok","listStory":[]}`))
	}))
	ctx := context.Background()

	// Background sync goroutines read the token through authenticated
	// requests while auth commands replace it. Meaningful under -race.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			api.SetToken("jwt-token-" + strconv.Itoa(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _, err := api.ListStories(ctx)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestHTTPStoryAPI_Register(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dimas@example.com", req.Email)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"User created"}`))
	}))

	resp, err := api.Register(context.Background(), models.RegisterRequest{
		Name:     "Dimas",
		Email:    "dimas@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "User created", resp.Message)
}

func TestHTTPStoryAPI_Register_ErrorEnvelope(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"message":"Email is already taken"}`))
	}))

	_, err := api.Register(context.Background(), models.RegisterRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email is already taken")
}

func TestHTTPStoryAPI_Login_StoresToken(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":false,"message":"success",` +
			`"loginResult":{"userId":"user-1","name":"Dimas","token":"jwt-token"}}`))
	}))

	result, err := api.Login(context.Background(), models.LoginRequest{
		Email:    "dimas@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, "jwt-token", api.Token())
}

func TestHTTPStoryAPI_Login_Unauthorized(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true,"message":"Invalid password"}`))
	}))

	_, err := api.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, api.Token())
}

// ── ListStories ──────────────────────────────────────────────────────────────

func TestHTTPStoryAPI_ListStories(t *testing.T) {
	raw := `{"error":false,"message":"Stories fetched successfully","listStory":[` +
		`{"id":"s1","name":"Dimas","description":"first","photoUrl":"https://img.example.com/s1.jpg",` +
		`"createdAt":"2025-05-10T12:00:00.000Z","lat":-6.2,"lon":106.8}]}`

	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/stories", r.URL.Path)
		require.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(raw))
	}))
	api.SetToken("jwt-token")

	stories, body, err := api.ListStories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))

	require.Len(t, stories, 1)
	story := stories[0]
	assert.Equal(t, "s1", story.ID)
	assert.Equal(t, "Dimas", story.AuthorName)
	assert.Equal(t, "https://img.example.com/s1.jpg", story.PhotoURL)
	require.NotNil(t, story.Lat)
	assert.Equal(t, -6.2, *story.Lat)
}

func TestHTTPStoryAPI_ListStories_Unauthorized(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true,"message":"Missing authentication"}`))
	}))

	_, _, err := api.ListStories(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── CreateStory ──────────────────────────────────────────────────────────────

func TestHTTPStoryAPI_CreateStory_Multipart(t *testing.T) {
	photo := make([]byte, 64)
	copy(photo, pngHeader)

	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/stories", r.URL.Path)
		require.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(4<<20))
		assert.Equal(t, "sunset over the bay", r.FormValue("description"))
		assert.Equal(t, "-6.2", r.FormValue("lat"))
		assert.Equal(t, "106.8", r.FormValue("lon"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "sunset.png", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, photo, uploaded)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"Story created successfully"}`))
	}))
	api.SetToken("jwt-token")

	lat, lon := -6.2, 106.8
	resp, err := api.CreateStory(context.Background(), models.NewStory{
		Description: "sunset over the bay",
		Photo:       photo,
		PhotoName:   "sunset.png",
		Lat:         &lat,
		Lon:         &lon,
	})
	require.NoError(t, err)
	assert.Equal(t, "Story created successfully", resp.Message)
}

func TestHTTPStoryAPI_CreateStory_NoLocation(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(4<<20))
		_, hasLat := r.MultipartForm.Value["lat"]
		_, hasLon := r.MultipartForm.Value["lon"]
		assert.False(t, hasLat)
		assert.False(t, hasLon)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"Story created successfully"}`))
	}))

	_, err := api.CreateStory(context.Background(), models.NewStory{
		Description: "no location attached",
		Photo:       pngHeader,
	})
	require.NoError(t, err)
}

func TestHTTPStoryAPI_CreateStory_PayloadTooLarge(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"error":true,"message":"Payload content length greater than maximum allowed: 1000000"}`))
	}))

	_, err := api.CreateStory(context.Background(), models.NewStory{
		Description: "too big",
		Photo:       pngHeader,
	})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

// ── Push subscriptions ───────────────────────────────────────────────────────

func TestHTTPStoryAPI_SubscribePush(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notifications/subscribe", r.URL.Path)

		var sub models.PushSubscription
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "https://push.example.com/ep-1", sub.Endpoint)
		assert.Equal(t, "client-public-key", sub.Keys.P256dh)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"Success to subscribe web push notification."}`))
	}))

	resp, err := api.SubscribePush(context.Background(), models.PushSubscription{
		Endpoint: "https://push.example.com/ep-1",
		Keys:     models.PushKeys{P256dh: "client-public-key", Auth: "auth-secret"},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "subscribe")
}

func TestHTTPStoryAPI_UnsubscribePush(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/notifications/unsubscribe", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://push.example.com/ep-1", body["endpoint"])

		_, _ = w.Write([]byte(`{"error":false,"message":"Success to unsubscribe web push notification."}`))
	}))

	resp, err := api.UnsubscribePush(context.Background(), "https://push.example.com/ep-1")
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "unsubscribe")
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, _, err := api.ListStories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
