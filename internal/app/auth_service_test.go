package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wellnesshub/internal/adapter/memory"
	"wellnesshub/internal/app"
	"wellnesshub/internal/domain"
	"wellnesshub/internal/remote"
)

const testSecret = "test-secret"

func TestAuthService_OfflinePairs(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), nil, testSecret)

	tests := []struct {
		username string
		password string
		wantRole domain.Role
	}{
		{"student", "student", domain.RoleStudent},
		{"admin", "admin", domain.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			id, err := svc.Login(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if !id.IsAuthenticated || id.Role != tt.wantRole {
				t.Errorf("identity = %+v", id)
			}
			if id.User.Email != tt.username+"@uni.edu" {
				t.Errorf("Email = %q", id.User.Email)
			}
			if id.Token == "" {
				t.Error("expected a minted token")
			}
		})
	}
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), nil, testSecret)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "student", "hunter2"},
		{"unknown user", "nobody", "nobody"},
		{"crossed pair", "student", "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.username, tt.password); !errors.Is(err, app.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthService_IdentityPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	first := app.NewAuthService(store, nil, testSecret)
	if _, err := first.Login(ctx, "admin", "admin"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	second := app.NewAuthService(store, nil, testSecret)
	id := second.Current(ctx)
	if !id.IsAuthenticated || id.Role != domain.RoleAdmin {
		t.Errorf("identity lost across reload: %+v", id)
	}
}

func TestAuthService_LogoutClearsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), nil, testSecret)

	if _, err := svc.Login(ctx, "student", "student"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if id := svc.Current(ctx); id.IsAuthenticated {
		t.Errorf("identity survived logout: %+v", id)
	}
	if key := svc.UserKey(ctx); key != "guest" {
		t.Errorf("UserKey = %q, want guest", key)
	}
}

func TestAuthService_MintedTokenParses(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), nil, testSecret)

	id, err := svc.Login(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.ParseToken(id.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != string(domain.RoleAdmin) {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "wellnesshub" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestAuthService_ParseTokenRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	minter := app.NewAuthService(memory.New(), nil, "other-secret")
	id, err := minter.Login(ctx, "student", "student")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc := app.NewAuthService(memory.New(), nil, testSecret)
	if _, err := svc.ParseToken(id.Token); err == nil {
		t.Error("expected a foreign-signed token to be rejected")
	}
}

func TestAuthService_BackendLoginWins(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"srv-token","user":{"id":"7","username":"rivera","email":"rivera@uni.edu","role":"admin"}}`))
	}))
	defer srv.Close()

	store := memory.New()
	svc := app.NewAuthService(store, remote.New(srv.URL, nil), testSecret)
	id, err := svc.Login(ctx, "rivera", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.Token != "srv-token" || id.Role != domain.RoleAdmin {
		t.Errorf("identity = %+v", id)
	}
	if id.User.ID != "7" {
		t.Errorf("User.ID = %q", id.User.ID)
	}
}

func TestAuthService_BackendDownFallsBackToOffline(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := app.NewAuthService(memory.New(), remote.New(srv.URL, nil), testSecret)
	id, err := svc.Login(ctx, "student", "student")
	if err != nil {
		t.Fatalf("offline fallback failed: %v", err)
	}
	if id.Role != domain.RoleStudent {
		t.Errorf("Role = %q", id.Role)
	}
}

func TestAuthService_RegisterNeedsBackend(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), nil, testSecret)

	err := svc.Register(ctx, "new", "new@uni.edu", "pw", domain.RoleStudent)
	if !errors.Is(err, app.ErrNoBackend) {
		t.Errorf("err = %v, want ErrNoBackend", err)
	}
}

func TestIdentityTokenSource(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := app.NewAuthService(store, nil, testSecret)

	src := app.IdentityTokenSource(store)
	if got := src(); got != "" {
		t.Errorf("signed out token = %q, want empty", got)
	}

	id, err := svc.Login(ctx, "student", "student")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := src(); got != id.Token {
		t.Errorf("token source = %q, want the persisted token", got)
	}
}
