// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// newScenarioAuthSvc wires the real JWT codec, an in-memory SQLite
// credential store and a miniredis session cache.
func newScenarioAuthSvc(t *testing.T) (AuthService, *miniredis.Miniredis) {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := testAppConfig()
	svc, err := NewAuthService(
		store.NewUserRepository(db, logger.Nop()),
		store.NewRedisSessionCache(rdb),
		NewJWTTokenCodec(cfg),
		cfg,
		logger.Nop(),
	)
	require.NoError(t, err)

	return svc, s
}

func TestAuthScenario_RegisterLoginLogout(t *testing.T) {
	svc, s := newScenarioAuthSvc(t)
	ctx := context.Background()

	// register opens a session
	t1, err := svc.Register(ctx, models.LoginParams{Account: "bob", Password: "pw1", Nickname: "Bob"})
	require.NoError(t, err)
	require.NotEmpty(t, t1.SignedString)

	user, ok := svc.CheckToken(ctx, t1.SignedString)
	require.True(t, ok)
	assert.Equal(t, "bob", user.Account)
	assert.Equal(t, "Bob", user.Nickname)
	assert.Equal(t, testAvatar, user.Avatar)
	assert.Empty(t, user.Password)
	assert.Equal(t, 24*time.Hour, s.TTL(SessionKey(t1.SignedString)))

	// login issues a second, independent session
	t2, err := svc.Login(ctx, models.LoginParams{Account: "bob", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEqual(t, t1.SignedString, t2.SignedString)

	_, err = svc.Login(ctx, models.LoginParams{Account: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAccountOrPasswordInvalid)

	_, err = svc.Login(ctx, models.LoginParams{Account: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrAccountOrPasswordInvalid)

	// logout only ends the given session
	require.NoError(t, svc.Logout(ctx, t1.SignedString))
	_, ok = svc.CheckToken(ctx, t1.SignedString)
	assert.False(t, ok)

	_, ok = svc.CheckToken(ctx, t2.SignedString)
	assert.True(t, ok)

	// logging out twice is fine
	require.NoError(t, svc.Logout(ctx, t1.SignedString))

	// the account stays taken
	_, err = svc.Register(ctx, models.LoginParams{Account: "bob", Password: "pw2", Nickname: "Bob2"})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAuthScenario_SessionExpires(t *testing.T) {
	svc, s := newScenarioAuthSvc(t)
	ctx := context.Background()

	token, err := svc.Register(ctx, models.LoginParams{Account: "bob", Password: "pw1", Nickname: "Bob"})
	require.NoError(t, err)

	s.FastForward(24*time.Hour + time.Second)

	_, ok := svc.CheckToken(ctx, token.SignedString)
	assert.False(t, ok)
}

func TestAuthScenario_ValidTokenWithoutSession(t *testing.T) {
	svc, _ := newScenarioAuthSvc(t)
	ctx := context.Background()

	// signed by the same key but never stored
	orphan, err := NewJWTTokenCodec(testAppConfig()).Create(1)
	require.NoError(t, err)

	_, ok := svc.CheckToken(ctx, orphan.SignedString)
	assert.False(t, ok)
}

func TestAuthScenario_ForgedSessionKeyIgnored(t *testing.T) {
	svc, s := newScenarioAuthSvc(t)
	ctx := context.Background()

	// a cache entry alone is not enough: the token must verify too
	require.NoError(t, s.Set(SessionKey("garbage"), `{"id":1,"account":"bob"}`))

	_, ok := svc.CheckToken(ctx, "garbage")
	assert.False(t, ok)
}

func TestAuthScenario_ConcurrentRegister(t *testing.T) {
	svc, _ := newScenarioAuthSvc(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		exists    int
		others    []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, models.LoginParams{Account: "bob", Password: "pw1", Nickname: "Bob"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrAccountExists):
				exists++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, exists)
}
