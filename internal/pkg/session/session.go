package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/InkFox/internal/pkg/cache"
	"github.com/ManuelReschke/InkFox/internal/pkg/env"
	"github.com/ManuelReschke/InkFox/internal/pkg/usercontext"
)

const CookieName = "session_id"

// NewSessionStore creates a session store backed by Redis database 1 on the
// same server as the cache.
func NewSessionStore() *session.Store {
	cacheClient := cache.GetClient()
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	storage := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})

	return New(storage, env.GetEnvDuration("SESSION_EXPIRATION", 2*time.Hour))
}

// New creates a session store. A nil storage keeps sessions in memory.
func New(storage fiber.Storage, expiration time.Duration) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev() && env.GetEnv("SESSION_COOKIE_SECURE", "false") == "true",
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		Expiration:     expiration,
		KeyLookup:      "cookie:" + CookieName,
	})
}

// Login binds userID to a fresh session id.
func Login(c *fiber.Ctx, store *session.Store, userID uint) error {
	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}
	sess.Set(usercontext.KeyUserID, userID)
	return sess.Save()
}

// Logout destroys the session and expires its cookie.
func Logout(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	return sess.Destroy()
}

// UserID returns the user bound to the request's session, if any.
func UserID(c *fiber.Ctx, store *session.Store) (uint, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Get(usercontext.KeyUserID).(uint)
	return id, ok && id != 0
}
