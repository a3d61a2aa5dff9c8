package factory

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/reversigame/internal/dependencies/mocks"
	"github.com/mcoot/reversigame/internal/services/moderation"
	"github.com/mcoot/reversigame/internal/storage"
	"github.com/mcoot/reversigame/internal/storage/memory"
	redisstorage "github.com/mcoot/reversigame/internal/storage/redis"
	"github.com/mcoot/reversigame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	MockClock *mocks.MockClock
}

// NewTestApp creates an App over in-memory storage with a frozen clock
func NewTestApp(modCfg moderation.Config) *TestApp {
	return newTestApp(memory.New(), modCfg)
}

// NewTestAppWithRedis creates an App over a Redis player directory reachable
// at addr, typically a miniredis instance
func NewTestAppWithRedis(addr string, modCfg moderation.Config) *TestApp {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return newTestApp(redisstorage.NewWithClient(client, redisstorage.DefaultConfig()), modCfg)
}

func newTestApp(dir storage.Directory, modCfg moderation.Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return &TestApp{
		App:       newWithDependencies(dir, mockClock, modCfg, testutil.NopLogger()),
		MockClock: mockClock,
	}
}
