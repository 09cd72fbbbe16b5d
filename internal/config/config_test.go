package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedChatIDs(t *testing.T) {
	cfg := &Config{AdminChats: "100, 200,abc,,300"}

	assert.Equal(t, []int64{100, 200, 300}, cfg.AllowedChatIDs())
}

func TestAllowedChatIDsEmpty(t *testing.T) {
	cfg := &Config{AdminChats: ""}

	assert.Empty(t, cfg.AllowedChatIDs())
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
}
