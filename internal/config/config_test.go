package config

import (
	"cardbot-server/internal/util"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CARDBOT_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CARDBOT_JWT_PRIVATE_KEY", "private2.key")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("bench-controller", cfg.Controller.Name)
	a.Equal("public.pem", cfg.JWT.PublicKey)
	a.Equal("private2.key", cfg.JWT.PrivateKey)

	// keys absent from the file keep their defaults
	a.Equal("./sql", cfg.MigrationsPath)

	// ensure that it's only loaded once
	_ = os.Setenv("CARDBOT_JWT_PRIVATE_KEY", "private3.key")
	// ensure we aren't using a pointer
	cfg.JWT.PrivateKey = "bad"
	cfg = Instance()
	a.Equal("private2.key", cfg.JWT.PrivateKey)
}

func TestDefaults(t *testing.T) {
	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "controller", cfg.Controller.Name)
	assert.Equal(t, "jwt-public.pem", cfg.JWT.PublicKey)
	assert.Equal(t, "info", cfg.Log.Level)
}
