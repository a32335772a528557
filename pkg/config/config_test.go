package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, "offerdesk", cfg.Mongo.Database)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_StringPortAndDriver(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secret")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_DRIVER", "Postgres")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
}

func TestFromViper_SinSecret_Error(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_DriverDesconocido_Error(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secret")
	v.Set("DB_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "hr", Password: "p@ss/word", DBName: "offers", SSLMode: "disable"}
	assert.Equal(t, "postgres://hr:p%40ss%2Fword@db:5432/offers?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
