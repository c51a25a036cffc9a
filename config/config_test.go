package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single", input: "http://a", want: []string{"http://a"}},
		{name: "trims and skips empty", input: " http://a, ,http://b ", want: []string{"http://a", "http://b"}},
		{name: "empty means allow all", input: "", want: []string{"*"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, SplitCSV(testCase.input))
		})
	}
}

func TestInitLogging(t *testing.T) {
	InitLogging(Production)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, isJSON)

	InitLogging(Development)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", Staging)
	t.Setenv("DB_NAME", "orders_test")

	v := Load()

	assert.Equal(t, "orders_test", v.GetString("DB_NAME"))
	assert.Equal(t, "6379", v.GetString("REDIS_PORT"))
	assert.Equal(t, "postgres://postgres:@localhost:5432/orders_test?sslmode=disable", PostgresDSN(v))
}
