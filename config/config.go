package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Load reads .env (outside production) and returns a viper instance bound to
// the process environment with the shared defaults applied.
func Load() *viper.Viper {
	if os.Getenv("ENV") != Production {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ENV", Development)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "fastfoodz")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("KAFKA_BROKER", "localhost:9092")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:8000,http://127.0.0.1:8000")

	InitLogging(v.GetString("ENV"))
	return v
}

// InitLogging configures the global logrus logger for the given environment.
func InitLogging(env string) {
	switch env {
	case Production:
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.JSONFormatter{})
	case Staging:
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
}

func PostgresDSN(v *viper.Viper) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		v.GetString("DB_USER"), v.GetString("DB_PASSWORD"),
		v.GetString("DB_HOST"), v.GetString("DB_PORT"), v.GetString("DB_NAME"))
}

func MustInitPostgres(v *viper.Viper) *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN(v))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(v *viper.Viper) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: v.GetString("REDIS_HOST") + ":" + v.GetString("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	return client
}

func NewKafkaReader(v *viper.Viper, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{v.GetString("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(v *viper.Viper, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(v.GetString("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// SplitCSV turns "a, b,,c" into [a b c]. An empty result means allow-all.
func SplitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
