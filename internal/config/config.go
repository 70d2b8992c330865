package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"local"`
	GrpcConfig     `yaml:"grpc"`
	HttpConfig     `yaml:"http"`
	PostgresConfig `yaml:"postgres"`
	RedisConfig    `yaml:"redis"`
	KafkaConfig    `yaml:"kafka"`
	ChatConfig     `yaml:"chats"`
	JwtConfig      `yaml:"jwt"`
}

type GrpcConfig struct {
	Host           string        `yaml:"host" env-default:"localhost"`
	Port           int           `yaml:"port" env:"GRPC_PORT" env-default:"44044"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"5s"`
}

func (g GrpcConfig) Address() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

type HttpConfig struct {
	HttpAddr   string `yaml:"address" env:"HTTP_ADDR" env-default:"localhost:8080"`
	Prometheus bool   `yaml:"prometheus"`
	Gateway    bool   `yaml:"gateway" env:"HTTP_GATEWAY"`
}

type PostgresConfig struct {
	PgHost     string `yaml:"host" env:"PG_HOST" env-default:"localhost"`
	PgPort     int    `yaml:"port" env:"PG_PORT" env-default:"5432"`
	PgUser     string `yaml:"user" env:"PG_USER" env-default:"postgres"`
	PgPassword string `yaml:"password" env:"PG_PASSWORD"`
	PgDatabase string `yaml:"database" env:"PG_DATABASE" env-default:"mogakco"`
	PgSSLMode  string `yaml:"sslmode" env-default:"disable"`
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.PgHost, p.PgPort, p.PgUser, p.PgPassword, p.PgDatabase, p.PgSSLMode)
}

type RedisConfig struct {
	RedisAddr     string `yaml:"address" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"db" env-default:"0"`
}

type KafkaConfig struct {
	Brokers        []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	OutboxInterval time.Duration `yaml:"outbox_interval" env-default:"1s"`
}

type ChatConfig struct {
	PageSize    int `yaml:"page_size" env-default:"30"`
	MaxPageSize int `yaml:"max_page_size" env-default:"100"`
}

type JwtConfig struct {
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"24h"`
	Secret   string        `yaml:"secret" env:"JWT_SECRET"`
}

// ClientConfig configures the mogakco terminal client.
type ClientConfig struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	ServerAddress string        `yaml:"server_address" env:"MOGAKCO_SERVER" env-default:"localhost:44044"`
	SessionPath   string        `yaml:"session_path" env:"MOGAKCO_SESSION" env-default:"mogakco.db"`
	PageSize      int           `yaml:"page_size" env-default:"30"`
	DialTimeout   time.Duration `yaml:"dial_timeout" env-default:"5s"`
}

// MustLoad reads the server config from the -config flag (configs/local.yaml
// by default). -port overrides the grpc port.
func MustLoad() *Config {
	path, port, _ := fetchFlags("configs/local.yaml")

	cfg := MustLoadByPath(path)

	if port != 0 {
		cfg.GrpcConfig.Port = port
	}

	return cfg
}

func MustLoadByPath(path string) *Config {
	var cfg Config
	mustRead(path, &cfg)
	return &cfg
}

// MustLoadClient reads the client config and returns the positional
// arguments left after the flags.
func MustLoadClient() (*ClientConfig, []string) {
	path, _, args := fetchFlags("configs/client.yaml")

	var cfg ClientConfig
	mustRead(path, &cfg)

	return &cfg, args
}

func mustRead(path string, cfg any) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("config file does not exist: " + path)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}
}

func fetchFlags(defaultPath string) (string, int, []string) {
	var path string
	var port int

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.IntVar(&port, "port", 0, "grpc server port")
	_ = fs.Parse(os.Args[1:])

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultPath
	}

	return path, port, fs.Args()
}
