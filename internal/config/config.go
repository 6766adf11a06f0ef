package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Configはアプリ全体の設定
type Config struct {
	Env        string           `yaml:"env" env:"APP_ENV" env-default:"local"` // local/dev/prod
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Database   DatabaseConfig   `yaml:"database"`
	Migrations MigrationsConfig `yaml:"migrations"`
	Cart       CartConfig       `yaml:"cart"`
	Client     ClientConfig     `yaml:"client"`
}

type HTTPServerConfig struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// URLがあれば最優先で使う
type DatabaseConfig struct {
	URL      string `yaml:"url" env:"DATABASE_URL"`
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"-" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Name     string `yaml:"name" env:"POSTGRES_DB" env-default:"shop"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	LogLevel string `yaml:"log_level" env:"DB_LOG_LEVEL" env-default:"warn"` // silent/error/warn/info
}

type MigrationsConfig struct {
	AutoMigrate bool `yaml:"auto_migrate" env:"AUTO_MIGRATE" env-default:"true"`
}

type CartConfig struct {
	// trueならカート操作の前にusersの行をロックする
	LockUserRow bool `yaml:"lock_user_row" env:"CART_LOCK_USER_ROW" env-default:"false"`
}

// ダッシュボード/レポートがAPIを呼ぶときの設定
type ClientConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
}

// DSN は gorm/pq で使う接続文字列
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// MigrateURL は golang-migrate 用のURL形式
func (d DatabaseConfig) MigrateURL() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Load は .env → YAML(任意) → 環境変数 の順に読む
func Load(path string) (Config, error) {
	// .envは無くてもよい
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "read env")
		}
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrapf(err, "config file %s", path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return cfg, nil
}

// MustLoad - -config フラグか CONFIG_PATH。読めなければpanic
func MustLoad() Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		panic(err)
	}
	return cfg
}

// 自前のフラグがあるcmdはMustLoadより前に定義しておく
func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
