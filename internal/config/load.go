package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "PETADOPT"

var defaults = map[string]any{
	"server.port":             4200,
	"server.log_level":        "info",
	"server.log_format":       "text",
	"server.allowed_origins":  []string{"*"},
	"server.read_timeout":     5 * time.Second,
	"server.write_timeout":    10 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,

	"store.driver":         "mongo",
	"store.mongo.uri":      "",
	"store.mongo.user":     "",
	"store.mongo.password": "",
	"store.mongo.host":     "cluster0.v41bc23.mongodb.net",
	"store.mongo.srv":      true,
	"store.mongo.database": "pet-adoption0",
	"store.mongo.timeout":  10 * time.Second,
	"store.postgres.dsn":   "",

	"auth.token_secret":       "",
	"auth.token_ttl":          5 * time.Hour,
	"auth.cookie_name":        "token",
	"auth.cookie_secure":      false,
	"auth.cookie_same_site":   "lax",
	"auth.revocation":         "none",
	"auth.redis_addr":         "localhost:6379",
	"auth.redis_password":     "",
	"auth.protect_all_writes": false,

	"payments.omise_public_key": "",
	"payments.omise_secret_key": "",
	"payments.currency":         "thb",
	"payments.source_type":      "promptpay",
	"payments.return_uri":       "",

	"images.provider":              "cloudinary",
	"images.max_upload_bytes":      int64(10 << 20),
	"images.cloudinary_cloud_name": "",
	"images.cloudinary_api_key":    "",
	"images.cloudinary_api_secret": "",
	"images.cloudinary_folder":     "pets",
	"images.minio_endpoint":        "",
	"images.minio_access_key":      "",
	"images.minio_secret_key":      "",
	"images.minio_bucket":          "pet-images",
	"images.minio_use_ssl":         false,
	"images.minio_public_base_url": "",

	"events.amqp_url": "",
	"events.exchange": "pet-adoption.events",
}

// legacyEnv enlaza los nombres de variables de despliegues existentes.
// Si ambas están seteadas, gana la variable con prefijo.
var legacyEnv = map[string]string{
	"server.port":                  "PORT",
	"store.mongo.user":             "DB_USER",
	"store.mongo.password":         "DB_PASS",
	"auth.token_secret":            "ACCESS_TOKEN_SECRET",
	"images.cloudinary_cloud_name": "CLOUDINARY_CLOUD_NAME",
	"images.cloudinary_api_key":    "CLOUDINARY_API_KEY",
	"images.cloudinary_api_secret": "CLOUDINARY_API_SECRET",
	"payments.omise_public_key":    "OMISE_PUBLIC_KEY",
	"payments.omise_secret_key":    "OMISE_SECRET_KEY",
}

type Options struct {
	// ConfigFile es un YAML opcional. Vacío = buscar config.yaml en el
	// directorio de trabajo.
	ConfigFile string
	// EnvFile se carga en el entorno del proceso antes de leerlo.
	// Si no existe, se ignora.
	EnvFile string
}

// Load lee defaults, luego el archivo de config, luego el entorno, y
// valida el resultado.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", legacy, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa las restricciones de campos y lo que necesita cada driver
// o proveedor elegido.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var problems []string
	switch c.Store.Driver {
	case "mongo":
		if c.Store.Mongo.URI == "" && (c.Store.Mongo.User == "" || c.Store.Mongo.Password == "") {
			problems = append(problems, "store.mongo needs uri or user and password")
		}
	case "postgres":
		if c.Store.Postgres.DSN == "" {
			problems = append(problems, "store.postgres.dsn is required")
		}
	}
	if c.Auth.Revocation == "redis" && c.Auth.RedisAddr == "" {
		problems = append(problems, "auth.redis_addr is required for redis revocation")
	}
	if c.Images.Provider == "minio" && (c.Images.MinioEndpoint == "" || c.Images.MinioBucket == "") {
		problems = append(problems, "images.minio_endpoint and images.minio_bucket are required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// CloudinaryEnabled indica si hay credenciales para subir a cloudinary.
func (i ImagesConfig) CloudinaryEnabled() bool {
	return i.CloudinaryCloudName != "" && i.CloudinaryAPIKey != "" && i.CloudinaryAPISecret != ""
}
