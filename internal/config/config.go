// Package config carga la configuración del proceso desde defaults, un
// archivo opcional y el entorno.
package config

import "time"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Images   ImagesConfig   `mapstructure:"images"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"oneof=text json"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type StoreConfig struct {
	Driver   string         `mapstructure:"driver" validate:"oneof=mongo postgres memory"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// MongoConfig acepta una URI completa o las partes de una URI de Atlas.
type MongoConfig struct {
	URI      string        `mapstructure:"uri"`
	User     string        `mapstructure:"user"`
	Password string        `mapstructure:"password"`
	Host     string        `mapstructure:"host"`
	SRV      bool          `mapstructure:"srv"`
	Database string        `mapstructure:"database" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type AuthConfig struct {
	TokenSecret      string        `mapstructure:"token_secret" validate:"required,min=32"`
	TokenTTL         time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
	CookieName       string        `mapstructure:"cookie_name" validate:"required"`
	CookieSecure     bool          `mapstructure:"cookie_secure"`
	CookieSameSite   string        `mapstructure:"cookie_same_site" validate:"oneof=lax strict none"`
	Revocation       string        `mapstructure:"revocation" validate:"oneof=none memory redis"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisPassword    string        `mapstructure:"redis_password"`
	ProtectAllWrites bool          `mapstructure:"protect_all_writes"`
}

type PaymentsConfig struct {
	OmisePublicKey string `mapstructure:"omise_public_key"`
	OmiseSecretKey string `mapstructure:"omise_secret_key"`
	Currency       string `mapstructure:"currency" validate:"required"`
	SourceType     string `mapstructure:"source_type"`
	ReturnURI      string `mapstructure:"return_uri"`
}

// Enabled indica si ambas llaves de Omise están seteadas.
func (p PaymentsConfig) Enabled() bool {
	return p.OmisePublicKey != "" && p.OmiseSecretKey != ""
}

type ImagesConfig struct {
	Provider       string `mapstructure:"provider" validate:"oneof=cloudinary minio none"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" validate:"gt=0"`

	CloudinaryCloudName string `mapstructure:"cloudinary_cloud_name"`
	CloudinaryAPIKey    string `mapstructure:"cloudinary_api_key"`
	CloudinaryAPISecret string `mapstructure:"cloudinary_api_secret"`
	CloudinaryFolder    string `mapstructure:"cloudinary_folder"`

	MinioEndpoint      string `mapstructure:"minio_endpoint"`
	MinioAccessKey     string `mapstructure:"minio_access_key"`
	MinioSecretKey     string `mapstructure:"minio_secret_key"`
	MinioBucket        string `mapstructure:"minio_bucket"`
	MinioUseSSL        bool   `mapstructure:"minio_use_ssl"`
	MinioPublicBaseURL string `mapstructure:"minio_public_base_url"`
}

type EventsConfig struct {
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange"`
}
