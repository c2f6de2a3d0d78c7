package config

type ServerConfig struct {
	Addr            string   `yaml:"addr" validate:"required"`
	MaxUploadSizeMB int64    `yaml:"max_upload_size_mb" validate:"min=1"`
	TmpDir          string   `yaml:"tmp_dir"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=postgres pgx"`
	URL    string `yaml:"url" validate:"required"`
	Name   string `yaml:"name"`
}

// S3Config : настройки объектного хранилища, Backend выбирает s3 или локальный диск
type S3Config struct {
	Backend         string `yaml:"backend" validate:"required,oneof=s3 local"`
	ServiceName     string `yaml:"service_name"`
	Bucket          string `yaml:"bucket" validate:"required"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	LocalPath       string `yaml:"local_path" validate:"required_if=Backend local"`
}

type JWTConfig struct {
	SecretKey                string `yaml:"secret_key" validate:"required"`
	Algorithm                string `yaml:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	AccessTokenExpireMinutes int    `yaml:"access_token_expire_minutes" validate:"min=1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
}

type LogConfig struct {
	Env       string `yaml:"env" validate:"required,oneof=development production"`
	Level     string `yaml:"level" validate:"required,oneof=debug info warn error"`
	SentryDSN string `yaml:"sentry_dsn"`
}
