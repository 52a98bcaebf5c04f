package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

// AdminOverrides carries the raw comma-separated admin allow-lists.
// Plural and singular variable names are both honored and unioned by
// services.NewAdminPolicy.
type AdminOverrides struct {
	Emails  string `envconfig:"ADMIN_EMAILS"`
	Email   string `envconfig:"ADMIN_EMAIL"`
	Phones  string `envconfig:"ADMIN_PHONES"`
	Phone   string `envconfig:"ADMIN_PHONE"`
	UserIDs string `envconfig:"ADMIN_USER_IDS"`
	UserID  string `envconfig:"ADMIN_USER_ID"`
}

type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"weightloss"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	// JWTSecret has no default on purpose: a guessable signing secret
	// makes every bearer token forgeable.
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"720h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	Admin AdminOverrides

	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	S3Bucket      string `envconfig:"S3_BUCKET"`
	S3Region      string `envconfig:"S3_REGION"`
	AWSRegion     string `envconfig:"AWS_REGION"`
	CloudFrontURL string `envconfig:"CLOUDFRONT_URL"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// Region prefers S3_REGION and falls back to AWS_REGION.
func (c *Config) Region() string {
	if c.S3Region != "" {
		return c.S3Region
	}
	return c.AWSRegion
}

func ConnectDB(c *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WeightRecord{},
		&models.DietRecord{},
		&models.ExerciseRecord{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
