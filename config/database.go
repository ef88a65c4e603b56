package config

import (
	"os"

	"github.com/alerta-golpe/api-go/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetR2Config() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
}

// Enabled reports whether every credential needed to sign uploads is set.
func (r *R2Config) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.SecretAccessKey != "" && r.BucketName != ""
}

// InitDB opens Postgres with gorm error translation and tracing, then migrates the schema.
func InitDB(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}
	log.Info("connected to postgres")

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, errors.Wrap(err, "initialize otelgorm plugin")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Scam{},
		&models.Comment{},
		&models.Like{},
		&models.Report{},
		&models.SavedScam{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}

	return db, nil
}
