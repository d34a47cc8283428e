package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Redis, holds sessions and auth events
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB"`

	// Auth
	JWTSecret         string `yaml:"JWT_SECRET"`
	SessionTTLMinutes int    `yaml:"SESSION_TTL_MINUTES"`
	SiteRedirectPath  string `yaml:"SITE_REDIRECT_PATH"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration, product images
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

const (
	defaultSessionTTLMinutes = 60
	defaultSiteRedirectPath  = "/produtos"
	defaultAppPort           = "8080"
)

func LoadConfig() {
	LoadConfigFrom("config.yaml", ".env")
}

// LoadConfigFrom reads the YAML file first and then lets any non-empty
// environment variable (including those from envFile) override it.
func LoadConfigFrom(yamlPath, envFile string) {
	config = Config{}

	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading env file: %s\n", err)
	}

	file, err := os.ReadFile(yamlPath)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	overrideString(&config.AppPort, "APP_PORT")
	overrideString(&config.AppURL, "APP_URL")
	overrideString(&config.DBUser, "DB_USER")
	overrideString(&config.DBName, "DB_NAME")
	overrideString(&config.DBPassword, "DB_PASSWORD")
	overrideString(&config.DBPort, "DB_PORT")
	overrideString(&config.DBHost, "DB_HOST")
	overrideString(&config.RedisAddr, "REDIS_ADDR")
	overrideString(&config.RedisPassword, "REDIS_PASSWORD")
	overrideInt(&config.RedisDB, "REDIS_DB")
	overrideString(&config.JWTSecret, "JWT_SECRET")
	overrideInt(&config.SessionTTLMinutes, "SESSION_TTL_MINUTES")
	overrideString(&config.SiteRedirectPath, "SITE_REDIRECT_PATH")
	overrideString(&config.SMTPHost, "SMTP_HOST")
	overrideString(&config.SMTPPort, "SMTP_PORT")
	overrideString(&config.SMTPSenderName, "SMTP_SENDER_NAME")
	overrideString(&config.SMTPAuthEmail, "SMTP_AUTH_EMAIL")
	overrideString(&config.SMTPAuthPassword, "SMTP_AUTH_PASSWORD")
	overrideString(&config.AWSS3Bucket, "AWS_S3_BUCKET")
	overrideString(&config.AWSS3Region, "AWS_S3_REGION")
	overrideString(&config.AWSAccessKey, "AWS_ACCESS_KEY")
	overrideString(&config.AWSSecretKey, "AWS_SECRET_KEY")

	if config.SessionTTLMinutes <= 0 {
		config.SessionTTLMinutes = defaultSessionTTLMinutes
	}
	if config.SiteRedirectPath == "" {
		config.SiteRedirectPath = defaultSiteRedirectPath
	}
	if config.AppPort == "" {
		config.AppPort = defaultAppPort
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s: %s\n", key, err)
		return
	}
	*dst = n
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		return strconv.Itoa(config.RedisDB)
	case "JWT_SECRET":
		return config.JWTSecret
	case "SESSION_TTL_MINUTES":
		return strconv.Itoa(config.SessionTTLMinutes)
	case "SITE_REDIRECT_PATH":
		return config.SiteRedirectPath
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetConfigInt is GetConfig for numeric keys, returning fallback when the
// value is missing or malformed.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}
