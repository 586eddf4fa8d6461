package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	Collections Collections
	Results     Results
	LogLevel    string
	// Document id of the admin credential record inside Collections.Admin.
	AdminCredentialID string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	Path     string // sqlite file
}

// Collections holds the document-store collection names.
type Collections struct {
	Exams      string
	Questions  string
	Candidates string
	// CandidatesPurge is the collection the bulk delete walks. Historically it
	// differed in casing from Candidates, so it is kept separately configurable.
	CandidatesPurge string
	Answers         string
	Concerns        string
	Admin           string
}

type Results struct {
	Cron string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PATH", "examadmin.db")
	viper.SetDefault("EXAMS_COLLECTION", "Exams")
	viper.SetDefault("QUESTIONS_COLLECTION", "Questions")
	viper.SetDefault("CANDIDATES_COLLECTION", "candidates")
	viper.SetDefault("ANSWERS_COLLECTION", "answers")
	viper.SetDefault("CONCERNS_COLLECTION", "concerns")
	viper.SetDefault("ADMIN_COLLECTION", "admin")
	viper.SetDefault("ADMIN_CREDENTIAL_ID", "credentials")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Collections.Exams = viper.GetString("EXAMS_COLLECTION")
	config.Collections.Questions = viper.GetString("QUESTIONS_COLLECTION")
	config.Collections.Candidates = viper.GetString("CANDIDATES_COLLECTION")
	config.Collections.CandidatesPurge = viper.GetString("CANDIDATES_PURGE_COLLECTION")
	config.Collections.Answers = viper.GetString("ANSWERS_COLLECTION")
	config.Collections.Concerns = viper.GetString("CONCERNS_COLLECTION")
	config.Collections.Admin = viper.GetString("ADMIN_COLLECTION")
	if config.Collections.CandidatesPurge == "" {
		config.Collections.CandidatesPurge = config.Collections.Candidates
	}

	config.Results.Cron = viper.GetString("RESULTS_CRON")
	config.AdminCredentialID = viper.GetString("ADMIN_CREDENTIAL_ID")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// DefaultCollections returns the collection names used when nothing is configured.
func DefaultCollections() Collections {
	return Collections{
		Exams:           "Exams",
		Questions:       "Questions",
		Candidates:      "candidates",
		CandidatesPurge: "candidates",
		Answers:         "answers",
		Concerns:        "concerns",
		Admin:           "admin",
	}
}
