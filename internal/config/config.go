// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Sheets     `yaml:"sheets"`
	SMTP       `yaml:"smtp"`
	Reminder   `yaml:"reminder"`
	CORS       `yaml:"cors"`
	RateLimit  `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":5001"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Sheets структура для настройки подключения к Google Sheets.
// SheetID это числовой gid листа, он нужен для структурного удаления строк.
type Sheets struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SheetName       string `yaml:"sheet_name" env-default:"Subscriptions"`
	SheetID         int64  `yaml:"sheet_id" env-default:"0"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// SMTP структура для настройки почтового транспорта.
type SMTP struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port" env-default:"587"`
	SMTPUser string `yaml:"smtp_user" env:"MAIL_USER"`
	SMTPPass string `yaml:"smtp_pass" env:"MAIL_PASS"`
	SMTPFrom string `yaml:"smtp_from" env:"MAIL_FROM"`
}

// Reminder структура для настройки ежедневной рассылки напоминаний.
// Windows это набор значений "дней до окончания", при точном совпадении
// с которыми отправляется письмо.
type Reminder struct {
	Windows    []int  `yaml:"windows" env-default:"5,3,1"`
	CronSpec   string `yaml:"cron_spec" env-default:"0 9 * * *"`
	TriggerURL string `yaml:"trigger_url" env-default:"http://localhost:5001/sendReminders"`
}

// CORS структура со списком разрешённых origin для фронтенда.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RateLimit структура для настройки ограничения частоты запросов.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// MustLoad функция для загрузки конфига, путь берётся из переменной CONFIG_PATH.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Sheets:\n"+
			"  SpreadsheetID: %s\n"+
			"  SheetName: %s\n"+
			"  SheetID: %d\n"+
			"SMTP:\n"+
			"  Host: %s\n"+
			"  Port: %s\n"+
			"  User: %s\n"+
			"Reminder:\n"+
			"  Windows: %v\n"+
			"  CronSpec: %s\n"+
			"  TriggerURL: %s\n"+
			"CORS:\n"+
			"  AllowedOrigins: %v\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.SpreadsheetID,
		c.SheetName,
		c.SheetID,
		c.SMTPHost,
		c.SMTPPort,
		c.SMTPUser,
		c.Windows,
		c.CronSpec,
		c.TriggerURL,
		c.AllowedOrigins,
	)
}
