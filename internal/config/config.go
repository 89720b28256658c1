package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

/*
порт сервиса: переменная окружения ОС PORT или флаг -p;
адрес подключения к базе данных: переменная окружения ОС DATABASE_URI или флаг -d;
секретный ключ платёжного провайдера: переменная окружения ОС SECRET_KEY.
*/

type ServerConfig struct {
	Port        int    `env:"PORT"`
	DatabaseDSN string `env:"DATABASE_URI"`
	SecretKey   string `env:"SECRET_KEY" envDefault:"default_secret_key"`

	PaymentAddress string `env:"PAYMENT_ADDRESS" envDefault:"https://api.stripe.com"`

	SMSAddress    string `env:"SMS_ADDRESS" envDefault:"https://api.twilio.com"`
	SMSAccountSID string `env:"SMS_ACCOUNT_SID"`
	SMSAuthToken  string `env:"SMS_AUTH_TOKEN"`
	SMSFromNumber string `env:"SMS_FROM_NUMBER"`

	MailHost     string `env:"MAIL_HOST"`
	MailPort     int    `env:"MAIL_PORT" envDefault:"587"`
	MailUsername string `env:"MAIL_USERNAME"`
	MailPassword string `env:"MAIL_PASSWORD"`
}

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.IntVar(&commandLineParams.Port, "p", 10000, "Port to listen on")
	flag.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/servicedesk?sslmode=disable", "Database DSN")
	flag.Parse()

	if params.Port == 0 {
		params.Port = commandLineParams.Port
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}

	return &params, nil
}

// RunAddress is the host:port the HTTP server binds to.
func (c *ServerConfig) RunAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}
