package main

import (
	"github.com/avoronova/servicedesk/internal/config"
	"github.com/avoronova/servicedesk/internal/db"
	"github.com/avoronova/servicedesk/internal/handlers"
	"github.com/avoronova/servicedesk/internal/notify"
	"github.com/avoronova/servicedesk/internal/payment"
	"github.com/avoronova/servicedesk/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}
	defer database.Close()

	sms := notify.NewSMSClient(conf.SMSAddress, conf.SMSAccountSID, conf.SMSAuthToken, conf.SMSFromNumber)
	email := notify.NewEmailClient(conf.MailHost, conf.MailPort, conf.MailUsername, conf.MailPassword)
	notifier := notify.NewDispatcher(sms, email)

	payments := payment.NewClient(conf.PaymentAddress, conf.SecretKey)

	handlerSet := handlers.NewHandlerSet(database, notifier, payments)

	r := router.NewRouter(conf, handlerSet)

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}

}
