package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"

	"diving-backend/src/seed"
	"diving-backend/src/service"
	"diving-backend/src/storage"
)

var (
	reseed        = flag.Bool("reseed", false, "Wipe and reload reference data, then exit.")
	scrapeSpecies = flag.Bool("scrape-species", false, "With -reseed: also fetch species names from oceana.org.")
)

func main() {
	flag.Parse()

	if *reseed {
		runReseed()
		return
	}

	svc, err := service.New()
	if err != nil {
		log.WithError(err).Fatal("init service")
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil {
		log.WithError(err).Fatal("service stopped")
	}
}

func runReseed() {
	s, err := storage.NewStorage(service.StorageOptionsFromEnv()...)
	if err != nil {
		log.WithError(err).Fatal("connect storage")
	}
	defer s.Close()

	if *scrapeSpecies {
		err = seed.ReseedWithScrapedSpecies(s)
	} else {
		err = seed.Reseed(s)
	}
	if err != nil {
		log.WithError(err).Fatal("reseed")
	}

	log.Info("reseed complete")
}
