package main

import (
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iuriimudrak/javarush-intership/internal/app/config"
	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
	"github.com/iuriimudrak/javarush-intership/internal/app/dsn"
	"github.com/iuriimudrak/javarush-intership/internal/app/service"
)

func main() {
	seed := flag.Bool("seed", false, "fill the ships table with generated data")
	seedCount := flag.Int("count", 20, "number of ships to generate with -seed")
	flag.Parse()

	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}

	logrus.Info("Database migration completed")

	if *seed {
		if err := seedShips(db, *seedCount); err != nil {
			logrus.Fatalf("error seeding ships: %v", err)
		}
		logrus.Infof("Seeded %d ships", *seedCount)
	}
}

var planets = []string{"Earth", "Mars", "Venus", "Mercury", "Jupiter", "Saturn", "Neptune"}

var shipTypes = []ds.ShipType{ds.ShipTypeTransport, ds.ShipTypeMilitary, ds.ShipTypeMerchant}

// seedShips генерирует корабли, проходящие все проверки сервиса;
// рейтинг считается тем же калькулятором, что и на создании
func seedShips(db *gorm.DB, count int) error {
	for i := 0; i < count; i++ {
		year := gofakeit.Number(2800, 3019)
		prodDate := time.Date(year, time.Month(gofakeit.Number(1, 12)), gofakeit.Number(1, 28), 0, 0, 0, 0, time.UTC)
		speed := service.Round2(gofakeit.Float64Range(0.01, 0.99))
		isUsed := gofakeit.Bool()

		ship := ds.Ship{
			Name:     gofakeit.Gamertag(),
			Planet:   planets[gofakeit.Number(0, len(planets)-1)],
			ShipType: shipTypes[gofakeit.Number(0, len(shipTypes)-1)],
			ProdDate: prodDate,
			IsUsed:   isUsed,
			Speed:    speed,
			CrewSize: gofakeit.Number(1, 9999),
			Rating:   service.Rating(speed, isUsed, prodDate),
		}
		if err := db.Create(&ship).Error; err != nil {
			return err
		}
	}
	return nil
}
