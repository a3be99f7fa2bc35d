package main

import (
	"fmt"

	"adviceglobe/globe-api/api"
	"adviceglobe/globe-api/config"
	"adviceglobe/globe-api/db"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	if *config.Seed {
		d, err := db.New(viper.GetString("db.path"))
		if err != nil {
			panic(err)
		}

		if err := db.Seed(d); err != nil {
			panic(err)
		}

		zap.L().Info("Seeding finished")
		return
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
