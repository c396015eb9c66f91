package main

import (
	"log"
	"net/http"
	"os"

	"github.com/vengerka/cakemaster-api/app/cmd"
	"github.com/vengerka/cakemaster-api/app/configs"
	"github.com/vengerka/cakemaster-api/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.PaymentIBAN == "" {
		log.Println("Warning: PAYMENT_IBAN is empty, payment payloads will be unusable")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, env)
	log.Println("✅ Router initialized.")

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
