package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string

	AdminPasswordHash string
	AdminEmail        string

	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string

	PaymentIBAN    string
	PaymentMessage string

	UploadDir     string
	UploadBaseURL string

	APP_ENV string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),

		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     os.Getenv("EMAIL_PORT"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),

		PaymentIBAN:    os.Getenv("PAYMENT_IBAN"),
		PaymentMessage: os.Getenv("PAYMENT_MESSAGE"),

		UploadDir:     os.Getenv("UPLOAD_DIR"),
		UploadBaseURL: os.Getenv("UPLOAD_BASE_URL"),

		APP_ENV: os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
