package server

import (
	"fmt"
	"log"
	"net/http"

	"gorm.io/gorm"

	"dreamcatcher/database"
	"dreamcatcher/generator"
)

func BackendServer(
	DB *gorm.DB,
	gateway *generator.Gateway,
	host string,
	port int64,
	ssl bool,
	cookieDomain string,
) (*http.Server, string) {
	router := BackendRouting(DB, gateway, cookieDomain)

	protocol := "http"
	if ssl {
		protocol = "https"
	}
	fullHost := fmt.Sprintf("%s://%s:%d", protocol, host, port)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: router,
	}

	return server, fullHost
}

// CreateAdminUser bootstraps the default admin account if it does not exist.
func CreateAdminUser(DB *gorm.DB, username string, email string, password string) (*database.User, error) {
	var user database.User
	q := DB.First(&user, "username = ?", username)

	if q.Error == nil {
		log.Println("Admin user already exists")
		return &user, nil
	}

	admin, err := database.RegisterUser(DB, username, email, []byte(password))
	if err != nil {
		return nil, err
	}

	admin.IsAdmin = true
	if q := DB.Save(admin); q.Error != nil {
		return nil, q.Error
	}

	log.Println(fmt.Sprintf("Created admin user: '%v'", admin.Username))
	return admin, nil
}
