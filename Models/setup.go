package Models

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Hpoinseaux/Assmatapp/config"
)

var DB *gorm.DB

// Connect opens the local account database and seeds the fixed accounts:
// one caregiver plus one parent per configured child. Seeding is idempotent,
// existing accounts are left untouched.
func Connect(cfg *config.Config) {
	connection, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database:", err)
	}
	DB = connection

	DB.AutoMigrate(
		&User{},
		&DeviceToken{},
	)

	seedUser(User{
		Username: "nounou",
		Name:     "Nounou",
		Role:     RoleNounou,
	}, cfg.NounouPassword)

	for _, child := range cfg.Children {
		seedUser(User{
			Username:  "parent_" + strings.ToLower(child),
			Name:      "Parent " + child,
			Role:      RoleParent,
			ChildName: child,
		}, cfg.ParentPassword)
	}
}

func seedUser(u User, password string) {
	var existing User
	if err := DB.Where("username = ?", u.Username).First(&existing).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	u.Password = hash
	if err := DB.Create(&u).Error; err != nil {
		log.Println("failed to seed user", u.Username, ":", err)
	}
}
