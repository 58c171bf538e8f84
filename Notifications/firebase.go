// Package Notifications pushes caregiver need-notes to parent devices
// through Firebase Cloud Messaging.
package Notifications

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

var firebaseClient *messaging.Client
var ctx = context.Background()

// InitFirebase sets up the messaging client from a service-account file.
// Call once at startup; an empty path leaves notifications disabled.
func InitFirebase(credentialsFile string) error {
	if credentialsFile == "" {
		log.Println("Firebase disabled: no credentials file configured")
		return nil
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	firebaseClient = client
	log.Println("Firebase initialized successfully")
	return nil
}

// SendNeedNote notifies the registered devices of the child's parents. Send
// failures are logged per device and never bubble up: the note is already
// saved, notification is best effort.
func SendNeedNote(child, note string) {
	if firebaseClient == nil {
		return
	}

	var parents []Models.User
	if err := Models.DB.Where("role = ? AND child_name = ?", Models.RoleParent, child).Find(&parents).Error; err != nil {
		log.Println("Error loading parent accounts:", err)
		return
	}

	for _, parent := range parents {
		var tokens []Models.DeviceToken
		if err := Models.DB.Where("user_id = ?", parent.ID).Find(&tokens).Error; err != nil {
			log.Printf("Error loading tokens for %s: %v", parent.Username, err)
			continue
		}
		for _, token := range tokens {
			message := &messaging.Message{
				Notification: &messaging.Notification{
					Title: fmt.Sprintf("Besoins pour %s", child),
					Body:  note,
				},
				Token: token.Value,
			}
			if _, err := firebaseClient.Send(ctx, message); err != nil {
				log.Printf("Error sending notification to %s: %v", parent.Username, err)
			}
		}
	}
}
