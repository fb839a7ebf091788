package entity

import "time"

// Message is an inbound contact-form submission. Read is flipped by an
// admin; deletion is the only other mutation.
type Message struct {
	ID      string    `json:"id" firestore:"id"`
	Name    string    `json:"name" firestore:"name"`
	Email   string    `json:"email" firestore:"email"`
	Message string    `json:"message" firestore:"message"`
	Date    time.Time `json:"date" firestore:"date"`
	Read    bool      `json:"read" firestore:"read"`
}
