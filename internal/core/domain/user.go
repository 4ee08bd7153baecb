package domain

import "time"

// User is keyed by a generated id, but cc (the citizen id number) is the
// business key: at most one user may exist per cc value.
type User struct {
	ID        string
	CC        string
	Name      string
	Tel       string
	Email     string
	Pass      string
	CreatedAt time.Time
}

type RegisterUserInput struct {
	CC    string
	Name  string
	Tel   string
	Email string
	Pass  string
}
