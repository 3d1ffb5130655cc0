package app

import (
	"time"

	"invoicegen/internal/core"
)

// demoUser is one row of the fixed mock account table. Passwords are plain
// demo strings on purpose: there is no real authentication in this system.
type demoUser struct {
	user     core.User
	password string
}

var demoUsers = map[string]demoUser{
	"demo@free.com": {
		user: core.User{
			ID:        "user_1",
			Email:     "demo@free.com",
			FirstName: "Demo",
			LastName:  "User",
			Plan:      core.PlanFree,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		password: "password123",
	},
	"demo@starter.com": {
		user: core.User{
			ID:        "user_2",
			Email:     "demo@starter.com",
			FirstName: "Starter",
			LastName:  "User",
			Plan:      core.PlanStarter,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		password: "password123",
	},
	"demo@business.com": {
		user: core.User{
			ID:        "user_3",
			Email:     "demo@business.com",
			FirstName: "Business",
			LastName:  "User",
			Plan:      core.PlanBusiness,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		password: "password123",
	},
}

func findDemoUserByID(id string) (*core.User, bool) {
	for _, du := range demoUsers {
		if du.user.ID == id {
			u := du.user
			return &u, true
		}
	}
	return nil, false
}
