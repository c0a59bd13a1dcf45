package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/nishantpal/habitgrid-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)
	r.Post("/api/auth/check-username", handlers.CheckUsernameAvailability)

	// Habit routes
	r.Get("/api/habits", handlers.GetHabits)
	r.Post("/api/habits", handlers.CreateHabit)
	r.Put("/api/habits", handlers.UpdateHabit)
	r.Delete("/api/habits", handlers.DeleteHabit)

	// Completion routes
	r.Post("/api/habits/toggle", handlers.ToggleCompletion)
	r.Put("/api/habits/day", handlers.SetDayCompletions)

	// Calendar route
	r.Get("/api/calendar", handlers.GetCalendarMonth)

	// Planner routes
	r.Get("/api/planner", handlers.GetPlannerMonth)
	r.Get("/api/planner/day", handlers.GetPlannerDay)
	r.Post("/api/planner", handlers.AddPlannerTask)
	r.Put("/api/planner/toggle", handlers.TogglePlannerTask)
	r.Delete("/api/planner", handlers.DeletePlannerTask)

	// Account settings routes
	r.Put("/api/account", handlers.UpdateAccount)
	r.Put("/api/account/password", handlers.ChangePassword)
	r.Delete("/api/account", handlers.DeleteAccount)
}
