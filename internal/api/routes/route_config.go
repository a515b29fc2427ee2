package routes

import (
	"DonorLink/internal/api/handlers"
	"DonorLink/internal/middleware"
	"DonorLink/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AccountHandler  handlers.AccountHandler
	DonationHandler handlers.DonationHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
	UploadDir       string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Donations()
	c.GuestRoute()
	c.Uploads()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.AccountHandler.Register)
		auth.Post("/login", c.AccountHandler.Login)
		auth.Get("/verify", c.AccountHandler.Verify)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": c.Locals("user_id"),
				"role":    c.Locals("role"),
			})
		})
	}
}

// Donations routes are deliberately not behind the auth middleware; token
// verification is exposed as its own endpoint and enforced client side.
func (c *Config) Donations() {
	donations := c.App.Group("/api/donations")
	{
		donations.Post("/add", c.DonationHandler.CreateDonation)
		donations.Get("/donor/:donor_id", c.DonationHandler.GetDonorDonations)
		donations.Get("/nearby/:pincode", c.DonationHandler.GetNearbyDonations)
		donations.Post("/accept", c.DonationHandler.AcceptDonation)
		donations.Get("/ngo/:ngo_id", c.DonationHandler.GetNgoDonations)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Uploads serves stored photos publicly; any holder of a reference may
// fetch it.
func (c *Config) Uploads() {
	dir := c.UploadDir
	if dir == "" {
		dir = "./uploads"
	}
	c.App.Static("/uploads", dir)
}
