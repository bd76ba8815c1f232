package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/belajarhosting/platform/pkg/client"
)

// Example demonstrates basic usage of the BelajarHosting client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "https://belajarhosting.com/api",
	})

	ctx := context.Background()

	// Login stores the user token on the client
	resp, err := c.Auth().Login(ctx, client.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Logged in as: %s\n", resp.User.Email)

	// List VPS instances
	page, err := c.VPS().List(ctx, client.ListOptions{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d instances\n", len(page.Data))
}

// ExampleVPSService_Deploy demonstrates ordering a VPS
func ExampleVPSService_Deploy() {
	c := client.NewClient(client.Config{})
	c.SetToken("user-jwt")

	result, err := c.VPS().Deploy(context.Background(), client.VPSDeployRequest{
		Hostname:     "web-1",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: "yearly",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Order %d total Rp%d\n", result.Order.ID, result.Order.TotalIDR)
}

// ExampleDomainService_CheckAll demonstrates the domain finder
func ExampleDomainService_CheckAll() {
	c := client.NewClient(client.Config{})
	c.SetToken("user-jwt")

	results, err := c.Domains().CheckAll(context.Background(), "belajarhosting")
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		if r.Available {
			fmt.Printf("%s Rp%d/year\n", r.Domain, r.YearlyPriceIDR)
		}
	}
}
