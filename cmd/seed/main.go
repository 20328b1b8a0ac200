package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"resolvehub/internal/database"
	"resolvehub/internal/domain"
	"resolvehub/internal/repository"
)

func main() {
	db, err := database.Connect("resolvehub.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bids")
	db.Exec("DELETE FROM opportunities")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	opportunities := repository.NewOpportunityRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	seeker := &domain.User{
		Email:        "seeker@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleServiceSeekerIndividual,
		Name:         "John Doe",
		Phone:        "+919876543210",
	}
	providerVerified := &domain.User{
		Email:        "provider@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleServiceProviderIndividual,
		Name:         "Asha Verma",
		Organization: "Verma & Associates",
	}
	providerNew := &domain.User{
		Email:        "newprovider@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleServiceProviderEntityAdmin,
		Name:         "Ravi Iyer",
		Organization: "Iyer Resolution LLP",
	}

	for _, u := range []*domain.User{seeker, providerVerified, providerNew} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	// A seeker profile one section short of 100%.
	seekerProfile := &domain.Profile{
		UserID: seeker.ID,
		Role:   seeker.Role,
		Document: domain.Document{
			"name":          "John Doe",
			"email":         "john@example.com",
			"contactNumber": "+919876543210",
			"address": map[string]any{
				"street":  "123 Main St",
				"city":    "Mumbai",
				"pinCode": "400001",
			},
			"identityDocument": map[string]any{
				"type":   "AADHAAR_CARD",
				"number": "1234-5678-9012",
			},
			"panNumber": "ABCDE1234F",
		},
	}

	// A provider with a verified membership: eligible for opportunities
	// despite an otherwise thin profile.
	now := time.Now().UTC().Format(time.RFC3339)
	providerProfile := &domain.Profile{
		UserID: providerVerified.ID,
		Role:   providerVerified.Role,
		Document: domain.Document{
			"name":           "Asha Verma",
			"email":          "provider@example.com",
			"mobile":         "+919000000000",
			"qualifications": "CA, Insolvency Professional",
			"membershipDetails": []any{
				map[string]any{
					"bodyInstitute":    "ICAI",
					"membershipNumber": "M12345",
					"verification": map[string]any{
						"status":     "VERIFIED",
						"message":    "Verified successfully",
						"verifiedAt": now,
						"source":     "ICAI API",
					},
				},
			},
			"servicesOffered": []any{
				map[string]any{"category": "Resolution", "services": []any{"CIRP advisory"}},
			},
		},
	}

	// A provider that has not verified membership yet.
	newProviderProfile := &domain.Profile{
		UserID: providerNew.ID,
		Role:   providerNew.Role,
		Document: domain.Document{
			"name":   "Ravi Iyer",
			"email":  "newprovider@example.com",
			"mobile": "+919111111111",
			"membershipDetails": []any{
				map[string]any{
					"bodyInstitute":    "IBBI",
					"membershipNumber": "IB-778",
				},
			},
		},
	}

	for _, p := range []*domain.Profile{seekerProfile, providerProfile, newProviderProfile} {
		if err := profiles.Save(ctx, p); err != nil {
			log.Fatal("seed profile failed:", err)
		}
	}

	opps := []*domain.Opportunity{
		{
			Title:           "Interim resolution professional for CIRP",
			Category:        "Resolution",
			Description:     "Appointment of an IRP for a mid-size manufacturing company.",
			Budget:          250000,
			LocationPinCode: "400001",
			Status:          domain.OpportunityOpen,
			Deadline:        time.Now().Add(14 * 24 * time.Hour),
		},
		{
			Title:           "Claims verification for liquidation estate",
			Category:        "Claims",
			Description:     "Verification and admission of operational creditor claims.",
			Budget:          120000,
			LocationPinCode: "110001",
			Status:          domain.OpportunityOpen,
			Deadline:        time.Now().Add(7 * 24 * time.Hour),
		},
		{
			Title:    "Valuation of plant and machinery",
			Category: "Valuation",
			Budget:   90000,
			Status:   domain.OpportunityClosed,
			Deadline: time.Now().Add(-24 * time.Hour),
		},
	}
	for _, o := range opps {
		if err := opportunities.Create(ctx, o); err != nil {
			log.Fatal("seed opportunity failed:", err)
		}
	}

	log.Printf("Seeded %d users, %d profiles, %d opportunities", 3, 3, len(opps))
	log.Println("Login with any seeded email and password123")
}
