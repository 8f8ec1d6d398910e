// Package seed fills an empty backend with demo data so the console has
// something to browse.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// Run creates count rows in each of the base collections. Dependent
// collections are not seeded; their reference dropdowns pick the created
// rows up at form time.
func Run(ctx context.Context, client *api.Client, log *zap.Logger, count int) error {
	if count < 1 {
		count = 1
	}
	faker := gofakeit.New(0)

	if err := seedUsers(ctx, client, faker, count); err != nil {
		return err
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"employees", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("employees")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Employee{
					FullName:   faker.Name(),
					Department: faker.RandomString([]string{"Operations", "Quality Control", "Warehouse", "Sales", "Finance", "HR", "IT", "Management"}),
					Position:   faker.JobTitle(),
					HireDate:   faker.DateRange(yearsAgo(5), yearsAgo(0)).Format("2006-01-02"),
				})
			})
		}},
		{"suppliers", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("suppliers")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Supplier{
					CompanyName:      faker.Company(),
					ContactPerson:    faker.Name(),
					Email:            faker.Email(),
					Phone:            faker.Phone(),
					ComplianceStatus: faker.RandomString([]string{"Compliant", "Pending", "Non-Compliant"}),
					Raw:              faker.Bool(),
					SemiProcessed:    faker.Bool(),
				})
			})
		}},
		{"customers", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("customers")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Customer{
					Name:        faker.Company(),
					Retailer:    faker.Bool(),
					EndUser:     faker.Bool(),
					ContactInfo: faker.Email(),
					Address:     faker.Address().Address,
					TaxNumber:   fmt.Sprintf("TAX-%06d", faker.Number(1, 999999)),
				})
			})
		}},
		{"forests", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("forests")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Forest{
					ForestName:    faker.City() + " Forest",
					GeoLocation:   faker.City(),
					AreaSize:      faker.Float64Range(50, 5000),
					OwnershipType: faker.RandomString([]string{"Private", "Government", "Corporate", "Community"}),
					Status:        "Active",
				})
			})
		}},
		{"treespecies", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("treespecies")
				height := faker.Float64Range(10, 60)
				density := faker.Float64Range(300, 900)
				return api.CreateAs(ctx, client, e.Resource(), catalog.TreeSpecies{
					SpeciesName:   faker.RandomString([]string{"Oak", "Pine", "Spruce", "Birch", "Maple", "Beech", "Cedar", "Fir"}),
					AverageHeight: &height,
					Density:       &density,
					Grade:         faker.RandomString([]string{"A+", "A", "B", "C", "D"}),
				})
			})
		}},
		{"warehouses", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("warehouses")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Warehouse{
					Name:     faker.City() + " Depot",
					Location: faker.City(),
					Capacity: faker.Float64Range(1000, 50000),
					Contact:  faker.Phone(),
				})
			})
		}},
		{"producttypes", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("producttypes")
				return api.CreateAs(ctx, client, e.Resource(), catalog.ProductType{
					Name:          faker.RandomString([]string{"Plank", "Beam", "Board", "Veneer", "Plywood", "Pellet"}),
					Description:   faker.Sentence(6),
					Grade:         faker.RandomString([]string{"A", "B", "C"}),
					UnitOfMeasure: faker.RandomString([]string{"Board Feet", "Cubic Meter", "Pieces", "Tons"}),
				})
			})
		}},
		{"sawmills", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("sawmills")
				return api.CreateAs(ctx, client, e.Resource(), catalog.Sawmill{
					Name:     faker.City() + " Mill",
					Location: faker.City(),
					Capacity: faker.Float64Range(100, 2000),
					Status:   "Operational",
				})
			})
		}},
		{"transportcompanies", func() error {
			return each(count, func() error {
				e, _ := catalog.ByName("transportcompanies")
				return api.CreateAs(ctx, client, e.Resource(), catalog.TransportCompany{
					CompanyName:   faker.Company() + " Logistics",
					ContactInfo:   faker.Email(),
					LicenseNumber: fmt.Sprintf("TL-%05d", faker.Number(1, 99999)),
					Rating:        faker.Float64Range(1, 5),
				})
			})
		}},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Info("seeded collection", zap.String("entity", step.name), zap.Int("count", count))
	}
	return nil
}

func seedUsers(ctx context.Context, client *api.Client, faker *gofakeit.Faker, count int) error {
	e, _ := catalog.ByName("users")
	// A known admin account first, then random staff.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := catalog.User{
		Email:     "admin@lumber.local",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Status:    "active",
	}
	if err := api.CreateAs(ctx, client, e.Resource(), admin); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	err = each(count, func() error {
		hash, err := bcrypt.GenerateFromPassword([]byte(faker.Password(true, true, true, false, false, 10)), bcrypt.MinCost)
		if err != nil {
			return err
		}
		return api.CreateAs(ctx, client, e.Resource(), catalog.User{
			Email:       faker.Email(),
			Password:    string(hash),
			FirstName:   faker.FirstName(),
			LastName:    faker.LastName(),
			PhoneNumber: faker.Phone(),
			Status:      "active",
		})
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func each(n int, fn func() error) error {
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func yearsAgo(n int) time.Time {
	return time.Now().AddDate(-n, 0, 0)
}
