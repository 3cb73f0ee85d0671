// Command tumacli exercises the order-management core against the seeded
// in-memory store. It exists so the workflows can be driven end to end
// before a real transport is bolted on.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/seed"
	"github.com/brucekarangwamanzi/tuma-tr/internal/services"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

type app struct {
	cfg      *config.Config
	store    *store.Store
	users    *services.UserService
	orders   *services.OrderService
	verify   *services.VerificationService
	messages *services.MessageService
	content  *services.ContentService
	admin    *services.AdminService
}

func newApp() (*app, error) {
	cfg := config.Load()
	st := store.New()
	if err := seed.Apply(st); err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		store:    st,
		users:    services.NewUserService(st),
		orders:   services.NewOrderService(st, cfg),
		verify:   services.NewVerificationService(st),
		messages: services.NewMessageService(st, cfg),
		content:  services.NewContentService(st),
		admin:    services.NewAdminService(st),
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:   "tumacli",
		Short: "Drive the Tuma-Africa Link Cargo core against seeded demo data",
	}
	root.AddCommand(ordersCmd(), usersCmd(), statsCmd(), contentCmd(), scenarioCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List every order as the seeded admin sees it",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			admin, err := a.users.Authenticate(seed.EmailAdmin)
			if err != nil {
				return err
			}
			listings, err := a.orders.List(admin)
			if err != nil {
				return err
			}
			return dumpJSON(listings)
		},
	}
}

func usersCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts as the seeded admin sees them",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			admin, err := a.users.Authenticate(seed.EmailAdmin)
			if err != nil {
				return err
			}
			accounts, err := a.users.ListUsers(admin, query)
			if err != nil {
				return err
			}
			return dumpJSON(accounts)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by email or name")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the staff dashboard numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			admin, err := a.users.Authenticate(seed.EmailAdmin)
			if err != nil {
				return err
			}
			stats, err := a.admin.Stats(admin)
			if err != nil {
				return err
			}
			return dumpJSON(stats)
		},
	}
}

func contentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Show the managed site content",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return dumpJSON(a.content.Get())
		},
	}
}

func scenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Walk a new customer from signup through a completed order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.runScenario()
		},
	}
}

func (a *app) runScenario() error {
	customer, err := a.users.SignUp("kevin@tumalink.test", "Kevin Niyonzima", "+250 788 000 111")
	if err != nil {
		return err
	}
	log.Printf("signed up %s (verified=%v)", customer.Email, customer.IsVerified)

	input := services.OrderInput{
		ProductURL:  "https://example.com/product/303",
		ProductName: "Standing Desk",
		Quantity:    1,
	}
	screenshot := &services.AttachmentUpload{
		URL:         "https://cdn.tumalink.test/screens/desk.jpg",
		ContentType: "image/jpeg",
		Size:        32 * 1024,
	}

	if _, err := a.orders.Create(customer, input, screenshot); err != nil {
		log.Printf("order before verification rejected as expected: %v", err)
	} else {
		return fmt.Errorf("unverified customer was allowed to order")
	}

	request, err := a.verify.Submit(customer, services.VerificationInput{
		FullName:  customer.FullName,
		Phone:     customer.Phone,
		GovIDURL:  "https://cdn.tumalink.test/verify/kevin-id.jpg",
		SelfieURL: "https://cdn.tumalink.test/verify/kevin-selfie.jpg",
	})
	if err != nil {
		return err
	}
	log.Printf("verification submitted: %s", request.ID)

	admin, err := a.users.Authenticate(seed.EmailAdmin)
	if err != nil {
		return err
	}
	pending, err := a.verify.ListPending(admin)
	if err != nil {
		return err
	}
	log.Printf("admin sees %d pending verification(s)", len(pending))

	if err := a.verify.Approve(admin, request.ID); err != nil {
		return err
	}
	customer, err = a.users.Authenticate(customer.Email)
	if err != nil {
		return err
	}
	log.Printf("approved; customer verified=%v", customer.IsVerified)

	order, err := a.orders.Create(customer, input, screenshot)
	if err != nil {
		return err
	}
	log.Printf("order %s created with status %s", order.ID, order.Status.Label())

	processor, err := a.users.Authenticate(seed.EmailProcessor)
	if err != nil {
		return err
	}
	for _, next := range []models.OrderStatus{
		models.StatusPurchased,
		models.StatusInWarehouse,
		models.StatusInTransit,
		models.StatusArrived,
		models.StatusCompleted,
	} {
		order, err = a.orders.SetStatus(processor, order.ID, string(next))
		if err != nil {
			return err
		}
		log.Printf("status -> %s", order.Status.Label())
	}

	message, err := a.messages.Send(customer, order.ID, "Thanks, everything arrived in one piece!", nil)
	if err != nil {
		return err
	}
	log.Printf("message delivered to %s", message.ReceiverID)

	log.Printf("history has %d entries", len(order.StatusHistory))
	return dumpJSON(order.StatusHistory)
}
