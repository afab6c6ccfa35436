// Package seed loads the demo campaigns, donations, volunteers and users.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"NGO_Platform/internal/model"
)

type Target interface {
	AddCampaign(ctx context.Context, data model.Record) (string, error)
	GetCampaigns(ctx context.Context, f model.Filter) ([]model.Record, error)
	AddDonation(ctx context.Context, data model.Record) (id, transactionID string, err error)
	AddVolunteer(ctx context.Context, data model.Record) (string, error)
	AddUser(ctx context.Context, data model.Record) (string, error)
}

type Result struct {
	Skipped    bool
	Campaigns  int
	Donations  int
	Volunteers int
	Users      int
}

type donation struct {
	campaign int
	userID   string
	name     string
	amount   float64
	method   string
	txn      string
	message  string
}

type volunteer struct {
	campaign     int
	userID       string
	name         string
	email        string
	phone        string
	skills       []any
	availability string
}

type user struct {
	name     string
	email    string
	userType string
}

func campaigns() []model.Record {
	return []model.Record{
		{
			"title":             "Clean Water for Rural Communities",
			"description":       "Providing clean drinking water to 5 rural communities in need. This project will install water purification systems and train local volunteers for maintenance.",
			"ngo":               map[string]any{"name": "Water for All Foundation", "id": "ngo-1", "verified": true},
			"category":          "Health & Environment",
			"targetAmount":      50000.0,
			"currentAmount":     32500.0,
			"targetVolunteers":  25.0,
			"currentVolunteers": 18.0,
			"location":          "Rural Maharashtra, India",
			"startDate":         "2024-01-15",
			"endDate":           "2024-06-15",
			"status":            model.CampaignActive,
			"images": []any{
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500",
			},
			"requirements": []any{"Water purification systems", "Volunteer training", "Community engagement"},
			"progress":     65.0,
		},
		{
			"title":             "Education for Street Children",
			"description":       "Setting up mobile learning centers to provide education and basic literacy to street children in urban areas.",
			"ngo":               map[string]any{"name": "Hope for Children NGO", "id": "ngo-2", "verified": true},
			"category":          "Education",
			"targetAmount":      30000.0,
			"currentAmount":     18750.0,
			"targetVolunteers":  40.0,
			"currentVolunteers": 32.0,
			"location":          "Mumbai, India",
			"startDate":         "2024-02-01",
			"endDate":           "2024-08-01",
			"status":            model.CampaignActive,
			"images": []any{
				"https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=500",
				"https://images.unsplash.com/photo-1497486751825-1233686d5d80?w=500",
			},
			"requirements": []any{"Educational materials", "Mobile learning equipment", "Volunteer teachers"},
			"progress":     62.5,
		},
		{
			"title":             "Disaster Relief Fund",
			"description":       "Emergency relief fund for recent flood victims. Providing immediate food, shelter, and medical assistance.",
			"ngo":               map[string]any{"name": "Disaster Relief Foundation", "id": "ngo-3", "verified": true},
			"category":          "Disaster Relief",
			"targetAmount":      100000.0,
			"currentAmount":     100000.0,
			"targetVolunteers":  50.0,
			"currentVolunteers": 50.0,
			"location":          "Kerala, India",
			"startDate":         "2024-01-10",
			"endDate":           "2024-03-10",
			"status":            model.CampaignCompleted,
			"images":            []any{"https://images.unsplash.com/photo-1582213782179-e0d53f98f2ca?w=500"},
			"requirements":      []any{"Emergency supplies", "Medical aid", "Volunteer coordination"},
			"progress":          100.0,
		},
	}
}

var donations = []donation{
	{0, "user-1", "Rajesh Kumar", 5000, "upi", "TXN001", "Keep up the great work!"},
	{0, "user-2", "Priya Sharma", 2500, "card", "TXN002", "Hope this helps the community"},
	{0, "user-3", "Amit Patel", 10000, "bank", "TXN003", "Great cause!"},
	{0, "user-4", "Sneha Reddy", 7500, "upi", "TXN004", "Happy to contribute"},
	{1, "user-5", "Vikram Singh", 8000, "card", "TXN005", "Education is the key to a better future"},
	{1, "user-6", "Anjali Gupta", 3500, "upi", "TXN006", "Supporting education"},
	{1, "user-7", "Rahul Verma", 12000, "paypal", "TXN007", "Every child deserves education"},
	{2, "user-8", "Meera Iyer", 15000, "bank", "TXN008", "Stay strong!"},
	{2, "user-9", "Karthik Nair", 20000, "card", "TXN009", "For disaster relief"},
}

var volunteers = []volunteer{
	{0, "vol-1", "Arjun Kapoor", "arjun@example.com", "+91-9876543210", []any{"Water systems", "Community outreach"}, "Weekends"},
	{0, "vol-2", "Divya Menon", "divya@example.com", "+91-9876543211", []any{"Engineering", "Project management"}, "Full-time"},
	{0, "vol-3", "Sanjay Desai", "sanjay@example.com", "+91-9876543212", []any{"Construction", "Maintenance"}, "Weekends"},
	{1, "vol-4", "Kavya Krishnan", "kavya@example.com", "+91-9876543213", []any{"Teaching", "Child development"}, "Evenings"},
	{1, "vol-5", "Rohan Joshi", "rohan@example.com", "+91-9876543214", []any{"Mathematics", "Science teaching"}, "Weekdays"},
	{1, "vol-6", "Pooja Bhat", "pooja@example.com", "+91-9876543215", []any{"Arts & Crafts", "Creative teaching"}, "Weekends"},
	{2, "vol-7", "Aditya Rao", "aditya@example.com", "+91-9876543216", []any{"Emergency response", "First aid"}, "Full-time"},
	{2, "vol-8", "Nisha Pillai", "nisha@example.com", "+91-9876543217", []any{"Medical assistance", "Nursing"}, "Full-time"},
}

// Seeded users have no password; they can only sign in through
// forgot-password or Google.
var users = []user{
	{"John Smith", "john@example.com", model.UserTypeDonor},
	{"Sarah Johnson", "sarah@example.com", model.UserTypeNGO},
	{"Mike Wilson", "mike@example.com", model.UserTypeVolunteer},
}

// Load inserts the demo data unless campaigns already exist.
func Load(ctx context.Context, t Target, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var res Result

	existing, err := t.GetCampaigns(ctx, model.Filter{})
	if err != nil {
		return res, fmt.Errorf("seed: list campaigns: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, store is not empty", slog.Int("campaigns", len(existing)))
		res.Skipped = true
		return res, nil
	}

	var campaignIDs []string
	for _, c := range campaigns() {
		id, err := t.AddCampaign(ctx, c)
		if err != nil {
			return res, fmt.Errorf("seed: campaign %q: %w", c.String("title"), err)
		}
		campaignIDs = append(campaignIDs, id)
		res.Campaigns++
	}

	for _, d := range donations {
		_, _, err := t.AddDonation(ctx, model.Record{
			"campaignId":    campaignIDs[d.campaign],
			"userId":        d.userID,
			"userName":      d.name,
			"amount":        d.amount,
			"paymentMethod": d.method,
			"transactionId": d.txn,
			"message":       d.message,
			"paymentStatus": "COMPLETED",
		})
		if err != nil {
			return res, fmt.Errorf("seed: donation %s: %w", d.txn, err)
		}
		res.Donations++
	}

	for _, v := range volunteers {
		_, err := t.AddVolunteer(ctx, model.Record{
			"campaignId":   campaignIDs[v.campaign],
			"userId":       v.userID,
			"userName":     v.name,
			"email":        v.email,
			"phone":        v.phone,
			"skills":       v.skills,
			"availability": v.availability,
			"status":       model.VolunteerApproved,
		})
		if err != nil {
			return res, fmt.Errorf("seed: volunteer %s: %w", v.userID, err)
		}
		res.Volunteers++
	}

	for _, u := range users {
		_, err := t.AddUser(ctx, model.Record{
			"name":     u.name,
			"email":    u.email,
			"userType": u.userType,
			"avatar":   model.DefaultAvatar(u.name),
			"verified": true,
		})
		if err != nil {
			return res, fmt.Errorf("seed: user %s: %w", u.email, err)
		}
		res.Users++
	}

	logger.Info("seed loaded",
		slog.Int("campaigns", res.Campaigns),
		slog.Int("donations", res.Donations),
		slog.Int("volunteers", res.Volunteers),
		slog.Int("users", res.Users),
	)
	return res, nil
}
