package content

import "github.com/mohiniBalmiki/taxwise-web/internal/model"

// Seed data for the testimonials section. Order is part of the contract:
// the section renders exactly this list, in this order.
var testimonialSeed = []model.Testimonial{
	{
		Name:           "Priya Sharma",
		Role:           "Software Engineer",
		Location:       "Bengaluru",
		Rating:         5,
		Text:           "TaxWise found deductions I had no idea existed. Filing my taxes went from a weekend of dread to twenty minutes.",
		AvatarInitials: "PS",
	},
	{
		Name:           "Rahul Mehta",
		Role:           "Startup Founder",
		Location:       "Mumbai",
		Rating:         5,
		Text:           "The capital gains breakdown across all my investment accounts is worth the subscription alone.",
		AvatarInitials: "RM",
	},
	{
		Name:           "Ananya Iyer",
		Role:           "Chartered Accountant",
		Location:       "Chennai",
		Rating:         4,
		Text:           "I recommend TaxWise to my own clients. The categorisation engine gets transactions right far more often than anything else I have tried.",
		AvatarInitials: "AI",
	},
	{
		Name:           "Vikram Singh",
		Role:           "Freelance Designer",
		Location:       "New Delhi",
		Rating:         5,
		Text:           "As a freelancer my income is all over the place. TaxWise keeps track of advance tax so I never get surprised in March.",
		AvatarInitials: "VS",
	},
	{
		Name:           "Sneha Patel",
		Role:           "Product Manager",
		Location:       "Pune",
		Rating:         4,
		Text:           "The old vs new regime comparison saved me ₹32,000 last year. The dashboard makes the trade-offs obvious.",
		AvatarInitials: "SP",
	},
	{
		Name:           "Arjun Nair",
		Role:           "Doctor",
		Location:       "Kochi",
		Rating:         5,
		Text:           "Uploading my bank statements and getting a categorised tax summary back in seconds still feels like magic.",
		AvatarInitials: "AN",
	},
}

type Testimonials struct {
	Items         []model.Testimonial `json:"items"`
	AverageRating string              `json:"average_rating"`
	TotalUsers    string              `json:"total_users"`
}

// TestimonialsSection returns the fixed testimonial list plus the aggregate
// figures displayed alongside it.
func TestimonialsSection() Testimonials {
	items := make([]model.Testimonial, len(testimonialSeed))
	copy(items, testimonialSeed)
	return Testimonials{
		Items:         items,
		AverageRating: "4.8/5",
		TotalUsers:    "10,000+",
	}
}
