package content

import "github.com/mohiniBalmiki/taxwise-web/internal/config"

type Action struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

type TrustIndicator struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CallToAction struct {
	Heading         string           `json:"heading"`
	Subheading      string           `json:"subheading"`
	Start           Action           `json:"start"`
	Download        Action           `json:"download"`
	TrustIndicators []TrustIndicator `json:"trust_indicators"`
}

// CallToActionSection returns the fixed promotional panel shown on the
// landing page. Only the navigation targets vary, via the route table.
func CallToActionSection(routes config.RoutesConfig) CallToAction {
	return CallToAction{
		Heading:    "Start Maximizing Your Tax Savings Today",
		Subheading: "Join thousands of investors who trust TaxWise to simplify their taxes and grow their wealth.",
		Start: Action{
			Label: "Get Started Free",
			Route: routes.Signup,
		},
		Download: Action{
			Label: "Download the App",
			Route: routes.Download,
		},
		TrustIndicators: []TrustIndicator{
			{Value: "10,000+", Label: "Happy Users"},
			{Value: "₹50 Cr+", Label: "Tax Saved"},
			{Value: "4.8/5", Label: "User Rating"},
		},
	}
}
