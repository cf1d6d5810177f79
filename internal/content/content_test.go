package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohiniBalmiki/taxwise-web/internal/config"
)

func TestTestimonialsSectionOrderAndRatings(t *testing.T) {
	section := TestimonialsSection()
	require.Len(t, section.Items, len(testimonialSeed))
	for i, item := range section.Items {
		require.Equal(t, testimonialSeed[i].Name, item.Name)
		require.Equal(t, testimonialSeed[i].Rating, item.Rating)
		require.GreaterOrEqual(t, item.Rating, 1)
		require.LessOrEqual(t, item.Rating, 5)
		require.NotEmpty(t, item.Text)
		require.NotEmpty(t, item.AvatarInitials)
	}
	require.Equal(t, "4.8/5", section.AverageRating)
}

func TestTestimonialsSectionReturnsCopy(t *testing.T) {
	first := TestimonialsSection()
	first.Items[0].Name = "mutated"
	second := TestimonialsSection()
	require.NotEqual(t, "mutated", second.Items[0].Name)
}

func TestCallToActionSectionRoutes(t *testing.T) {
	routes := config.RoutesConfig{Signup: "/register", Download: "/download"}
	section := CallToActionSection(routes)
	require.Equal(t, "/register", section.Start.Route)
	require.Equal(t, "/download", section.Download.Route)
	require.NotEmpty(t, section.Heading)
	require.Len(t, section.TrustIndicators, 3)
}
