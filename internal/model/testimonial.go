package model

type Testimonial struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Location       string `json:"location"`
	Rating         int    `json:"rating"`
	Text           string `json:"text"`
	AvatarInitials string `json:"avatar_initials"`
}
