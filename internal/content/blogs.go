package content

type TravelBlog struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func TravelBlogs() []TravelBlog {
	return []TravelBlog{
		{
			ID:          1,
			Title:       "Exploring the Himalayas",
			Location:    "Himachal Pradesh, India",
			Date:        "March 2024",
			Description: "A journey through the snow-capped mountains and serene valleys of the Himalayas.",
			Image:       "/static/img/himalayas.jpg",
		},
		{
			ID:          2,
			Title:       "Coastal Adventures",
			Location:    "Goa, India",
			Date:        "January 2024",
			Description: "Sun, sand, and sea - experiencing the vibrant culture and beaches of Goa.",
			Image:       "/static/img/goa.jpg",
		},
		{
			ID:          3,
			Title:       "Urban Exploration",
			Location:    "Mumbai, India",
			Date:        "December 2023",
			Description: "Discovering the bustling streets and hidden gems of the city that never sleeps.",
			Image:       "/static/img/mumbai.jpg",
		},
	}
}
