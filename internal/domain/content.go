package domain

// Globals is the site-wide singleton: contact channels, social links and
// opening hours. All fields are optional by contract.
type Globals struct {
	ID             string        `json:"id"`
	SiteName       string        `json:"site_name,omitempty"`
	Tagline        string        `json:"tagline,omitempty"`
	Address        string        `json:"address,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Email          string        `json:"email,omitempty"`
	GoogleMapsURL  string        `json:"google_maps_url,omitempty"`
	OpeningHours   []OpeningHour `json:"opening_hours,omitempty"`
	Instagram      string        `json:"instagram,omitempty"`
	Facebook       string        `json:"facebook,omitempty"`
	TikTok         string        `json:"tiktok,omitempty"`
	LinkedIn       string        `json:"linkedin,omitempty"`
	ReservationURL string        `json:"reservation_url,omitempty"`
	DeliveryURL    string        `json:"delivery_url,omitempty"`
	MenuURL        string        `json:"menu_url,omitempty"`
}

type OpeningHour struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// Experience is one of the venue's offerings (bar, ristorante, bakery,
// pizzeria), each with its own hero, gallery and optional menu categories.
type Experience struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	Sort           int            `json:"sort"`
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle,omitempty"`
	Description    string         `json:"description,omitempty"`
	Icon           string         `json:"icon,omitempty"`
	Color          string         `json:"color,omitempty"`
	HeroImage      ImageRef       `json:"hero_image,omitempty"`
	Gallery        []ImageRef     `json:"gallery,omitempty"`
	SEOTitle       string         `json:"seo_title,omitempty"`
	SEODescription string         `json:"seo_description,omitempty"`
	MenuCategories []MenuCategory `json:"menu_categories,omitempty"`
}

type MenuCategory struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Sort        int    `json:"sort"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Experience  string `json:"experience,omitempty"`
}

type MenuItem struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Sort         int      `json:"sort"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Category     string   `json:"category"`
	Image        ImageRef `json:"image,omitempty"`
	IsVegetarian bool     `json:"is_vegetarian,omitempty"`
	IsVegan      bool     `json:"is_vegan,omitempty"`
	IsGlutenFree bool     `json:"is_gluten_free,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	IsFeatured   bool     `json:"is_featured,omitempty"`
}

type Event struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	Sort         int        `json:"sort"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug,omitempty"`
	DateEvent    string     `json:"date_event"`
	TimeStart    string     `json:"time_start,omitempty"`
	TimeEnd      string     `json:"time_end,omitempty"`
	Description  string     `json:"description,omitempty"`
	CoverImage   ImageRef   `json:"cover_image,omitempty"`
	Gallery      []ImageRef `json:"gallery,omitempty"`
	IsPast       bool       `json:"is_past,omitempty"`
	ExternalLink string     `json:"external_link,omitempty"`
}

type BusinessService struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	Sort        int      `json:"sort"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Image       ImageRef `json:"image,omitempty"`
}

// Page is an editor-managed static page (home, business, contatti,
// privacy, cookie), one record per distinct slug.
type Page struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	HeroTitle      string   `json:"hero_title,omitempty"`
	HeroSubtitle   string   `json:"hero_subtitle,omitempty"`
	HeroImage      ImageRef `json:"hero_image,omitempty"`
	Content        string   `json:"content,omitempty"`
	SEOTitle       string   `json:"seo_title,omitempty"`
	SEODescription string   `json:"seo_description,omitempty"`
}

// Avviso is an announcement shown as a sequential modal stack on the home
// page. Field names follow the CMS collection, which is Italian-first.
type Avviso struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	Sort        int      `json:"sort"`
	Titolo      string   `json:"titolo"`
	Descrizione string   `json:"descrizione,omitempty"`
	Foto        ImageRef `json:"foto,omitempty"`
	CTALabel    string   `json:"cta_label,omitempty"`
	CTAURL      string   `json:"cta_url,omitempty"`
}

type FAQ struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Sort     int    `json:"sort"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}
