package dto

// Page payloads served to the rendering frontend. Every image reference
// has already been resolved into a transformation URL and every rich-text
// field sanitized; the frontend renders these as-is.

// Chrome is the shared frame of every localized page: active locale,
// navigation and footer data.
type Chrome struct {
	Locale  string   `json:"locale"`
	Nav     []Link   `json:"nav"`
	Globals *Globals `json:"globals,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Globals struct {
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

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type ExperienceCard struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Href     string `json:"href"`
}

type ExperienceDetail struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle,omitempty"`
	Description    string         `json:"description,omitempty"`
	HeroImageURL   string         `json:"hero_image_url,omitempty"`
	GalleryURLs    []string       `json:"gallery_urls,omitempty"`
	MenuCategories []MenuCategory `json:"menu_categories,omitempty"`
}

type MenuCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

type MenuItemDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Category     string   `json:"category"`
	ImageURL     string   `json:"image_url,omitempty"`
	IsVegetarian bool     `json:"is_vegetarian,omitempty"`
	IsVegan      bool     `json:"is_vegan,omitempty"`
	IsGlutenFree bool     `json:"is_gluten_free,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	IsFeatured   bool     `json:"is_featured,omitempty"`
}

type EventCard struct {
	Slug         string `json:"slug,omitempty"`
	Title        string `json:"title"`
	DateEvent    string `json:"date_event"`
	TimeStart    string `json:"time_start,omitempty"`
	TimeEnd      string `json:"time_end,omitempty"`
	CoverURL     string `json:"cover_url,omitempty"`
	IsPast       bool   `json:"is_past,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
	Href         string `json:"href,omitempty"`
}

type EventDetail struct {
	EventCard
	Description string   `json:"description,omitempty"`
	GalleryURLs []string `json:"gallery_urls,omitempty"`
}

type ServiceCard struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type AvvisoDTO struct {
	Titolo      string `json:"titolo"`
	Descrizione string `json:"descrizione,omitempty"`
	FotoURL     string `json:"foto_url,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
	CTAURL      string `json:"cta_url,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

type HomePage struct {
	Chrome
	Hero        Hero             `json:"hero"`
	Experiences []ExperienceCard `json:"experiences"`
	Avvisi      []AvvisoDTO      `json:"avvisi"`
}

type ExperiencesPage struct {
	Chrome
	Title        string           `json:"title"`
	Experiences  []ExperienceCard `json:"experiences"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

type ExperiencePage struct {
	Chrome
	Experience ExperienceDetail `json:"experience"`
}

type MenuPage struct {
	Chrome
	Title        string         `json:"title"`
	Categories   []MenuCategory `json:"categories"`
	Items        []MenuItemDTO  `json:"items"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}

type EventsPage struct {
	Chrome
	Title        string      `json:"title"`
	Events       []EventCard `json:"events"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}

type EventPage struct {
	Chrome
	Event EventDetail `json:"event"`
}

type BusinessPage struct {
	Chrome
	Hero     Hero          `json:"hero"`
	Services []ServiceCard `json:"services"`
	FAQs     []FAQItem     `json:"faqs"`
}

type ContactsPage struct {
	Chrome
	Hero Hero      `json:"hero"`
	FAQs []FAQItem `json:"faqs"`
}

type StaticPage struct {
	Chrome
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// LinksPage is the link-in-bio payload. Deliberately outside the locale
// tree and without the standard chrome.
type LinksPage struct {
	SiteName string `json:"site_name,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
	Links    []Link `json:"links"`
}

type NotFoundPage struct {
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	BackHref string `json:"back_href"`
}
