package catalog

type Category string

const (
	CategoryAll       Category = "All"
	CategoryWebsite   Category = "Website"
	CategoryApp       Category = "App"
	CategoryPortal    Category = "Portal"
	CategoryEcommerce Category = "E-commerce"
)

// Categories lists the portfolio filters in display order.
var Categories = []Category{CategoryAll, CategoryWebsite, CategoryApp, CategoryPortal, CategoryEcommerce}

func (c Category) valid() bool {
	switch c {
	case CategoryWebsite, CategoryApp, CategoryPortal, CategoryEcommerce:
		return true
	}
	return false
}

type Service struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        Icon     `yaml:"icon" json:"icon"`
	PriceRange  string   `yaml:"price_range" json:"priceRange"`
	Timeline    string   `yaml:"timeline" json:"timeline"`
	Features    []string `yaml:"features" json:"features"`
}

type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Category    Category `yaml:"category" json:"category"`
	Image       string   `yaml:"image" json:"image"`
	Client      string   `yaml:"client" json:"client"`
	Description string   `yaml:"description" json:"description"`
	Challenge   string   `yaml:"challenge" json:"challenge"`
	Solution    string   `yaml:"solution" json:"solution"`
	TechStack   []string `yaml:"tech_stack" json:"techStack"`
}

type Post struct {
	ID       string `yaml:"id" json:"id"`
	Slug     string `yaml:"slug" json:"slug"`
	Title    string `yaml:"title" json:"title"`
	Excerpt  string `yaml:"excerpt" json:"excerpt"`
	Date     string `yaml:"date" json:"date"`
	Image    string `yaml:"image" json:"image"`
	ReadTime string `yaml:"read_time" json:"readTime"`
}

type TeamMember struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Role  string `yaml:"role" json:"role"`
	Image string `yaml:"image" json:"image"`
	Bio   string `yaml:"bio" json:"bio"`
}

type Testimonial struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Company string `yaml:"company" json:"company"`
	Content string `yaml:"content" json:"content"`
	Avatar  string `yaml:"avatar" json:"avatar"`
}

// Filter selects portfolio projects. Empty fields match everything.
type Filter struct {
	Category Category
	Search   string
}
