package backend

// Role of a user account. Present in the API model, not enforced here.
type Role string

const (
	// RoleAdmin marks the portfolio owner account.
	RoleAdmin Role = "admin"
	// RoleUser marks a regular account.
	RoleUser Role = "user"
)

// UserProfile is the user snapshot returned by the auth endpoints.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Blog represents a blog post as served by the API.
type Blog struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
	AuthorID      string   `json:"authorId"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	Views         int      `json:"views"`
}

// BlogInput is the writable subset of Blog sent on create and update.
type BlogInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt,omitempty"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Published     bool     `json:"published"`
}

// Project represents a portfolio project as served by the API.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	ProjectURL   string   `json:"projectUrl"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	Published    bool     `json:"published"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ProjectInput is the writable subset of Project sent on create and update.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	ProjectURL   string   `json:"projectUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Features     []string `json:"features,omitempty"`
	Published    bool     `json:"published"`
}

// SocialLinks holds the owner's external profiles.
type SocialLinks struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Portfolio string `json:"portfolio"`
}

// About is the owner profile shown on the public about page.
type About struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Bio          string      `json:"bio"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Location     string      `json:"location"`
	ProfileImage string      `json:"profileImage"`
	Resume       string      `json:"resume"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

// Pagination describes a paginated listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// DashboardStats is the aggregate shown on the dashboard landing page.
type DashboardStats struct {
	TotalBlogs     int       `json:"totalBlogs"`
	TotalProjects  int       `json:"totalProjects"`
	TotalViews     int       `json:"totalViews"`
	RecentBlogs    []Blog    `json:"recentBlogs"`
	RecentProjects []Project `json:"recentProjects"`
}
