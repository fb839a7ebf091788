package entity

import "time"

// Form types double as Firestore collection names.
const (
	FormTypeCertificates = "certificates"
	FormTypeProjects     = "projects"
	FormTypeProducts     = "products"
	FormTypePosts        = "posts"
)

const (
	ProductTypeDigital  = "Digital"
	ProductTypeFisico   = "Fisico"
	ProductTypeServicio = "Servicio"
)

type Certificate struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Image     string    `json:"image" firestore:"image"`
	Issuer    string    `json:"issuer" firestore:"issuer"`
	Category  string    `json:"category" firestore:"category"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type Project struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Image       string    `json:"image" firestore:"image"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Tech        []string  `json:"tech" firestore:"tech"`
	RepoLink    string    `json:"repo_link" firestore:"repoLink"`
	DemoLink    string    `json:"demo_link" firestore:"demoLink"`
	Gallery     []string  `json:"gallery" firestore:"gallery"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Image       string    `json:"image" firestore:"image"`
	Price       float64   `json:"price" firestore:"price"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Type        string    `json:"type" firestore:"type"`
	Gallery     []string  `json:"gallery" firestore:"gallery"`
	Reviews     []Review  `json:"reviews" firestore:"reviews"`
	FileURL     string    `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// Review is append-only: once attached to a product it is never edited
// or removed. Rating is constrained to 3..5 at the submission boundary.
type Review struct {
	User   string    `json:"user" firestore:"user"`
	Text   string    `json:"text" firestore:"text"`
	Rating int       `json:"rating" firestore:"rating"`
	Date   time.Time `json:"date" firestore:"date"`
}

type Post struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Image       string    `json:"image" firestore:"image"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Content     string    `json:"content" firestore:"content"`
	Likes       int       `json:"likes" firestore:"likes"`
	Comments    []Comment `json:"comments" firestore:"comments"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

type Comment struct {
	User string    `json:"user" firestore:"user"`
	Text string    `json:"text" firestore:"text"`
	Date time.Time `json:"date" firestore:"date"`
}
