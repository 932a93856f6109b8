package news

type Article struct {
	Title         string
	Content       string
	URL           string
	PublishedDate string
}

type Client interface {
	Search(query string, limit int) ([]Article, error)
	Name() string
}
