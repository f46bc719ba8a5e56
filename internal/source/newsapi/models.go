package newsapi

// Query is one configured keyword search.
type Query struct {
	Query    string
	Category string
	Priority string
}

// Queries are the configured keyword searches, most relevant first. Only
// the first few are run per ingestion to conserve the API quota.
var Queries = []Query{
	{Query: "Black LGBTQ UK", Category: "community", Priority: "high"},
	{Query: "Black queer Britain", Category: "culture", Priority: "high"},
	{Query: "LGBTQ rights UK", Category: "politics", Priority: "high"},

	{Query: "Black Pride UK", Category: "culture", Priority: "high"},
	{Query: "queer Black artists UK", Category: "culture", Priority: "medium"},
	{Query: "transgender rights Britain", Category: "politics", Priority: "high"},

	{Query: "HIV prevention UK LGBTQ", Category: "health", Priority: "medium"},
	{Query: "mental health LGBTQ UK", Category: "health", Priority: "medium"},

	{Query: "UK Black gay", Category: "community", Priority: "medium"},
	{Query: "intersectionality race sexuality UK", Category: "features", Priority: "low"},
}

// APIResponse is the NewsAPI /v2/everything response shape.
type APIResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []APIArticle `json:"articles"`
}

type APIArticle struct {
	Source      APISource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

type APISource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
