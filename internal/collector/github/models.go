package github

// userPayload mirrors the fields we read from the upstream user resource.
type userPayload struct {
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Blog        string `json:"blog"`
}

// repoPayload mirrors one repository entry from the paginated repos resource.
// PushedAt decodes to "" when upstream sends null.
type repoPayload struct {
	Name            string `json:"name"`
	PushedAt        string `json:"pushed_at"`
	StargazersCount int    `json:"stargazers_count"`
}
