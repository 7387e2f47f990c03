package keep

// keepNote mirrors one note file of a Google Keep export.
// Timestamps are pointers so an absent field can be told apart from zero.
type keepNote struct {
	Title                   string         `json:"title"`
	TextContent             string         `json:"textContent"`
	ListContent             []keepListItem `json:"listContent"`
	Labels                  []keepLabel    `json:"labels"`
	CreatedTimestampUsec    *int64         `json:"createdTimestampUsec"`
	UserEditedTimestampUsec *int64         `json:"userEditedTimestampUsec"`
	IsTrashed               bool           `json:"isTrashed"`
	IsArchived              bool           `json:"isArchived"`
	IsPinned                bool           `json:"isPinned"`
}

type keepListItem struct {
	Text      string `json:"text"`
	IsChecked bool   `json:"isChecked"`
}

type keepLabel struct {
	Name string `json:"name"`
}
